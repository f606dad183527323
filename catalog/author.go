package catalog

import "time"

type Author struct {
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth time.Time
	DateOfDeath time.Time
}

// Name returns "Family, First". It is empty when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan formats the author's years, e.g. "1920 - 1992"
func (a Author) Lifespan() string {
	var birth, death string
	if !a.DateOfBirth.IsZero() {
		birth = a.DateOfBirth.Format("2006")
	}
	if !a.DateOfDeath.IsZero() {
		death = a.DateOfDeath.Format("2006")
	}
	if birth == "" && death == "" {
		return ""
	}
	return birth + " - " + death
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID
}
