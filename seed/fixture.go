package seed

import (
	"fmt"
	"time"

	"github.com/marcelsud/local-library/catalog"
)

/* Fixture describes catalog records with symbolic keys
 * Books reference authors and genres by key, instances reference books by key
 */
type Fixture struct {
	Authors   []AuthorConfig   `yaml:"authors"`
	Genres    []GenreConfig    `yaml:"genres"`
	Books     []BookConfig     `yaml:"books"`
	Instances []InstanceConfig `yaml:"instances"`
}

type AuthorConfig struct {
	Key         string `yaml:"key"`
	FirstName   string `yaml:"first_name"`
	FamilyName  string `yaml:"family_name"`
	DateOfBirth string `yaml:"date_of_birth"` // YYYY-MM-DD, optional
	DateOfDeath string `yaml:"date_of_death"` // YYYY-MM-DD, optional
}

type GenreConfig struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type BookConfig struct {
	Key     string   `yaml:"key"`
	Title   string   `yaml:"title"`
	Author  string   `yaml:"author"`
	Summary string   `yaml:"summary"`
	ISBN    string   `yaml:"isbn"`
	Genres  []string `yaml:"genres"`
}

type InstanceConfig struct {
	Book    string `yaml:"book"`
	Imprint string `yaml:"imprint"`
	Status  string `yaml:"status"`   // Default: Maintenance
	DueBack string `yaml:"due_back"` // YYYY-MM-DD, optional
}

const dateLayout = "2006-01-02"

// Validate checks keys are unique and every reference resolves
func (f *Fixture) Validate() error {
	authors := make(map[string]bool, len(f.Authors))
	for _, a := range f.Authors {
		if a.Key == "" {
			return fmt.Errorf("author key cannot be empty")
		}
		if authors[a.Key] {
			return fmt.Errorf("duplicate author key %s", a.Key)
		}
		if a.FirstName == "" || a.FamilyName == "" {
			return fmt.Errorf("first_name and family_name are required for author %s", a.Key)
		}
		if _, err := parseDate(a.DateOfBirth); err != nil {
			return fmt.Errorf("invalid date_of_birth for author %s: %w", a.Key, err)
		}
		if _, err := parseDate(a.DateOfDeath); err != nil {
			return fmt.Errorf("invalid date_of_death for author %s: %w", a.Key, err)
		}
		authors[a.Key] = true
	}

	genres := make(map[string]bool, len(f.Genres))
	for _, g := range f.Genres {
		if g.Key == "" {
			return fmt.Errorf("genre key cannot be empty")
		}
		if genres[g.Key] {
			return fmt.Errorf("duplicate genre key %s", g.Key)
		}
		if g.Name == "" {
			return fmt.Errorf("name is required for genre %s", g.Key)
		}
		genres[g.Key] = true
	}

	books := make(map[string]bool, len(f.Books))
	for _, b := range f.Books {
		if b.Key == "" {
			return fmt.Errorf("book key cannot be empty")
		}
		if books[b.Key] {
			return fmt.Errorf("duplicate book key %s", b.Key)
		}
		if !authors[b.Author] {
			return fmt.Errorf("unknown author %q for book %s", b.Author, b.Key)
		}
		for _, g := range b.Genres {
			if !genres[g] {
				return fmt.Errorf("unknown genre %q for book %s", g, b.Key)
			}
		}
		books[b.Key] = true
	}

	for i, inst := range f.Instances {
		if !books[inst.Book] {
			return fmt.Errorf("unknown book %q for instance %d", inst.Book, i+1)
		}
		if _, err := parseStatus(inst.Status); err != nil {
			return fmt.Errorf("instance %d: %w", i+1, err)
		}
		if _, err := parseDate(inst.DueBack); err != nil {
			return fmt.Errorf("invalid due_back for instance %d: %w", i+1, err)
		}
	}

	return nil
}

// parseStatus is strict, unlike catalog.NewInstanceStatus
func parseStatus(s string) (catalog.InstanceStatus, error) {
	if s == "" {
		return catalog.Maintenance, nil
	}
	status := catalog.NewInstanceStatus(s)
	if status.String() != s {
		return 0, fmt.Errorf("invalid status %q", s)
	}
	return status, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
