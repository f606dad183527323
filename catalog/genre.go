package catalog

type Genre struct {
	ID   string
	Name string
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID
}

// GenreOption is a Genre offered as a choice on the book form
type GenreOption struct {
	Genre
	Checked bool
}
