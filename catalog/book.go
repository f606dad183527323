package catalog

/* Book represents a catalog title, independent of how it is stored
 * Author and Genre hold references (ids); expansion happens in the Service
 */
type Book struct {
	ID      string
	Title   string
	Author  string
	Summary string
	ISBN    string
	Genre   []string
}

// URL returns the detail page of the book
func (b Book) URL() string {
	return "/catalog/book/" + b.ID
}

// HasGenre reports whether the genre id is referenced by the book
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genre {
		if g == id {
			return true
		}
	}
	return false
}

// BookRecord is a Book with its references expanded
type BookRecord struct {
	Book   Book
	Author Author
	Genres []Genre
}
