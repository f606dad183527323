package catalog

import (
	"net/url"
	"strings"

	"github.com/marcelsud/local-library/internal/validator"
)

// BookForm is a book as submitted, before any rule runs
type BookForm struct {
	Title   string
	Author  string
	Summary string
	ISBN    string
	Genre   []string
}

// ParseBookForm reads the submitted fields. A missing genre field becomes an
// empty list and a single value a one-element list.
func ParseBookForm(values url.Values) BookForm {
	genre := values["genre"]
	if genre == nil {
		genre = []string{}
	}
	return BookForm{
		Title:   values.Get("title"),
		Author:  values.Get("author"),
		Summary: values.Get("summary"),
		ISBN:    values.Get("isbn"),
		Genre:   genre,
	}
}

// Book applies the field rules and returns the sanitized book together with
// the failures. The book is returned even when rules fail.
func (f BookForm) Book() (Book, []validator.FieldError) {
	title := strings.TrimSpace(f.Title)
	author := strings.TrimSpace(f.Author)
	summary := strings.TrimSpace(f.Summary)
	isbn := strings.TrimSpace(f.ISBN)

	v := validator.New()
	v.Check(validator.MinLength(title, 1), "title", "Title must not be empty.")
	v.Check(validator.MinLength(author, 1), "author", "Author must not be empty.")
	v.Check(validator.MinLength(summary, 1), "summary", "Summary must not be empty.")
	v.Check(validator.MinLength(isbn, 1), "isbn", "ISBN must not be empty.")

	genre := make([]string, 0, len(f.Genre))
	for _, g := range f.Genre {
		genre = append(genre, validator.Escape(g))
	}

	b := Book{
		Title:   validator.Escape(title),
		Author:  validator.Escape(author),
		Summary: validator.Escape(summary),
		ISBN:    validator.Escape(isbn),
		Genre:   genre,
	}
	return b, v.Errors
}
