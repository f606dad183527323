package view

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"time"

	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/internal/validator"
)

//go:embed templates/*.html
var files embed.FS

// View names accepted by Render
const (
	Index      = "index"
	BookList   = "book_list"
	BookDetail = "book_detail"
	BookForm   = "book_form"
	BookDelete = "book_delete"
	Error      = "error"
)

type IndexPage struct {
	Title string
	Error error
	Data  catalog.Summary
}

type BookListPage struct {
	Title string
	Books []catalog.BookRecord
}

type BookDetailPage struct {
	Title     string
	Book      catalog.BookRecord
	Instances []catalog.BookInstance
}

// BookFormPage serves both create and update. Errors is empty on first display.
type BookFormPage struct {
	Title   string
	Authors []catalog.Author
	Genres  []catalog.GenreOption
	Book    catalog.Book
	Errors  []validator.FieldError
}

type BookDeletePage struct {
	Title     string
	Book      catalog.BookRecord
	Instances []catalog.BookInstance
}

type ErrorPage struct {
	Title   string
	Status  int
	Message string
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	// stored values are already escaped; unescape so the template escapes them once
	"text": html.UnescapeString,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
}

// New parses every view together with the shared layout
func New() (*Renderer, error) {
	names := []string{Index, BookList, BookDetail, BookForm, BookDelete, Error}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing view %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering view %s: %w", name, err)
	}
	return nil
}
