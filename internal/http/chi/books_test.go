package chi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/catalog/mocks"
	"github.com/marcelsud/local-library/internal/validator"
	"github.com/marcelsud/local-library/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	herbert = catalog.Author{ID: "a1", FirstName: "Frank", FamilyName: "Herbert"}
	scifi   = catalog.Genre{ID: "g1", Name: "Science Fiction"}
	dune    = catalog.Book{ID: "b1", Title: "Dune", Author: "a1", Summary: "Spice.", ISBN: "9780441013593", Genre: []string{"g1"}}
)

func newHandler(t *testing.T) (http.Handler, *mocks.UseCase) {
	t.Helper()
	s := mocks.NewUseCase(t)
	views, err := view.New()
	require.NoError(t, err)
	return Handlers(context.Background(), s, views, nil), s
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRootAndHealth(t *testing.T) {
	h, _ := newHandler(t)

	w := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))

	w = do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsMounted(t *testing.T) {
	s := mocks.NewUseCase(t)
	views, err := view.New()
	require.NoError(t, err)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("library_catalog_records 1"))
	})
	h := Handlers(context.Background(), s, views, metrics)

	w := do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "library_catalog_records")
}

func TestGetIndex(t *testing.T) {
	t.Run("counts", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("Summary", mock.Anything).Return(catalog.Summary{BookCount: 3, BookInstanceAvailableCount: 2}, nil)

		w := do(t, h, http.MethodGet, "/catalog", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<strong>Books:</strong> 3")
		assert.Contains(t, w.Body.String(), "<strong>Copies available:</strong> 2")
	})

	t.Run("error is shown on the page", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("Summary", mock.Anything).Return(catalog.Summary{}, errors.New("store down"))

		w := do(t, h, http.MethodGet, "/catalog", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "store down")
	})
}

func TestGetBooks(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("ListBooks", mock.Anything).Return([]catalog.BookRecord{{Book: dune, Author: herbert}}, nil)

		w := do(t, h, http.MethodGet, "/catalog/books", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<a href="/catalog/book/b1">Dune</a> (Herbert, Frank)`)
	})

	t.Run("store error", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("ListBooks", mock.Anything).Return(nil, errors.New("store down"))

		w := do(t, h, http.MethodGet, "/catalog/books", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetBook(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("BookDetail", mock.Anything, "b1").Return(catalog.BookDetail{
			Book:      catalog.BookRecord{Book: dune, Author: herbert, Genres: []catalog.Genre{scifi}},
			Instances: []catalog.BookInstance{{ID: "i1", Book: "b1", Imprint: "Chilton", Status: catalog.Available}},
		}, nil)

		w := do(t, h, http.MethodGet, "/catalog/book/b1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Dune</title>")
		assert.Contains(t, w.Body.String(), "Science Fiction")
		assert.Contains(t, w.Body.String(), "Chilton")
	})

	t.Run("not found", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("BookDetail", mock.Anything, "nope").Return(catalog.BookDetail{}, catalog.NotFound("book", "nope"))

		w := do(t, h, http.MethodGet, "/catalog/book/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "book not found: nope")
	})
}

func TestBookCreate(t *testing.T) {
	opts := catalog.FormOptions{
		Authors: []catalog.Author{herbert},
		Genres:  []catalog.GenreOption{{Genre: scifi}},
	}

	t.Run("empty form", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("FormOptions", mock.Anything, []string(nil)).Return(opts, nil)

		w := do(t, h, http.MethodGet, "/catalog/book/create", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Create Book</title>")
		assert.Contains(t, w.Body.String(), `<option value="a1">Herbert, Frank</option>`)
	})

	t.Run("valid submission redirects", func(t *testing.T) {
		h, s := newHandler(t)
		form := url.Values{
			"title":   {"Dune"},
			"author":  {"a1"},
			"summary": {"Spice."},
			"isbn":    {"9780441013593"},
			"genre":   {"g1"},
		}
		s.On("CreateBook", mock.Anything, catalog.BookForm{
			Title: "Dune", Author: "a1", Summary: "Spice.", ISBN: "9780441013593", Genre: []string{"g1"},
		}).Return(dune, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/create", form)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/book/b1", w.Header().Get("Location"))
	})

	t.Run("no genre becomes an empty list", func(t *testing.T) {
		h, s := newHandler(t)
		form := url.Values{"title": {"Dune"}, "author": {"a1"}, "summary": {"Spice."}, "isbn": {"1"}}
		s.On("CreateBook", mock.Anything, mock.MatchedBy(func(f catalog.BookForm) bool {
			return f.Genre != nil && len(f.Genre) == 0
		})).Return(dune, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/create", form)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("invalid submission renders the form again", func(t *testing.T) {
		h, s := newHandler(t)
		sanitized := catalog.Book{Title: "Dune", Author: "a1", Genre: []string{"g1"}}
		s.On("CreateBook", mock.Anything, mock.Anything).Return(sanitized, &catalog.ValidationError{
			Book: sanitized,
			Fields: []validator.FieldError{
				{Field: "summary", Message: "Summary must not be empty."},
				{Field: "isbn", Message: "ISBN must not be empty."},
			},
		})
		s.On("FormOptions", mock.Anything, []string{"g1"}).Return(catalog.FormOptions{
			Authors: []catalog.Author{herbert},
			Genres:  []catalog.GenreOption{{Genre: scifi, Checked: true}},
		}, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/create", url.Values{"title": {"Dune"}, "author": {"a1"}, "genre": {"g1"}})

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<li>Summary must not be empty.</li>")
		assert.Contains(t, body, "<li>ISBN must not be empty.</li>")
		assert.Contains(t, body, `value="Dune"`)
		assert.Contains(t, body, `<option value="a1" selected>`)
		assert.Contains(t, body, `value="g1" checked>`)
	})

	t.Run("store error", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("CreateBook", mock.Anything, mock.Anything).Return(catalog.Book{}, errors.New("insert failed"))

		w := do(t, h, http.MethodPost, "/catalog/book/create", url.Values{"title": {"Dune"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBookDelete(t *testing.T) {
	copies := []catalog.BookInstance{{ID: "i1", Book: "b1", Imprint: "Chilton", Status: catalog.Loaned}}

	t.Run("confirmation", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("BookDeletion", mock.Anything, "b1").Return(catalog.Deletion{Book: catalog.BookRecord{Book: dune, Author: herbert}}, nil)

		w := do(t, h, http.MethodGet, "/catalog/book/b1/delete", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<input type="hidden" name="id" value="b1" required>`)
	})

	t.Run("missing book redirects to the list", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("BookDeletion", mock.Anything, "nope").Return(catalog.Deletion{}, catalog.NotFound("book", "nope"))

		w := do(t, h, http.MethodGet, "/catalog/book/nope/delete", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/books", w.Header().Get("Location"))
	})

	t.Run("delete removes and redirects", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("DeleteBook", mock.Anything, "b1").Return(catalog.Deletion{}, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/b1/delete", url.Values{"id": {"b1"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/books", w.Header().Get("Location"))
	})

	t.Run("body id wins over the route id", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("DeleteBook", mock.Anything, "b2").Return(catalog.Deletion{}, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/b1/delete", url.Values{"id": {"b2"}})

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("route id when the body has none", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("DeleteBook", mock.Anything, "b1").Return(catalog.Deletion{}, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/b1/delete", url.Values{})

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("copies block the deletion", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("DeleteBook", mock.Anything, "b1").Return(catalog.Deletion{
			Book:      catalog.BookRecord{Book: dune, Author: herbert},
			Instances: copies,
		}, catalog.ErrBookInUse)

		w := do(t, h, http.MethodPost, "/catalog/book/b1/delete", url.Values{"id": {"b1"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Delete the following copies")
		assert.Contains(t, w.Body.String(), "Chilton")
	})
}

func TestBookUpdate(t *testing.T) {
	t.Run("pre-populated form", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("BookForUpdate", mock.Anything, "b1").Return(catalog.BookEdit{
			Book: dune,
			Options: catalog.FormOptions{
				Authors: []catalog.Author{herbert},
				Genres:  []catalog.GenreOption{{Genre: scifi, Checked: true}},
			},
		}, nil)

		w := do(t, h, http.MethodGet, "/catalog/book/b1/update", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>Update Book</title>")
		assert.Contains(t, body, `value="Dune"`)
		assert.Contains(t, body, `value="g1" checked>`)
	})

	t.Run("not found", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("BookForUpdate", mock.Anything, "nope").Return(catalog.BookEdit{}, catalog.NotFound("book", "nope"))

		w := do(t, h, http.MethodGet, "/catalog/book/nope/update", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("valid submission redirects", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("UpdateBook", mock.Anything, "b1", mock.Anything).Return(dune, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/b1/update", url.Values{"title": {"Dune"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/book/b1", w.Header().Get("Location"))
	})

	t.Run("invalid submission", func(t *testing.T) {
		h, s := newHandler(t)
		sanitized := catalog.Book{ID: "b1", Title: "&lt;i&gt;Dune&lt;&#x2F;i&gt;", Genre: []string{}}
		s.On("UpdateBook", mock.Anything, "b1", mock.Anything).Return(sanitized, &catalog.ValidationError{
			Book:   sanitized,
			Fields: []validator.FieldError{{Field: "author", Message: "Author must not be empty."}},
		})
		s.On("FormOptions", mock.Anything, []string{}).Return(catalog.FormOptions{}, nil)

		w := do(t, h, http.MethodPost, "/catalog/book/b1/update", url.Values{"title": {"<i>Dune</i>"}})

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>Update Book</title>")
		assert.Contains(t, body, "<li>Author must not be empty.</li>")
		assert.Contains(t, body, `value="&lt;i&gt;Dune&lt;/i&gt;"`)
	})

	t.Run("missing book", func(t *testing.T) {
		h, s := newHandler(t)
		s.On("UpdateBook", mock.Anything, "nope", mock.Anything).Return(catalog.Book{}, catalog.NotFound("book", "nope"))

		w := do(t, h, http.MethodPost, "/catalog/book/nope/update", url.Values{"title": {"Dune"}})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
