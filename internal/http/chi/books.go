package chi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/internal/view"
)

func getIndex(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sum, err := catalogService.Summary(r.Context())
		if err != nil {
			// the home page shows the failure instead of the counts
			logError(r, err).Msg("counting records")
		}
		render(w, r, views, http.StatusOK, view.Index, view.IndexPage{
			Title: "Local Library Home",
			Error: err,
			Data:  sum,
		})
	})
}

func getBooks(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		books, err := catalogService.ListBooks(r.Context())
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		render(w, r, views, http.StatusOK, view.BookList, view.BookListPage{
			Title: "Book List",
			Books: books,
		})
	})
}

func getBook(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		detail, err := catalogService.BookDetail(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		render(w, r, views, http.StatusOK, view.BookDetail, view.BookDetailPage{
			Title:     detail.Book.Book.Title,
			Book:      detail.Book,
			Instances: detail.Instances,
		})
	})
}

func getBookCreate(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		opts, err := catalogService.FormOptions(r.Context(), nil)
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		render(w, r, views, http.StatusOK, view.BookForm, view.BookFormPage{
			Title:   "Create Book",
			Authors: opts.Authors,
			Genres:  opts.Genres,
		})
	})
}

func postBookCreate(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		form, err := parseBookForm(r)
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		b, err := catalogService.CreateBook(r.Context(), form)
		var invalid *catalog.ValidationError
		if errors.As(err, &invalid) {
			renderInvalidForm(w, r, catalogService, views, "Create Book", invalid)
			return
		}
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		http.Redirect(w, r, b.URL(), http.StatusFound)
	})
}

func getBookDelete(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, err := catalogService.BookDeletion(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, catalog.ErrNotFound) {
			// nothing to delete
			http.Redirect(w, r, "/catalog/books", http.StatusFound)
			return
		}
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		render(w, r, views, http.StatusOK, view.BookDelete, view.BookDeletePage{
			Title:     "Delete Book",
			Book:      d.Book,
			Instances: d.Instances,
		})
	})
}

func postBookDelete(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(w, r, views, badRequest(err))
			return
		}
		id := r.PostForm.Get("id")
		if id == "" {
			id = chi.URLParam(r, "id")
		}
		d, err := catalogService.DeleteBook(r.Context(), id)
		if errors.Is(err, catalog.ErrBookInUse) {
			render(w, r, views, http.StatusOK, view.BookDelete, view.BookDeletePage{
				Title:     "Delete Book",
				Book:      d.Book,
				Instances: d.Instances,
			})
			return
		}
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		http.Redirect(w, r, "/catalog/books", http.StatusFound)
	})
}

func getBookUpdate(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		edit, err := catalogService.BookForUpdate(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		render(w, r, views, http.StatusOK, view.BookForm, view.BookFormPage{
			Title:   "Update Book",
			Authors: edit.Options.Authors,
			Genres:  edit.Options.Genres,
			Book:    edit.Book,
		})
	})
}

func postBookUpdate(catalogService catalog.UseCase, views Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		form, err := parseBookForm(r)
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		b, err := catalogService.UpdateBook(r.Context(), chi.URLParam(r, "id"), form)
		var invalid *catalog.ValidationError
		if errors.As(err, &invalid) {
			renderInvalidForm(w, r, catalogService, views, "Update Book", invalid)
			return
		}
		if err != nil {
			renderError(w, r, views, err)
			return
		}
		http.Redirect(w, r, b.URL(), http.StatusFound)
	})
}

func parseBookForm(r *http.Request) (catalog.BookForm, error) {
	if err := r.ParseForm(); err != nil {
		return catalog.BookForm{}, badRequest(err)
	}
	return catalog.ParseBookForm(r.PostForm), nil
}

// renderInvalidForm shows the form again with the sanitized input and one message per failed field
func renderInvalidForm(w http.ResponseWriter, r *http.Request, catalogService catalog.UseCase, views Renderer, title string, invalid *catalog.ValidationError) {
	opts, err := catalogService.FormOptions(r.Context(), invalid.Book.Genre)
	if err != nil {
		renderError(w, r, views, err)
		return
	}
	render(w, r, views, http.StatusOK, view.BookForm, view.BookFormPage{
		Title:   title,
		Authors: opts.Authors,
		Genres:  opts.Genres,
		Book:    invalid.Book,
		Errors:  invalid.Fields,
	})
}

func badRequest(err error) *catalog.Error {
	return &catalog.Error{
		Status: http.StatusBadRequest,
		Msg:    "malformed form",
		Err:    err,
	}
}
