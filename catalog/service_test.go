package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/catalog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type repos struct {
	books     *mocks.BookRepository
	authors   *mocks.AuthorRepository
	genres    *mocks.GenreRepository
	instances *mocks.InstanceRepository
}

func newService(t *testing.T) (*catalog.Service, repos) {
	t.Helper()
	r := repos{
		books:     mocks.NewBookRepository(t),
		authors:   mocks.NewAuthorRepository(t),
		genres:    mocks.NewGenreRepository(t),
		instances: mocks.NewInstanceRepository(t),
	}
	return catalog.NewService(r.books, r.authors, r.genres, r.instances), r
}

var (
	gibson  = catalog.Author{ID: "a1", FirstName: "William", FamilyName: "Gibson"}
	herbert = catalog.Author{ID: "a2", FirstName: "Frank", FamilyName: "Herbert"}
	scifi   = catalog.Genre{ID: "g1", Name: "Science Fiction"}
	fantasy = catalog.Genre{ID: "g2", Name: "Fantasy"}
	neuro   = catalog.Book{ID: "b1", Title: "Neuromancer", Author: "a1", Summary: "Cyberspace.", ISBN: "9780441569595", Genre: []string{"g1"}}
)

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Count", ctx).Return(int64(3), nil)
		r.instances.On("Count", ctx).Return(int64(7), nil)
		r.instances.On("CountByStatus", ctx, catalog.Available).Return(int64(4), nil)
		r.authors.On("Count", ctx).Return(int64(2), nil)
		r.genres.On("Count", ctx).Return(int64(5), nil)

		sum, err := s.Summary(ctx)

		require.NoError(t, err)
		assert.Equal(t, catalog.Summary{
			BookCount:                  3,
			BookInstanceCount:          7,
			BookInstanceAvailableCount: 4,
			AuthorCount:                2,
			GenreCount:                 5,
		}, sum)
	})

	t.Run("first error wins and every count still runs", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Count", ctx).Return(int64(3), nil)
		r.instances.On("Count", ctx).Return(int64(0), fmt.Errorf("connection reset"))
		r.instances.On("CountByStatus", ctx, catalog.Available).Return(int64(4), nil)
		r.authors.On("Count", ctx).Return(int64(2), nil)
		r.genres.On("Count", ctx).Return(int64(5), nil)

		sum, err := s.Summary(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "counting book instances")
		assert.Empty(t, sum)
	})
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("expands authors and orders by title", func(t *testing.T) {
		s, r := newService(t)
		dune := catalog.Book{ID: "b2", Title: "Dune", Author: "a2"}
		r.books.On("FindAll", ctx).Return([]catalog.Book{neuro, dune}, nil)
		r.authors.On("FindAll", ctx).Return([]catalog.Author{gibson, herbert}, nil)

		list, err := s.ListBooks(ctx)

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Dune", list[0].Book.Title)
		assert.Equal(t, herbert, list[0].Author)
		assert.Equal(t, "Neuromancer", list[1].Book.Title)
		assert.Equal(t, gibson, list[1].Author)
	})

	t.Run("store failure", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("FindAll", ctx).Return(nil, fmt.Errorf("timeout"))
		r.authors.On("FindAll", ctx).Return([]catalog.Author{gibson}, nil)

		list, err := s.ListBooks(ctx)

		require.Error(t, err)
		assert.Nil(t, list)
	})
}

func TestBookDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, r := newService(t)
		copies := []catalog.BookInstance{{ID: "i1", Book: "b1", Imprint: "Ace, 1984", Status: catalog.Available}}
		r.books.On("Get", ctx, "b1").Return(neuro, nil)
		r.authors.On("Get", ctx, "a1").Return(gibson, nil)
		r.genres.On("FindByIDs", ctx, []string{"g1"}).Return([]catalog.Genre{scifi}, nil)
		r.instances.On("FindByBook", ctx, "b1").Return(copies, nil)

		detail, err := s.BookDetail(ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, neuro, detail.Book.Book)
		assert.Equal(t, gibson, detail.Book.Author)
		assert.Equal(t, []catalog.Genre{scifi}, detail.Book.Genres)
		assert.Equal(t, copies, detail.Instances)
	})

	t.Run("missing book is not found", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "nope").Return(catalog.Book{}, catalog.ErrNotFound)
		r.instances.On("FindByBook", ctx, "nope").Return([]catalog.BookInstance{}, nil)

		_, err := s.BookDetail(ctx, "nope")

		require.Error(t, err)
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, catalog.StatusCode(err))
	})

	t.Run("dangling author expands to empty", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "b1").Return(neuro, nil)
		r.authors.On("Get", ctx, "a1").Return(catalog.Author{}, catalog.ErrNotFound)
		r.genres.On("FindByIDs", ctx, []string{"g1"}).Return([]catalog.Genre{scifi}, nil)
		r.instances.On("FindByBook", ctx, "b1").Return([]catalog.BookInstance{}, nil)

		detail, err := s.BookDetail(ctx, "b1")

		require.NoError(t, err)
		assert.Empty(t, detail.Book.Author)
	})

	t.Run("store failure is an internal error", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "b1").Return(catalog.Book{}, fmt.Errorf("connection refused"))
		r.instances.On("FindByBook", ctx, "b1").Return([]catalog.BookInstance{}, nil)

		_, err := s.BookDetail(ctx, "b1")

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, catalog.StatusCode(err))
	})
}

func TestFormOptions(t *testing.T) {
	ctx := context.Background()

	s, r := newService(t)
	r.authors.On("FindAll", ctx).Return([]catalog.Author{herbert, gibson}, nil)
	r.genres.On("FindAll", ctx).Return([]catalog.Genre{scifi, fantasy}, nil)

	opts, err := s.FormOptions(ctx, []string{"g1"})

	require.NoError(t, err)
	assert.Equal(t, []catalog.Author{gibson, herbert}, opts.Authors)
	assert.Equal(t, []catalog.GenreOption{
		{Genre: fantasy, Checked: false},
		{Genre: scifi, Checked: true},
	}, opts.Genres)
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, r := newService(t)
		want := catalog.Book{
			Title:   "Dune &amp; Messiah",
			Author:  "a2",
			Summary: "Spice.",
			ISBN:    "9780441172719",
			Genre:   []string{"g1"},
		}
		r.books.On("Insert", ctx, want).Return("b9", nil)

		saved, err := s.CreateBook(ctx, catalog.BookForm{
			Title:   "  Dune & Messiah ",
			Author:  "a2",
			Summary: "Spice.",
			ISBN:    "9780441172719",
			Genre:   []string{"g1"},
		})

		require.NoError(t, err)
		assert.Equal(t, "b9", saved.ID)
		assert.Equal(t, "/catalog/book/b9", saved.URL())
		assert.Equal(t, "Dune &amp; Messiah", saved.Title)
	})

	t.Run("missing fields are rejected and nothing is stored", func(t *testing.T) {
		s, r := newService(t)

		saved, err := s.CreateBook(ctx, catalog.BookForm{Title: "<b>Dune</b>", Summary: "  ", Genre: []string{}})

		var verr *catalog.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 3)
		assert.Equal(t, "author", verr.Fields[0].Field)
		assert.Equal(t, "summary", verr.Fields[1].Field)
		assert.Equal(t, "isbn", verr.Fields[2].Field)
		assert.Equal(t, "&lt;b&gt;Dune&lt;&#x2F;b&gt;", saved.Title)
		assert.Equal(t, saved, verr.Book)
		r.books.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("insert failure", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Insert", ctx, mock.AnythingOfType("catalog.Book")).Return("", fmt.Errorf("some error"))

		saved, err := s.CreateBook(ctx, catalog.BookForm{Title: "t", Author: "a", Summary: "s", ISBN: "i"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inserting book")
		assert.Empty(t, saved)
	})
}

func TestBookForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("checks the book genres", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "b1").Return(neuro, nil)
		r.authors.On("FindAll", ctx).Return([]catalog.Author{gibson}, nil)
		r.genres.On("FindAll", ctx).Return([]catalog.Genre{scifi, fantasy}, nil)

		edit, err := s.BookForUpdate(ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, neuro, edit.Book)
		for _, g := range edit.Options.Genres {
			assert.Equal(t, g.ID == "g1", g.Checked, g.Name)
		}
	})

	t.Run("missing book is not found", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "nope").Return(catalog.Book{}, catalog.ErrNotFound)
		r.authors.On("FindAll", ctx).Return([]catalog.Author{gibson}, nil)
		r.genres.On("FindAll", ctx).Return([]catalog.Genre{scifi}, nil)

		_, err := s.BookForUpdate(ctx, "nope")

		assert.Equal(t, http.StatusNotFound, catalog.StatusCode(err))
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	form := catalog.BookForm{Title: "Count Zero", Author: "a1", Summary: "Sprawl.", ISBN: "9780441117734", Genre: []string{}}

	t.Run("keeps the id", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Update", ctx, catalog.Book{
			ID:      "b1",
			Title:   "Count Zero",
			Author:  "a1",
			Summary: "Sprawl.",
			ISBN:    "9780441117734",
			Genre:   []string{},
		}).Return(nil)

		updated, err := s.UpdateBook(ctx, "b1", form)

		require.NoError(t, err)
		assert.Equal(t, "b1", updated.ID)
		assert.Equal(t, "/catalog/book/b1", updated.URL())
	})

	t.Run("rejected input keeps the id and is not stored", func(t *testing.T) {
		s, r := newService(t)

		_, err := s.UpdateBook(ctx, "b1", catalog.BookForm{Genre: []string{"g1"}})

		var verr *catalog.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "b1", verr.Book.ID)
		assert.Len(t, verr.Fields, 4)
		r.books.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing book is not found", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Update", ctx, mock.AnythingOfType("catalog.Book")).Return(catalog.ErrNotFound)

		_, err := s.UpdateBook(ctx, "nope", form)

		assert.Equal(t, http.StatusNotFound, catalog.StatusCode(err))
	})
}

func TestBookDeletion(t *testing.T) {
	ctx := context.Background()

	t.Run("lists blocking copies", func(t *testing.T) {
		s, r := newService(t)
		copies := []catalog.BookInstance{{ID: "i1", Book: "b1"}}
		r.books.On("Get", ctx, "b1").Return(neuro, nil)
		r.authors.On("Get", ctx, "a1").Return(gibson, nil)
		r.genres.On("FindByIDs", ctx, []string{"g1"}).Return([]catalog.Genre{scifi}, nil)
		r.instances.On("FindByBook", ctx, "b1").Return(copies, nil)

		d, err := s.BookDeletion(ctx, "b1")

		require.NoError(t, err)
		assert.True(t, d.Blocked())
		assert.Equal(t, copies, d.Instances)
	})

	t.Run("missing book", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "nope").Return(catalog.Book{}, catalog.ErrNotFound)
		r.instances.On("FindByBook", ctx, "nope").Return([]catalog.BookInstance{}, nil)

		_, err := s.BookDeletion(ctx, "nope")

		assert.True(t, errors.Is(err, catalog.ErrNotFound))
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while copies exist", func(t *testing.T) {
		s, r := newService(t)
		copies := []catalog.BookInstance{{ID: "i1", Book: "b1"}, {ID: "i2", Book: "b1"}}
		r.books.On("Get", ctx, "b1").Return(neuro, nil)
		r.authors.On("Get", ctx, "a1").Return(gibson, nil)
		r.genres.On("FindByIDs", ctx, []string{"g1"}).Return([]catalog.Genre{scifi}, nil)
		r.instances.On("FindByBook", ctx, "b1").Return(copies, nil)

		d, err := s.DeleteBook(ctx, "b1")

		assert.True(t, errors.Is(err, catalog.ErrBookInUse))
		assert.Len(t, d.Instances, 2)
		assert.Equal(t, neuro, d.Book.Book)
		r.books.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("removed when no copies, then not found", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "b1").Return(neuro, nil).Once()
		r.books.On("Get", ctx, "b1").Return(catalog.Book{}, catalog.ErrNotFound).Once()
		r.authors.On("Get", ctx, "a1").Return(gibson, nil)
		r.genres.On("FindByIDs", ctx, []string{"g1"}).Return([]catalog.Genre{scifi}, nil)
		r.instances.On("FindByBook", ctx, "b1").Return([]catalog.BookInstance{}, nil)
		r.books.On("Delete", ctx, "b1").Return(nil)

		_, err := s.DeleteBook(ctx, "b1")
		require.NoError(t, err)

		_, err = s.BookDetail(ctx, "b1")
		assert.Equal(t, http.StatusNotFound, catalog.StatusCode(err))
	})

	t.Run("already gone", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "b1").Return(catalog.Book{}, catalog.ErrNotFound)
		r.instances.On("FindByBook", ctx, "b1").Return([]catalog.BookInstance{}, nil)
		r.books.On("Delete", ctx, "b1").Return(catalog.ErrNotFound)

		_, err := s.DeleteBook(ctx, "b1")

		assert.NoError(t, err)
	})

	t.Run("delete failure", func(t *testing.T) {
		s, r := newService(t)
		r.books.On("Get", ctx, "b1").Return(catalog.Book{}, catalog.ErrNotFound)
		r.instances.On("FindByBook", ctx, "b1").Return([]catalog.BookInstance{}, nil)
		r.books.On("Delete", ctx, "b1").Return(fmt.Errorf("read only replica"))

		_, err := s.DeleteBook(ctx, "b1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deleting book")
	})
}
