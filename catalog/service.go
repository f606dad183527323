package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

/* Service holds the book controller use cases
 * Independent reads are issued together and joined with an errgroup.Group:
 * Wait returns the first error once every read has finished, siblings are never cancelled
 */

// Summary holds the record counts shown on the home page
type Summary struct {
	BookCount                  int64
	BookInstanceCount          int64
	BookInstanceAvailableCount int64
	AuthorCount                int64
	GenreCount                 int64
}

// BookDetail is a book with its references expanded and its copies
type BookDetail struct {
	Book      BookRecord
	Instances []BookInstance
}

// FormOptions are the choices offered on the book form
type FormOptions struct {
	Authors []Author
	Genres  []GenreOption
}

// BookEdit is a stored book together with the form choices to edit it
type BookEdit struct {
	Book    Book
	Options FormOptions
}

// Deletion is what a delete request shows: the book and the copies blocking it
type Deletion struct {
	Book      BookRecord
	Instances []BookInstance
}

// Blocked reports whether copies still reference the book
func (d Deletion) Blocked() bool {
	return len(d.Instances) > 0
}

type UseCase interface {
	Summary(ctx context.Context) (Summary, error)
	ListBooks(ctx context.Context) ([]BookRecord, error)
	BookDetail(ctx context.Context, id string) (BookDetail, error)
	FormOptions(ctx context.Context, selected []string) (FormOptions, error)
	CreateBook(ctx context.Context, form BookForm) (Book, error)
	BookForUpdate(ctx context.Context, id string) (BookEdit, error)
	UpdateBook(ctx context.Context, id string, form BookForm) (Book, error)
	BookDeletion(ctx context.Context, id string) (Deletion, error)
	DeleteBook(ctx context.Context, id string) (Deletion, error)
}

type Service struct {
	Books     BookRepository
	Authors   AuthorRepository
	Genres    GenreRepository
	Instances InstanceRepository
}

func NewService(books BookRepository, authors AuthorRepository, genres GenreRepository, instances InstanceRepository) *Service {
	return &Service{
		Books:     books,
		Authors:   authors,
		Genres:    genres,
		Instances: instances,
	}
}

// Summary counts every collection concurrently
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	var g errgroup.Group
	g.Go(func() error {
		n, err := s.Books.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting books: %w", err)
		}
		sum.BookCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Instances.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting book instances: %w", err)
		}
		sum.BookInstanceCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Instances.CountByStatus(ctx, Available)
		if err != nil {
			return fmt.Errorf("counting available book instances: %w", err)
		}
		sum.BookInstanceAvailableCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Authors.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting authors: %w", err)
		}
		sum.AuthorCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Genres.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting genres: %w", err)
		}
		sum.GenreCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// ListBooks returns every book with its author expanded, ordered by title
func (s *Service) ListBooks(ctx context.Context) ([]BookRecord, error) {
	var books []Book
	var authors []Author
	var g errgroup.Group
	g.Go(func() error {
		all, err := s.Books.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("selecting books: %w", err)
		}
		books = all
		return nil
	})
	g.Go(func() error {
		all, err := s.Authors.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("selecting authors: %w", err)
		}
		authors = all
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}
	records := make([]BookRecord, 0, len(books))
	for _, b := range books {
		records = append(records, BookRecord{Book: b, Author: byID[b.Author]})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Book.Title < records[j].Book.Title
	})
	return records, nil
}

// BookDetail loads a book and its copies. A missing book is a NotFound error.
func (s *Service) BookDetail(ctx context.Context, id string) (BookDetail, error) {
	var detail BookDetail
	var g errgroup.Group
	g.Go(func() error {
		rec, err := s.record(ctx, id)
		if err != nil {
			return err
		}
		detail.Book = rec
		return nil
	})
	g.Go(func() error {
		instances, err := s.Instances.FindByBook(ctx, id)
		if err != nil {
			return fmt.Errorf("selecting book instances: %w", err)
		}
		detail.Instances = instances
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrNotFound) {
			return BookDetail{}, NotFound("book", id)
		}
		return BookDetail{}, fmt.Errorf("loading book detail: %w", err)
	}
	return detail, nil
}

// FormOptions loads the authors and genres offered on the book form and
// checks the genres listed in selected
func (s *Service) FormOptions(ctx context.Context, selected []string) (FormOptions, error) {
	var authors []Author
	var genres []Genre
	var g errgroup.Group
	g.Go(func() error {
		all, err := s.Authors.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("selecting authors: %w", err)
		}
		authors = all
		return nil
	})
	g.Go(func() error {
		all, err := s.Genres.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("selecting genres: %w", err)
		}
		genres = all
		return nil
	})
	if err := g.Wait(); err != nil {
		return FormOptions{}, err
	}
	return newFormOptions(authors, genres, selected), nil
}

// CreateBook validates the form and inserts the book. Rule failures are
// returned as a *ValidationError and nothing is stored.
func (s *Service) CreateBook(ctx context.Context, form BookForm) (Book, error) {
	b, fields := form.Book()
	if len(fields) > 0 {
		return b, &ValidationError{Book: b, Fields: fields}
	}
	id, err := s.Books.Insert(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	b.ID = id
	return b, nil
}

// BookForUpdate loads a stored book and the form choices with its genres checked
func (s *Service) BookForUpdate(ctx context.Context, id string) (BookEdit, error) {
	var b Book
	var authors []Author
	var genres []Genre
	var g errgroup.Group
	g.Go(func() error {
		found, err := s.Books.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("selecting book: %w", err)
		}
		b = found
		return nil
	})
	g.Go(func() error {
		all, err := s.Authors.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("selecting authors: %w", err)
		}
		authors = all
		return nil
	})
	g.Go(func() error {
		all, err := s.Genres.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("selecting genres: %w", err)
		}
		genres = all
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrNotFound) {
			return BookEdit{}, NotFound("book", id)
		}
		return BookEdit{}, err
	}
	return BookEdit{
		Book:    b,
		Options: newFormOptions(authors, genres, b.Genre),
	}, nil
}

// UpdateBook validates the form and replaces the stored book, keeping its id
func (s *Service) UpdateBook(ctx context.Context, id string, form BookForm) (Book, error) {
	b, fields := form.Book()
	b.ID = id
	if len(fields) > 0 {
		return b, &ValidationError{Book: b, Fields: fields}
	}
	err := s.Books.Update(ctx, b)
	if errors.Is(err, ErrNotFound) {
		return Book{}, NotFound("book", id)
	}
	if err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return b, nil
}

// BookDeletion loads a book and the copies that would block its removal
func (s *Service) BookDeletion(ctx context.Context, id string) (Deletion, error) {
	d, err := s.deletion(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Deletion{}, NotFound("book", id)
	}
	if err != nil {
		return Deletion{}, fmt.Errorf("loading book deletion: %w", err)
	}
	return d, nil
}

// DeleteBook removes a book with no copies. When copies exist nothing is
// removed and the deletion is returned with ErrBookInUse. Removing a book
// that is already gone succeeds.
func (s *Service) DeleteBook(ctx context.Context, id string) (Deletion, error) {
	d, err := s.deletion(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Deletion{}, fmt.Errorf("loading book deletion: %w", err)
	}
	if d.Blocked() {
		return d, ErrBookInUse
	}
	err = s.Books.Delete(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Deletion{}, fmt.Errorf("deleting book: %w", err)
	}
	return d, nil
}

// deletion always fills Instances, even when the book lookup fails
func (s *Service) deletion(ctx context.Context, id string) (Deletion, error) {
	var d Deletion
	var g errgroup.Group
	g.Go(func() error {
		rec, err := s.record(ctx, id)
		if err != nil {
			return err
		}
		d.Book = rec
		return nil
	})
	g.Go(func() error {
		instances, err := s.Instances.FindByBook(ctx, id)
		if err != nil {
			return fmt.Errorf("selecting book instances: %w", err)
		}
		d.Instances = instances
		return nil
	})
	err := g.Wait()
	return d, err
}

// record loads a book and expands its author and genres
func (s *Service) record(ctx context.Context, id string) (BookRecord, error) {
	b, err := s.Books.Get(ctx, id)
	if err != nil {
		return BookRecord{}, fmt.Errorf("selecting book: %w", err)
	}
	rec := BookRecord{Book: b}
	var g errgroup.Group
	g.Go(func() error {
		a, err := s.Authors.Get(ctx, b.Author)
		if errors.Is(err, ErrNotFound) {
			// a dangling reference expands to an empty author
			return nil
		}
		if err != nil {
			return fmt.Errorf("selecting author: %w", err)
		}
		rec.Author = a
		return nil
	})
	g.Go(func() error {
		genres, err := s.Genres.FindByIDs(ctx, b.Genre)
		if err != nil {
			return fmt.Errorf("selecting genres: %w", err)
		}
		rec.Genres = genres
		return nil
	})
	if err := g.Wait(); err != nil {
		return BookRecord{}, err
	}
	return rec, nil
}

func newFormOptions(authors []Author, genres []Genre, selected []string) FormOptions {
	checked := make(map[string]bool, len(selected))
	for _, id := range selected {
		checked[id] = true
	}
	sorted := make([]Author, len(authors))
	copy(sorted, authors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FamilyName < sorted[j].FamilyName
	})
	options := make([]GenreOption, 0, len(genres))
	for _, g := range genres {
		options = append(options, GenreOption{Genre: g, Checked: checked[g.ID]})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
	return FormOptions{Authors: sorted, Genres: options}
}
