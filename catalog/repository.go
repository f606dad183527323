package catalog

import "context"

/* Small interfaces, one per collection
 * Every store returns ErrNotFound (possibly wrapped) when an id does not resolve
 */

type BookReader interface {
	Get(ctx context.Context, id string) (Book, error)
	FindAll(ctx context.Context) ([]Book, error)
	Count(ctx context.Context) (int64, error)
}

type BookWriter interface {
	Insert(ctx context.Context, book Book) (string, error)
	Update(ctx context.Context, book Book) error
	Delete(ctx context.Context, id string) error
}

type BookRepository interface {
	BookReader
	BookWriter
}

type AuthorRepository interface {
	Get(ctx context.Context, id string) (Author, error)
	FindAll(ctx context.Context) ([]Author, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, author Author) (string, error)
}

type GenreRepository interface {
	Get(ctx context.Context, id string) (Genre, error)
	// FindByIDs skips ids that do not resolve
	FindByIDs(ctx context.Context, ids []string) ([]Genre, error)
	FindAll(ctx context.Context) ([]Genre, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, genre Genre) (string, error)
}

type InstanceRepository interface {
	// FindByBook returns an empty slice when no copy references the book
	FindByBook(ctx context.Context, bookID string) ([]BookInstance, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status InstanceStatus) (int64, error)
	Insert(ctx context.Context, instance BookInstance) (string, error)
}
