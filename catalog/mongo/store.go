package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names of the catalog database
const (
	booksCollection     = "books"
	authorsCollection   = "authors"
	genresCollection    = "genres"
	instancesCollection = "bookinstances"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and checks the connection
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *Store) Books() *BookRepository {
	return NewBookRepository(s.db.Collection(booksCollection))
}

func (s *Store) Authors() *AuthorRepository {
	return NewAuthorRepository(s.db.Collection(authorsCollection))
}

func (s *Store) Genres() *GenreRepository {
	return NewGenreRepository(s.db.Collection(genresCollection))
}

func (s *Store) Instances() *InstanceRepository {
	return NewInstanceRepository(s.db.Collection(instancesCollection))
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
