package store

import (
	"context"
	"fmt"

	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/catalog/mongo"
	"github.com/marcelsud/local-library/catalog/redis"
	"github.com/marcelsud/local-library/config"
)

// Store is the set of repositories backing the catalog
type Store struct {
	Books     catalog.BookRepository
	Authors   catalog.AuthorRepository
	Genres    catalog.GenreRepository
	Instances catalog.InstanceRepository

	close func(ctx context.Context) error
}

// Open connects to the backend selected by cfg.Store
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store {
	case config.StoreRedis:
		s, err := redis.NewStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return &Store{
			Books:     s.Books(),
			Authors:   s.Authors(),
			Genres:    s.Genres(),
			Instances: s.Instances(),
			close:     s.Close,
		}, nil
	case config.StoreMongo:
		s, err := mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &Store{
			Books:     s.Books(),
			Authors:   s.Authors(),
			Genres:    s.Genres(),
			Instances: s.Instances(),
			close:     s.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
