package main

import (
	"context"
	"os"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/local-library/config"
	"github.com/marcelsud/local-library/internal/store"
	"github.com/marcelsud/local-library/seed"
)

/* seed - loads a fixture into the configured store
 * Usage: go run cmd/seed/main.go [seed.yaml]
 */

func main() {
	logger := httplog.NewLogger("local-library-seed", httplog.Options{
		JSON: true,
	})

	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}
	seedFile := cfg.SeedFile
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		logger.Error().Err(err).Str("file", seedFile).Msg("loading seed")
		os.Exit(1)
	}

	ctx := context.Background()
	repos, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str("store", cfg.Store).Msg("opening store")
		os.Exit(1)
	}
	defer repos.Close(ctx)

	res, err := seed.Apply(ctx, loader.Fixture(), seed.Repositories{
		Authors:   repos.Authors,
		Genres:    repos.Genres,
		Books:     repos.Books,
		Instances: repos.Instances,
	})
	if err != nil {
		logger.Error().Err(err).Msg("applying seed")
		repos.Close(ctx)
		os.Exit(1)
	}
	logger.Info().
		Int("authors", res.Authors).
		Int("genres", res.Genres).
		Int("books", res.Books).
		Int("instances", res.Instances).
		Msg("seed applied")
}
