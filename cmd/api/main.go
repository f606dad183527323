package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/config"
	"github.com/marcelsud/local-library/internal/http/chi"
	"github.com/marcelsud/local-library/internal/store"
	"github.com/marcelsud/local-library/internal/view"
	"github.com/marcelsud/local-library/metrics"
)

const TIMEOUT = 30 * time.Second

/* Entry point of the catalog web server
 * Everything process-wide is built here and injected: config, store, service, views and metrics
 */

func main() {
	logger := httplog.NewLogger("local-library", httplog.Options{
		JSON: true,
	})

	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	repos, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str("store", cfg.Store).Msg("opening store")
		return
	}
	defer repos.Close(context.Background())

	s := catalog.NewService(repos.Books, repos.Authors, repos.Genres, repos.Instances)

	views, err := view.New()
	if err != nil {
		logger.Error().Err(err).Msg("parsing views")
		return
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		exporter, err := metrics.NewOTelExporter(metrics.NewCatalogCollector(s, repos.Instances))
		if err != nil {
			logger.Error().Err(err).Msg("creating metrics exporter")
			return
		}
		defer exporter.Shutdown(context.Background())
		metricsHandler = exporter.ServeHTTP()
	}

	r := chi.Handlers(ctx, s, views, metricsHandler)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("serving")
		return
	}
	err = <-errShutdown
	if err != nil {
		logger.Error().Err(err).Msg("shutting down")
		return
	}
	logger.Info().Msg("server stopped")
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
