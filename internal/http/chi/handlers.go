package chi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/internal/view"
	"github.com/rs/zerolog"
)

// Renderer writes a named view filled with its page data
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handlers sets up the catalog routes. metrics may be nil to leave /metrics unmounted.
func Handlers(ctx context.Context, catalogService catalog.UseCase, views Renderer, metrics http.Handler) *chi.Mux {
	logger := httplog.NewLogger("local-library", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog", http.StatusFound)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/catalog", func(r chi.Router) {
		r.Method(http.MethodGet, "/", getIndex(catalogService, views))
		r.Method(http.MethodGet, "/books", getBooks(catalogService, views))

		r.Method(http.MethodGet, "/book/create", getBookCreate(catalogService, views))
		r.Method(http.MethodPost, "/book/create", postBookCreate(catalogService, views))

		r.Method(http.MethodGet, "/book/{id}", getBook(catalogService, views))

		r.Method(http.MethodGet, "/book/{id}/delete", getBookDelete(catalogService, views))
		r.Method(http.MethodPost, "/book/{id}/delete", postBookDelete(catalogService, views))

		r.Method(http.MethodGet, "/book/{id}/update", getBookUpdate(catalogService, views))
		r.Method(http.MethodPost, "/book/{id}/update", postBookUpdate(catalogService, views))
	})

	return r
}

// render buffers the view so a template failure can still produce a clean 500
func render(w http.ResponseWriter, r *http.Request, views Renderer, status int, name string, data any) {
	var buf bytes.Buffer
	if err := views.Render(&buf, name, data); err != nil {
		logError(r, err).Str("view", name).Msg("rendering view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError shows the error view with the status carried by err
func renderError(w http.ResponseWriter, r *http.Request, views Renderer, err error) {
	status := catalog.StatusCode(err)
	logError(r, err).Int("status", status).Msg("request failed")

	message := http.StatusText(status)
	var e *catalog.Error
	if errors.As(err, &e) {
		message = e.Msg
	}
	render(w, r, views, status, view.Error, view.ErrorPage{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}

// logError starts an error event on the request logger
func logError(r *http.Request, err error) *zerolog.Event {
	logger := httplog.LogEntry(r.Context())
	return logger.Error().Err(err)
}
