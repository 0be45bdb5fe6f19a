// Package api exposes the scenario store and pension calculator as a
// local request/response HTTP interface for the desktop front end.
//
// The surface mirrors the command set the front end invokes: save, list,
// get, delete scenarios, and calculate a pension. All errors cross the
// boundary as display strings, never structured codes.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/roach88/ferex/internal/scenario"
	"github.com/roach88/ferex/internal/store"
)

// Server routes front-end requests to the store and calculator.
//
// The store handle is injected at construction and shared by every
// request; the server performs no initialization of its own and must be
// given a store that is already open.
type Server struct {
	store *store.Store
	clock scenario.Clock
	ids   scenario.IDGenerator
	log   *slog.Logger
}

// NewServer creates a server over an open store.
//
// clock and ids may be nil, in which case the system clock and UUIDv7
// generation are used. Tests inject fixed implementations for
// deterministic stamps and ids.
func NewServer(st *store.Store, clock scenario.Clock, ids scenario.IDGenerator, log *slog.Logger) *Server {
	if clock == nil {
		clock = scenario.SystemClock{}
	}
	if ids == nil {
		ids = scenario.UUIDv7Generator{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: st, clock: clock, ids: ids, log: log}
}

// Router assembles the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Get("/api/v1/health", s.handleHealth)

	r.Route("/api/v1/scenarios", func(r chi.Router) {
		r.Post("/", s.handleSaveScenario)
		r.Get("/", s.handleListScenarios)
		r.Get("/{id}", s.handleGetScenario)
		r.Delete("/{id}", s.handleDeleteScenario)
	})

	r.Post("/api/v1/pension/calculate", s.handleCalculatePension)

	return r
}

// ListenAndServe runs the server on addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
