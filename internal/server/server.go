// Package server exposes the tokenization pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"GoTokenize/internal/stopwords"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// WatchStopWords reloads the stop-word file on change while serving.
	WatchStopWords bool
}

// Server runs the HTTP API and, optionally, the stop-word file watcher.
type Server struct {
	handler   *Handler
	stopWords *stopwords.Source
	opts      Options
	logger    *slog.Logger
}

// New creates a Server around handler.
func New(handler *Handler, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{handler: handler, stopWords: handler.stopWords, opts: opts, logger: logger}
}

// Router returns the chi router with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)
	s.handler.RegisterRoutes(r)
	return r
}

// Serve starts the server and blocks until ctx is cancelled or the listener
// fails.
func (s *Server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.Router(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	if s.opts.WatchStopWords {
		eg.Go(func() error {
			return s.stopWords.Watch(egctx)
		})
	}

	eg.Go(func() error {
		s.logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
