package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"risecli/internal/config"
	"risecli/internal/files"
	"risecli/internal/middleware"
)

// Server serves dataset archives from a local directory
type Server struct {
	cfg       config.ServerConfig
	dataDir   string
	discovery *files.Discovery
	logger    *slog.Logger
}

// New creates a dataset server over the given directory.
func New(cfg config.ServerConfig, dataDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		dataDir:   dataDir,
		discovery: files.NewDiscovery(dataDir),
		logger:    logger.With(slog.String("component", "dataset_server")),
	}
}

// Router returns the chi router with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(s.logger))
	r.Use(middleware.Recoverer(s.logger))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/list", s.handleList)
	r.Get("/download/{id}", s.handleDownload)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Dataset server listening",
			slog.String("addr", srv.Addr),
			slog.String("data_dir", s.dataDir))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("Shutting down dataset server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
