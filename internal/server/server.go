// Package server hosts the built site over HTTP for local previewing. It
// serves the output directory as-is; rebuilds happen out of band via the
// build command.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const (
	defaultPort            = 8000
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// ErrSiteDirRequired indicates the server has no site directory configured.
var ErrSiteDirRequired = errors.New("server: site directory is required")

// Config carries the preview server settings.
type Config struct {
	SiteDir         string
	Port            int
	ShutdownTimeout time.Duration
}

// Server serves a built site directory until its context is cancelled.
type Server struct {
	cfg    Config
	logger interfaces.Logger
}

// New validates the configuration and returns a preview server.
func New(cfg Config, logger interfaces.Logger) (*Server, error) {
	if strings.TrimSpace(cfg.SiteDir) == "" {
		return nil, ErrSiteDirRequired
	}
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Server{cfg: cfg, logger: logger}, nil
}

// Handler builds the router serving the site directory.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	fileServer := http.FileServer(http.Dir(filepath.Clean(s.cfg.SiteDir)))
	r.Handle("/*", fileServer)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	if _, err := os.Stat(s.cfg.SiteDir); err != nil {
		return fmt.Errorf("server: site directory %s: %w", s.cfg.SiteDir, err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", httpServer.Addr, err)
	}

	s.logger.Info("serving site",
		"dir", s.cfg.SiteDir,
		"url", fmt.Sprintf("http://localhost:%d/", s.cfg.Port),
	)

	errs := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
			return
		}
		errs <- nil
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return <-errs
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
