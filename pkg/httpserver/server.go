package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/didley/decimal-input/pkg/logger"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithListener serves on l instead of listening on Config.Addr.
func WithListener(l net.Listener) Option {
	return func(s *Server) { s.listener = l }
}

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT or SIGTERM, then shuts it down gracefully.
type Server struct {
	cfg      Config
	log      *slog.Logger
	listener net.Listener

	mu      sync.Mutex
	srv     *http.Server
	ready   chan struct{}
	stopped bool
}

// New returns a Server for cfg. Zero Addr and ShutdownTimeout take their
// defaults.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg:   cfg.withDefaults(),
		log:   logger.Discard(),
		ready: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready is closed once the server accepts connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, or "" before the server is ready.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil || s.srv == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run serves handler and blocks until shutdown has finished. A nil handler
// serves 404 for every path.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	if s.listener == nil {
		l, err := net.Listen("tcp", s.cfg.Addr)
		if err != nil {
			s.mu.Unlock()
			return errors.Join(ErrStart, err)
		}
		s.listener = l
	}
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}
	srv, l := s.srv, s.listener
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	s.log.Info("http server started", logger.Component("httpserver"), slog.String("addr", l.Addr().String()))
	close(s.ready)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	case <-ctx.Done():
	}

	// The parent context is done; shut down on a fresh one.
	err := s.Shutdown(context.WithoutCancel(ctx))
	<-errCh
	return err
}

// Shutdown stops accepting connections and waits up to
// Config.ShutdownTimeout for in-flight requests. Calls after the first, and
// calls before Run, return nil.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.srv == nil || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	srv := s.srv
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.log.Error("http server shutdown failed", logger.Component("httpserver"), logger.Error(err))
		return errors.Join(ErrShutdown, err)
	}
	s.log.Info("http server stopped", logger.Component("httpserver"))
	return nil
}
