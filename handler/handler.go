package handler

import (
	"log/slog"
	"net/http"

	"github.com/didley/decimal-input/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to w.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler answers a request whose binding or rendering failed.
type ErrorHandler func(ctx Context, err error)

type wrapConfig struct {
	binders      []binder.Func
	errorHandler ErrorHandler
	log          *slog.Logger
}

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

// WithBinders sets the binders run, in order, before the handler.
func WithBinders(binders ...binder.Func) WrapOption {
	return func(c *wrapConfig) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the error handler. The default is
// NewErrorHandler with the wrap logger.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger exposed as Context.Logger.
func WithLogger(l *slog.Logger) WrapOption {
	return func(c *wrapConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Wrap adapts h to http.HandlerFunc: it binds the request into a fresh R,
// calls h and renders the returned Response. Binding and render failures go
// to the error handler.
//
//	r.Get("/validate", handler.Wrap(h.validate,
//		handler.WithBinders(binder.Query()),
//		handler.WithLogger(log),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewErrorHandler()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r, cfg.log)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
