package preset

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/didley/decimal-input/pkg/logger"
)

// Service serves validated presets by name.
type Service struct {
	src Source
	log *slog.Logger

	mu      sync.RWMutex
	presets map[string]Preset
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService loads src and validates every preset. It fails when any
// preset is invalid or a name repeats.
func NewService(ctx context.Context, src Source, opts ...Option) (*Service, error) {
	s := &Service{src: src, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the source. On failure the presets already loaded stay
// in place.
func (s *Service) Reload(ctx context.Context) error {
	list, err := s.src.Load(ctx)
	if err != nil {
		return err
	}

	next := make(map[string]Preset, len(list))
	var errs []error
	for _, p := range list {
		if err := p.Validate(); err != nil {
			errs = append(errs, invalid(p.Name, err))
			continue
		}
		if _, dup := next[p.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name))
			continue
		}
		next[p.Name] = p.clone()
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.mu.Lock()
	s.presets = next
	s.mu.Unlock()

	s.log.InfoContext(ctx, "presets loaded", logger.Component("preset"), slog.Int("count", len(next)))
	return nil
}

// Get returns the preset called name.
func (s *Service) Get(name string) (Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.clone(), nil
}

// List returns every preset ordered by name.
func (s *Service) List() []Preset {
	s.mu.RLock()
	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p.clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Preset) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Check reports whether the source can still be read. It is meant for
// readiness probes.
func (s *Service) Check(ctx context.Context) error {
	_, err := s.src.Load(ctx)
	return err
}
