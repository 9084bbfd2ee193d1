package preset

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Source supplies the raw preset records.
type Source interface {
	Load(ctx context.Context) ([]Preset, error)
}

type inMemSource struct {
	mu      sync.RWMutex
	presets []Preset
}

// NewInMemSource returns a Source holding copies of presets.
func NewInMemSource(presets ...Preset) Source {
	s := &inMemSource{presets: make([]Preset, 0, len(presets))}
	for _, p := range presets {
		s.presets = append(s.presets, p.clone())
	}
	return s
}

func (s *inMemSource) Load(context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p.clone())
	}
	return out, nil
}

// file is the YAML document layout:
//
//	presets:
//	  - name: money
//	    min: 0
//	    digits: 2
type file struct {
	Presets []Preset `yaml:"presets"`
}

type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source that reads path on every Load, so a
// reload picks up edits.
func NewYAMLSource(path string) Source {
	return yamlSource{path: path}
}

func (s yamlSource) Load(ctx context.Context) ([]Preset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer f.Close()

	return DecodeYAML(f)
}

// DecodeYAML reads a presets document. Unknown keys are rejected so a
// misspelled "digts" does not silently drop a limit.
func DecodeYAML(r io.Reader) ([]Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return doc.Presets, nil
}
