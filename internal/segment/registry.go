package segment

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Built-in segmenter names.
const (
	NameStandard   = "standard"
	NameWhitespace = "whitespace"
	NameKeyword    = "keyword"
)

var (
	ErrUnknownSegmenter = errors.New("unknown segmenter")
	ErrSegmenterExists  = errors.New("segmenter already registered")
)

// Registry manages segmenters by name.
type Registry struct {
	segmenters map[string]Segmenter
	mu         sync.RWMutex
}

// NewRegistry creates a Registry with the built-in segmenters registered.
func NewRegistry() *Registry {
	r := &Registry{
		segmenters: make(map[string]Segmenter),
	}
	r.segmenters[NameStandard] = NewStandard()
	r.segmenters[NameWhitespace] = NewWhitespace()
	r.segmenters[NameKeyword] = NewKeyword()
	return r
}

// Get returns the segmenter registered under the given name.
func (r *Registry) Get(name string) (Segmenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.segmenters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSegmenter, name)
	}
	return s, nil
}

// Register adds a custom segmenter to the registry.
func (r *Registry) Register(name string, s Segmenter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.segmenters[name]; exists {
		return fmt.Errorf("%w: %q", ErrSegmenterExists, name)
	}
	r.segmenters[name] = s
	return nil
}

// Names returns the sorted names of all registered segmenters.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.segmenters))
	for name := range r.segmenters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
