package output

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrNoFetcher is returned to extractors by a Formatter built without WithFetcher
var ErrNoFetcher = errors.New("no fetcher configured")

// Fetcher looks up elements related to the one being formatted
type Fetcher interface {
	// FetchElement returns the element a get-by-GUID style endpoint returns.
	// found is false when the platform has none.
	FetchElement(ctx context.Context, service, path string) (el Element, found bool, err error)
	// FetchRelated returns the elements a find-style endpoint lists
	FetchRelated(ctx context.Context, service, path string) ([]Element, error)
}

type noFetcher struct{}

func (noFetcher) FetchElement(context.Context, string, string) (Element, bool, error) {
	return Element{}, false, ErrNoFetcher
}

func (noFetcher) FetchRelated(context.Context, string, string) ([]Element, error) {
	return nil, ErrNoFetcher
}

// AdditionalFunc derives extra column values for an element, keyed by column key.
// It is only consulted for columns still empty after properties and header fields.
type AdditionalFunc func(ctx context.Context, f Fetcher, el Element) (map[string]any, error)

// Extractor holds the per-type hooks used while populating columns
type Extractor struct {
	Additional AdditionalFunc
}

// Registry maps entity type names to extractors. Lookups are case-insensitive.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Extractor
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{extractors: map[string]Extractor{}}
}

// Register sets the extractor for typeName, replacing any earlier one
func (r *Registry) Register(typeName string, e Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[strings.ToLower(typeName)] = e
}

// Lookup returns the extractor for typeName. A nil registry has none.
func (r *Registry) Lookup(typeName string) (Extractor, bool) {
	if r == nil {
		return Extractor{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[strings.ToLower(typeName)]
	return e, ok
}
