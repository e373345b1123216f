package indicator

import (
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// Registry names the series of a graph so they can be looked up by callers
// that only know the indicator name.
type Registry interface {
	Register(name types.IndicatorType, series Series) error
	Get(name types.IndicatorType) (Series, error)
	List() []types.IndicatorType
	Remove(name types.IndicatorType) error
}

// RegistryV1 is a map-backed registry safe for concurrent lookups.
type RegistryV1 struct {
	series map[types.IndicatorType]Series
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *RegistryV1 {
	return &RegistryV1{
		series: make(map[types.IndicatorType]Series),
	}
}

// Register adds a series under name.
func (r *RegistryV1) Register(name types.IndicatorType, series Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.series[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "indicator %s already registered", name)
	}

	r.series[name] = series

	return nil
}

// Get retrieves a series by name.
func (r *RegistryV1) Get(name types.IndicatorType) (Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	series, exists := r.series[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %s not found", name)
	}

	return series, nil
}

// List returns the registered names in lexical order.
func (r *RegistryV1) List() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.series))
	for name := range r.series {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Remove deletes a series from the registry. It does not dispose it.
func (r *RegistryV1) Remove(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.series[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %s not found", name)
	}

	delete(r.series, name)

	return nil
}
