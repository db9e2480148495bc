package persistence

import (
	"slices"
	"sync"

	"pet_market/internal/domain/entity"
)

// ResultRepository holds the latest accepted fetch result.
type ResultRepository struct {
	mu    sync.RWMutex
	items []entity.Item
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

// Replace swaps the whole set; the caller may reuse items afterwards.
func (r *ResultRepository) Replace(items []entity.Item) {
	cloned := slices.Clone(items)

	r.mu.Lock()
	r.items = cloned
	r.mu.Unlock()
}

// Current returns a copy, empty before the first Replace.
func (r *ResultRepository) Current() []entity.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.items == nil {
		return []entity.Item{}
	}

	return slices.Clone(r.items)
}

func (r *ResultRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
