package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.UpstreamRecord
	err      error
	calls    int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(products ...models.UpstreamRecord) *InMemoryProductRepository {
	return &InMemoryProductRepository{products: products}
}

// GetAll returns a copy of the stored snapshot, or the configured failure.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.UpstreamRecord, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, r.err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	out := make([]models.UpstreamRecord, len(r.products))
	copy(out, r.products)
	return out, nil
}

// SetProducts replaces the stored snapshot.
func (r *InMemoryProductRepository) SetProducts(products ...models.UpstreamRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = products
}

// FailWith makes every GetAll call fail with err. A nil err restores normal behaviour.
func (r *InMemoryProductRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Calls returns how many times GetAll was invoked.
func (r *InMemoryProductRepository) Calls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calls
}

// Clear drops the snapshot, the failure and the call count.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
	r.err = nil
	r.calls = 0
}
