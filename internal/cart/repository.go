package cart

import (
	"errors"
	"sync"
)

var ErrInvalidCartID = errors.New("invalid cart id")

// Repository persists the full cart snapshot keyed by cart ID. A cart that
// was never written loads as an empty line map.
type Repository interface {
	Load(cartID string) (map[int]Line, error)
	Save(cartID string, lines map[int]Line, updatedAt string) error
	Delete(cartID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]map[int]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]map[int]Line)}
}

func (r *InMemoryRepository) Load(cartID string) (map[int]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make(map[int]Line, len(r.carts[cartID]))
	for pid, l := range r.carts[cartID] {
		lines[pid] = l
	}
	return lines, nil
}

func (r *InMemoryRepository) Save(cartID string, lines map[int]Line, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make(map[int]Line, len(lines))
	for pid, l := range lines {
		stored[pid] = l
	}
	r.carts[cartID] = stored
	return nil
}

func (r *InMemoryRepository) Delete(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}
