package order

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders. Writes are
// last-write-wins: two admin sessions editing the same order race without
// conflict detection, matching the hosted-backend behavior this replaces.
type Repository interface {
	Create(ord Order) (Order, error)
	// List returns orders newest-first, optionally restricted to one status.
	List(status string) ([]Order, error)
	GetByID(id string) (Order, error)
	Update(ord Order) (Order, error)
	Delete(id string) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{storage: make(map[string]Order, len(seed))}
	for _, ord := range seed {
		r.storage[ord.ID] = ord
	}
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	r.storage[ord.ID] = ord
	return ord, nil
}

func (r *InMemoryRepository) List(status string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.storage))
	for _, ord := range r.storage {
		if status != "" && ord.Status != status {
			continue
		}
		out = append(out, ord)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ord, ok := r.storage[id]; ok {
		return ord, nil
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Update(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[ord.ID]; !ok {
		return Order{}, ErrNotFound
	}
	r.storage[ord.ID] = ord
	return ord, nil
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return ErrNotFound
	}
	delete(r.storage, id)
	return nil
}
