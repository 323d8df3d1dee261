package cart

import (
	"errors"
	"sync"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// Repository persists the raw line items of a user's cart. Enrichment with
// product details happens in the service.
type Repository interface {
	GetItems(userID int) ([]Item, error)
	// SaveItems upserts the cart row, creating it lazily on first add.
	SaveItems(userID int, items []Item, updatedAt string) error
	ClearItems(userID int, updatedAt string) error
}

// InMemoryRepository is used for tests and the no-database dev server.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int][]Item)}
}

func (r *InMemoryRepository) GetItems(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items, ok := r.carts[userID]
	if !ok {
		return nil, ErrCartNotFound
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) SaveItems(userID int, items []Item, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[userID] = stored
	return nil
}

func (r *InMemoryRepository) ClearItems(userID int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[userID]; !ok {
		return ErrCartNotFound
	}
	r.carts[userID] = []Item{}
	return nil
}
