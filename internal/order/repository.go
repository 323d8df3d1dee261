package order

import (
	"errors"
	"sort"
	"sync"

	"github.com/techsphere/backend/internal/cart"
	"github.com/techsphere/backend/internal/product"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository persists orders. Place and Cancel are atomic: either every write
// (order row, stock adjustments, cart clear) lands or none do.
type Repository interface {
	// Place persists the order, decrements each product's stock and empties
	// the owner's cart in a single unit. A product whose remaining stock is
	// below the ordered quantity fails the whole placement with a StockError.
	Place(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID, page, limit int) ([]Order, int, error)
	UpdateStatus(ord Order) error
	// Cancel restores each item's quantity onto product stock and marks the
	// order cancelled, atomically.
	Cancel(ord Order) error
}

// InMemoryRepository backs tests and the no-database dev server. It reuses
// the in-memory product and cart repositories for stock and cart effects.
type InMemoryRepository struct {
	mu       sync.RWMutex
	orders   map[int]Order
	nextID   int
	products *product.InMemoryRepository
	carts    *cart.InMemoryRepository
}

func NewInMemoryRepository(products *product.InMemoryRepository, carts *cart.InMemoryRepository) *InMemoryRepository {
	return &InMemoryRepository{
		orders:   make(map[int]Order),
		nextID:   1,
		products: products,
		carts:    carts,
	}
}

func (r *InMemoryRepository) Place(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range ord.Items {
		p, err := r.products.GetByID(it.ProductID)
		if err != nil {
			r.rollbackStock(ord.Items[:i])
			return Order{}, err
		}
		if p.CountInStock < it.Quantity {
			r.rollbackStock(ord.Items[:i])
			return Order{}, &product.StockError{ProductName: p.Name, Available: p.CountInStock}
		}
		if err := r.products.AdjustStock(it.ProductID, -it.Quantity); err != nil {
			r.rollbackStock(ord.Items[:i])
			return Order{}, err
		}
	}

	ord.ID = r.nextID
	r.nextID++
	r.orders[ord.ID] = ord

	if r.carts != nil {
		// lazily-created carts may not exist yet; nothing to clear then
		if err := r.carts.ClearItems(ord.UserID, ord.UpdatedAt); err != nil && err != cart.ErrCartNotFound {
			return Order{}, err
		}
	}
	return ord, nil
}

func (r *InMemoryRepository) rollbackStock(placed []ItemSnapshot) {
	for _, it := range placed {
		r.products.AdjustStock(it.ProductID, it.Quantity)
	}
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ord, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *InMemoryRepository) ListByUser(userID, page, limit int) ([]Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			all = append(all, ord)
		}
	}
	// newest first
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := len(all)
	start := (page - 1) * limit
	if start >= total {
		return []Order{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *InMemoryRepository) UpdateStatus(ord Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[ord.ID]; !ok {
		return ErrNotFound
	}
	r.orders[ord.ID] = ord
	return nil
}

func (r *InMemoryRepository) Cancel(ord Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[ord.ID]; !ok {
		return ErrNotFound
	}
	for _, it := range ord.Items {
		r.products.AdjustStock(it.ProductID, it.Quantity)
	}
	ord.Status = StatusCancelled
	r.orders[ord.ID] = ord
	return nil
}
