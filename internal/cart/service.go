package cart

import (
	"time"

	"github.com/techsphere/backend/internal/product"
)

// ServiceInterface is the cart surface the order workflow depends on.
type ServiceInterface interface {
	Get(userID int) (Cart, error)
	Items(userID int) ([]Item, error)
	Add(userID, productID, quantity int) (Cart, error)
	Update(userID, productID, quantity int) (Cart, error)
	Remove(userID, productID int) (Cart, error)
	Clear(userID int) (Cart, error)
}

// Service orchestrates cart mutations. Stock checks use the product's stock
// value at call time only; the checkout transaction is the final guard.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Items returns the raw stored line items, an empty slice if no cart exists.
func (s *Service) Items(userID int) ([]Item, error) {
	items, err := s.repo.GetItems(userID)
	if err == ErrCartNotFound {
		return []Item{}, nil
	}
	return items, err
}

// Get returns the user's cart enriched with product details, or the canonical
// empty cart if none exists yet.
func (s *Service) Get(userID int) (Cart, error) {
	items, err := s.repo.GetItems(userID)
	if err != nil {
		if err == ErrCartNotFound {
			return EmptyCart(), nil
		}
		return Cart{}, err
	}
	return s.enrich(items)
}

func (s *Service) Add(userID, productID, quantity int) (Cart, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, err
	}

	items, err := s.repo.GetItems(userID)
	if err != nil {
		if err != ErrCartNotFound {
			return Cart{}, err
		}
		items = []Item{}
	}

	merged := quantity
	idx := findItem(items, productID)
	if idx >= 0 {
		merged = items[idx].Quantity + quantity
	}
	if merged > p.CountInStock {
		return Cart{}, &product.StockError{ProductName: p.Name, Available: p.CountInStock}
	}

	if idx >= 0 {
		items[idx].Quantity = merged
	} else {
		items = append(items, Item{ProductID: productID, Quantity: quantity, Price: p.Price})
	}

	if err := s.repo.SaveItems(userID, items, now()); err != nil {
		return Cart{}, err
	}
	return s.enrich(items)
}

func (s *Service) Update(userID, productID, quantity int) (Cart, error) {
	items, err := s.repo.GetItems(userID)
	if err != nil {
		return Cart{}, err
	}

	idx := findItem(items, productID)
	if idx < 0 {
		return Cart{}, ErrItemNotFound
	}

	if quantity == 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		p, err := s.products.GetByID(productID)
		if err != nil {
			return Cart{}, err
		}
		if quantity > p.CountInStock {
			return Cart{}, &product.StockError{ProductName: p.Name, Available: p.CountInStock}
		}
		// quantity overwrites, the stored price is not re-captured
		items[idx].Quantity = quantity
	}

	if err := s.repo.SaveItems(userID, items, now()); err != nil {
		return Cart{}, err
	}
	return s.enrich(items)
}

func (s *Service) Remove(userID, productID int) (Cart, error) {
	items, err := s.repo.GetItems(userID)
	if err != nil {
		return Cart{}, err
	}

	idx := findItem(items, productID)
	if idx < 0 {
		return Cart{}, ErrItemNotFound
	}
	items = append(items[:idx], items[idx+1:]...)

	if err := s.repo.SaveItems(userID, items, now()); err != nil {
		return Cart{}, err
	}
	return s.enrich(items)
}

func (s *Service) Clear(userID int) (Cart, error) {
	if err := s.repo.ClearItems(userID, now()); err != nil {
		return Cart{}, err
	}
	return EmptyCart(), nil
}

func findItem(items []Item, productID int) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// enrich joins current product details onto stored line items and computes the
// totals from the stored add-time prices.
func (s *Service) enrich(items []Item) (Cart, error) {
	out := EmptyCart()
	if len(items) == 0 {
		return out, nil
	}

	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.ListByIDs(ids)
	if err != nil {
		return Cart{}, err
	}
	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			// product removed from catalog since the add; keep the cart usable
			continue
		}
		out.Items = append(out.Items, ItemView{Product: p, Quantity: it.Quantity, Price: it.Price})
		out.TotalAmount += it.Price * float64(it.Quantity)
		out.TotalItems += it.Quantity
	}
	return out, nil
}
