package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/techsphere/backend/internal/cart"
	"github.com/techsphere/backend/internal/product"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrAlreadyCancelled = errors.New("order is already cancelled")
	ErrNotCancellable   = errors.New("cannot cancel order that has been shipped or delivered")
)

// TransitionError reports an illegal status move.
type TransitionError struct {
	From, To Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// Service runs the cart-to-order workflow.
type Service struct {
	repo     Repository
	carts    cart.ServiceInterface
	products product.ServiceInterface
}

func NewService(repo Repository, carts cart.ServiceInterface, products product.ServiceInterface) *Service {
	return &Service{repo: repo, carts: carts, products: products}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Place converts the user's cart into an order: re-validates stock per item,
// snapshots items at the product's current price, computes the price
// breakdown, then persists order + stock decrement + cart clear atomically.
func (s *Service) Place(userID int, addr ShippingAddress, paymentMethod string) (Order, error) {
	items, err := s.carts.Items(userID)
	if err != nil {
		return Order{}, err
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	snapshots := make([]ItemSnapshot, 0, len(items))
	for _, it := range items {
		p, err := s.products.GetByID(it.ProductID)
		if err != nil {
			return Order{}, err
		}
		if p.CountInStock < it.Quantity {
			return Order{}, &product.StockError{ProductName: p.Name, Available: p.CountInStock}
		}
		snapshots = append(snapshots, ItemSnapshot{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
	}

	if paymentMethod == "" {
		paymentMethod = AllowedPaymentMethods[0]
	}

	prices := ComputePrices(snapshots)
	ts := now()
	ord := Order{
		OrderNumber:     uuid.NewString(),
		UserID:          userID,
		Items:           snapshots,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      prices.Items,
		ShippingPrice:   prices.Shipping,
		TaxPrice:        prices.Tax,
		TotalPrice:      prices.Total,
		Status:          StatusPending,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}

	return s.repo.Place(ord)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByUser(userID, page, limit int) ([]Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.repo.ListByUser(userID, page, limit)
}

// SetStatus applies an administrative status change, rejecting moves the
// transition table does not allow. Reaching delivered also stamps the
// delivery time.
func (s *Service) SetStatus(id int, next Status) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	if !ord.Status.CanTransitionTo(next) {
		return Order{}, &TransitionError{From: ord.Status, To: next}
	}

	ord.Status = next
	ord.UpdatedAt = now()
	if next == StatusDelivered {
		ord.IsDelivered = true
		ord.DeliveredAt = ord.UpdatedAt
	}

	if err := s.repo.UpdateStatus(ord); err != nil {
		return Order{}, err
	}
	return ord, nil
}

// Cancel cancels an order still in a cancellable state, restoring each item's
// quantity onto the product's stock.
func (s *Service) Cancel(id int) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	if ord.Status == StatusCancelled {
		return Order{}, ErrAlreadyCancelled
	}
	if !ord.Status.Cancellable() {
		return Order{}, ErrNotCancellable
	}

	ord.UpdatedAt = now()
	if err := s.repo.Cancel(ord); err != nil {
		return Order{}, err
	}
	ord.Status = StatusCancelled
	return ord, nil
}
