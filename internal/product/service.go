package product

import "errors"

var ErrInvalidCategory = errors.New("invalid category")

// ServiceInterface allows other packages to depend on the product service
// without pulling in the concrete type.
type ServiceInterface interface {
	List(page, limit int) ([]Product, int, error)
	GetByID(id int) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of the catalog plus the total product count.
// Page and limit are normalized to the defaults used by the API.
func (s *Service) List(page, limit int) ([]Product, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.repo.List(page, limit)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Category == "" {
		p.Category = "Accessories"
	}
	if !ValidCategory(p.Category) {
		return Product{}, ErrInvalidCategory
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	if p.Category != "" && !ValidCategory(p.Category) {
		return Product{}, ErrInvalidCategory
	}
	return s.repo.Update(id, p)
}

// ResetProducts replaces all products with the given list (used for seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
