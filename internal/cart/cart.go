package cart

import "github.com/techsphere/backend/internal/product"

// Item is a stored cart line: one per product, price captured at add time.
type Item struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ItemView is a line item enriched with current product details for responses.
type ItemView struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}

// Cart is the API shape of a user's cart. An absent cart renders as the
// canonical empty cart rather than an error.
type Cart struct {
	Items       []ItemView `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	TotalItems  int        `json:"totalItems"`
}

// EmptyCart is the read-time default returned when a user has no cart row yet.
func EmptyCart() Cart {
	return Cart{Items: []ItemView{}, TotalAmount: 0, TotalItems: 0}
}
