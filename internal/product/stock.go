package product

import "fmt"

// StockError reports a requested quantity exceeding a product's current stock.
// Cart and order flows surface it as a business-rule failure naming the
// offending product.
type StockError struct {
	ProductName string
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Only %d available", e.ProductName, e.Available)
}
