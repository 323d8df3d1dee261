package order

import "math"

const (
	// FreeShippingThreshold is the items subtotal above which shipping is free.
	FreeShippingThreshold = 100.0
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee = 10.0
	// TaxRate is applied to the items subtotal.
	TaxRate = 0.08
)

// PriceBreakdown is the computed price structure of an order.
type PriceBreakdown struct {
	Items    float64
	Shipping float64
	Tax      float64
	Total    float64
}

// ComputePrices derives the order price breakdown from the item snapshots.
// Tax is rounded to 2 decimal places before summing.
func ComputePrices(items []ItemSnapshot) PriceBreakdown {
	var itemsPrice float64
	for _, it := range items {
		itemsPrice += it.Price * float64(it.Quantity)
	}

	shipping := FlatShippingFee
	if itemsPrice > FreeShippingThreshold {
		shipping = 0
	}
	tax := math.Round(TaxRate*itemsPrice*100) / 100

	return PriceBreakdown{
		Items:    itemsPrice,
		Shipping: shipping,
		Tax:      tax,
		Total:    itemsPrice + shipping + tax,
	}
}
