package order

// ItemSnapshot is a line item frozen at checkout time. Later product edits do
// not change it.
type ItemSnapshot struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ShippingAddress is the delivery address captured with the order.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// Order represents a completed checkout. Items and prices are immutable;
// only the fulfillment status moves.
type Order struct {
	ID              int             `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          int             `json:"userId"`
	Items           []ItemSnapshot  `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          Status          `json:"status"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     string          `json:"deliveredAt,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}

// AllowedPaymentMethods lists the accepted payment methods; the first one is
// the default when the client sends none.
var AllowedPaymentMethods = []string{
	"Cash on Delivery",
	"Credit Card",
	"PayPal",
}

// ValidPaymentMethod reports whether method is one of AllowedPaymentMethods.
func ValidPaymentMethod(method string) bool {
	for _, m := range AllowedPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
