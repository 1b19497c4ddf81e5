package order

import "strings"

// Order statuses. Transitions are deliberately unrestricted: the admin may
// move an order between any two statuses.
const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusInDelivery = "in_delivery"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Payment methods.
const (
	PaymentCOD      = "cod"
	PaymentInstapay = "instapay"
	PaymentWallet   = "wallet"
)

// Item is a denormalized snapshot of a cart line taken at checkout time.
type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order represents a customer purchase. It is created once at checkout,
// mutated only by admin edits, and deleted only by explicit admin action.
type Order struct {
	ID              string  `json:"orderId"`
	Items           []Item  `json:"items"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	CustomerPhone   string  `json:"customerPhone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ShortRef is the customer-facing order reference: the first 8 characters of
// the ID, uppercased.
func (o Order) ShortRef() string {
	id := o.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// ValidStatus reports whether s is one of the five known statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusInDelivery, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCOD, PaymentInstapay, PaymentWallet:
		return true
	}
	return false
}
