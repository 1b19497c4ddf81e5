package cart

// Line is a single product-quantity pairing inside a cart. Name, price and
// image are snapshots taken when the product was added, so later catalog
// edits do not rewrite carts already in flight.
type Line struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
	Total     float64 `json:"total"`
}

// Cart is the aggregated view returned to clients.
type Cart struct {
	CartID     string  `json:"cartId"`
	Items      []Line  `json:"items"`
	TotalPrice float64 `json:"totalPrice"`
	ItemCount  int     `json:"itemCount"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

// GrandTotal sums price × quantity over all lines.
func GrandTotal(lines map[int]Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount sums the quantities of all lines. It differs from the number of
// distinct lines when any quantity exceeds one.
func ItemCount(lines map[int]Line) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
