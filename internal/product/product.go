package product

// Product represents a storefront product and maps to the `products` table.
// Price is the effective (post-discount) price shown to customers; BasePrice
// and DiscountPercent are optional and only meaningful together.
type Product struct {
	ID              int      `json:"productId"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	BasePrice       *float64 `json:"basePrice,omitempty"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
	ImageURL        string   `json:"imageUrl"`
	CategoryID      *int     `json:"categoryId,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	Usage           *string  `json:"usage,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
	CreatedAt       *string  `json:"createdAt,omitempty"`
	UpdatedAt       *string  `json:"updatedAt,omitempty"`
}
