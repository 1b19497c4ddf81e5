package cart

import (
	"sort"
	"strings"
	"time"

	"github.com/ozerastore/ozera-backend/internal/product"
)

// Service is the cart aggregator: it owns the quantity invariants and derives
// line totals, the grand total and the item count. Every mutation persists
// the full snapshot so the cart survives reloads.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem applies a quantity delta for a product. An absent product is
// appended with a snapshot of its current name, price and image. The delta
// may be negative (editing an in-cart item down to a new absolute value) but
// an existing line is never pushed below quantity 1; callers compute deltas.
func (s *Service) AddItem(cartID string, productID, qtyDelta int) (Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return Cart{}, ErrInvalidCartID
	}

	lines, err := s.repo.Load(cartID)
	if err != nil {
		return Cart{}, err
	}

	if existing, ok := lines[productID]; ok {
		qty := existing.Quantity + qtyDelta
		if qty < 1 {
			qty = 1
		}
		existing.Quantity = qty
		existing.Total = existing.Price * float64(qty)
		lines[productID] = existing
	} else {
		p, err := s.products.GetByID(productID)
		if err != nil {
			return Cart{}, err
		}
		qty := qtyDelta
		if qty < 1 {
			qty = 1
		}
		lines[productID] = Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			ImageURL:  p.ImageURL,
			Total:     p.Price * float64(qty),
		}
	}

	return s.persist(cartID, lines)
}

// UpdateQuantity sets the absolute quantity of a line. A quantity of zero or
// less removes the line; updating a product that is not in the cart is a
// no-op, mirroring map semantics.
func (s *Service) UpdateQuantity(cartID string, productID, qty int) (Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return Cart{}, ErrInvalidCartID
	}

	lines, err := s.repo.Load(cartID)
	if err != nil {
		return Cart{}, err
	}

	if qty <= 0 {
		delete(lines, productID)
	} else if existing, ok := lines[productID]; ok {
		existing.Quantity = qty
		existing.Total = existing.Price * float64(qty)
		lines[productID] = existing
	}

	return s.persist(cartID, lines)
}

// RemoveItem deletes the line unconditionally.
func (s *Service) RemoveItem(cartID string, productID int) (Cart, error) {
	return s.UpdateQuantity(cartID, productID, 0)
}

func (s *Service) Get(cartID string) (Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return Cart{}, ErrInvalidCartID
	}
	lines, err := s.repo.Load(cartID)
	if err != nil {
		return Cart{}, err
	}
	return buildCart(cartID, lines, ""), nil
}

// Clear empties the cart entirely.
func (s *Service) Clear(cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return ErrInvalidCartID
	}
	return s.repo.Delete(cartID)
}

func (s *Service) persist(cartID string, lines map[int]Line) (Cart, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.repo.Save(cartID, lines, now); err != nil {
		return Cart{}, err
	}
	return buildCart(cartID, lines, now), nil
}

func buildCart(cartID string, lines map[int]Line, updatedAt string) Cart {
	items := make([]Line, 0, len(lines))
	for _, l := range lines {
		items = append(items, l)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	return Cart{
		CartID:     cartID,
		Items:      items,
		TotalPrice: GrandTotal(lines),
		ItemCount:  ItemCount(lines),
		UpdatedAt:  updatedAt,
	}
}
