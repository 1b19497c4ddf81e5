package cart

import (
	"testing"

	"github.com/ozerastore/ozera-backend/internal/product"
)

func newTestService(products []product.Product) *Service {
	productService := product.NewService(product.NewInMemoryRepository(products))
	return NewService(NewInMemoryRepository(), productService)
}

var catalog = []product.Product{
	{ID: 1, Name: "Vitamin C Serum", Price: 100, ImageURL: "/img/serum.jpg"},
	{ID: 2, Name: "Night Cream", Price: 50, ImageURL: "/img/cream.jpg"},
	{ID: 3, Name: "Clay Mask", Price: 75, ImageURL: "/img/mask.jpg"},
}

func TestAddItem_MergesDuplicateProduct(t *testing.T) {
	s := newTestService(catalog)

	if _, err := s.AddItem("cart-a", 1, 2); err != nil {
		t.Fatal(err)
	}
	cart, err := s.AddItem("cart-a", 1, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(cart.Items))
	}
	line := cart.Items[0]
	if line.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", line.Quantity)
	}
	if line.Total != 500 {
		t.Fatalf("expected total 500, got %v", line.Total)
	}
}

func TestGrandTotalScenario(t *testing.T) {
	// {productA: qty 2 @100}, {productB: qty 1 @50} -> total 250, count 3
	s := newTestService(catalog)

	if _, err := s.AddItem("cart-a", 1, 2); err != nil {
		t.Fatal(err)
	}
	cart, err := s.AddItem("cart-a", 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	if cart.TotalPrice != 250 {
		t.Fatalf("expected grand total 250, got %v", cart.TotalPrice)
	}
	if cart.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", cart.ItemCount)
	}
}

func TestGrandTotal_InvariantOverMutationSequence(t *testing.T) {
	s := newTestService(catalog)

	ops := []func() (Cart, error){
		func() (Cart, error) { return s.AddItem("cart-a", 1, 2) },
		func() (Cart, error) { return s.AddItem("cart-a", 2, 4) },
		func() (Cart, error) { return s.UpdateQuantity("cart-a", 2, 1) },
		func() (Cart, error) { return s.AddItem("cart-a", 3, 1) },
		func() (Cart, error) { return s.RemoveItem("cart-a", 1) },
		func() (Cart, error) { return s.AddItem("cart-a", 3, -5) },
	}

	for i, op := range ops {
		cart, err := op()
		if err != nil {
			t.Fatalf("op %d failed: %v", i, err)
		}
		want := 0.0
		count := 0
		for _, l := range cart.Items {
			want += l.Price * float64(l.Quantity)
			count += l.Quantity
		}
		if cart.TotalPrice != want {
			t.Fatalf("op %d: grand total %v, want sum of line totals %v", i, cart.TotalPrice, want)
		}
		if cart.ItemCount != count {
			t.Fatalf("op %d: item count %v, want %v", i, cart.ItemCount, count)
		}
	}
}

func TestUpdateQuantityZero_EqualsRemove(t *testing.T) {
	s := newTestService(catalog)

	s.AddItem("cart-a", 1, 2)
	s.AddItem("cart-a", 2, 1)
	s.AddItem("cart-b", 1, 2)
	s.AddItem("cart-b", 2, 1)

	viaUpdate, err := s.UpdateQuantity("cart-a", 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	viaRemove, err := s.RemoveItem("cart-b", 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(viaUpdate.Items) != len(viaRemove.Items) || len(viaUpdate.Items) != 1 {
		t.Fatalf("expected both carts to hold one line, got %d and %d", len(viaUpdate.Items), len(viaRemove.Items))
	}
	if viaUpdate.Items[0].ProductID != 2 || viaRemove.Items[0].ProductID != 2 {
		t.Fatal("expected product 1 removed from both carts")
	}
	if viaUpdate.TotalPrice != viaRemove.TotalPrice {
		t.Fatalf("totals diverged: %v vs %v", viaUpdate.TotalPrice, viaRemove.TotalPrice)
	}
}

func TestAddItem_NegativeDeltaNeverBelowOne(t *testing.T) {
	s := newTestService(catalog)

	s.AddItem("cart-a", 1, 3)
	cart, err := s.AddItem("cart-a", 1, -10)
	if err != nil {
		t.Fatal(err)
	}

	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItem_SnapshotsProductFields(t *testing.T) {
	s := newTestService(catalog)

	cart, err := s.AddItem("cart-a", 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	line := cart.Items[0]
	if line.Name != "Night Cream" || line.Price != 50 || line.ImageURL != "/img/cream.jpg" {
		t.Fatalf("expected product snapshot on line, got %+v", line)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	s := newTestService(catalog)

	if _, err := s.AddItem("cart-a", 99, 1); err != product.ErrNotFound {
		t.Fatalf("expected product.ErrNotFound, got %v", err)
	}
}

func TestClear_EmptiesCart(t *testing.T) {
	s := newTestService(catalog)

	s.AddItem("cart-a", 1, 2)
	if err := s.Clear("cart-a"); err != nil {
		t.Fatal(err)
	}

	cart, err := s.Get("cart-a")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 || cart.TotalPrice != 0 || cart.ItemCount != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", cart)
	}
}

func TestCartsAreIsolatedByID(t *testing.T) {
	s := newTestService(catalog)

	s.AddItem("cart-a", 1, 2)
	s.AddItem("cart-b", 2, 1)

	a, _ := s.Get("cart-a")
	b, _ := s.Get("cart-b")
	if len(a.Items) != 1 || len(b.Items) != 1 || a.Items[0].ProductID == b.Items[0].ProductID {
		t.Fatalf("carts leaked across IDs: %+v %+v", a, b)
	}
}

func TestEmptyCartID_Rejected(t *testing.T) {
	s := newTestService(catalog)

	if _, err := s.AddItem("  ", 1, 1); err != ErrInvalidCartID {
		t.Fatalf("expected ErrInvalidCartID, got %v", err)
	}
	if _, err := s.Get(""); err != ErrInvalidCartID {
		t.Fatalf("expected ErrInvalidCartID, got %v", err)
	}
}
