package cart

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ozerastore/ozera-backend/internal/product"
)

func makeApp() *fiber.App {
	app := fiber.New()
	productService := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Vitamin C Serum", Price: 100, ImageURL: "/img/serum.jpg"},
		{ID: 2, Name: "Night Cream", Price: 50, ImageURL: "/img/cream.jpg"},
	}))
	h := NewHandler(NewService(NewInMemoryRepository(), productService))
	h.RegisterPublicRoutes(app)
	return app
}

func TestCartRoutes_Flow(t *testing.T) {
	app := makeApp()

	// add product 1 twice: 2 then 1 -> quantity 3
	req := httptest.NewRequest("POST", "/api/v1/cart/browser-abc/items", strings.NewReader(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/cart/browser-abc/items", strings.NewReader(`{"productId":1,"quantity":1}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	var cart Cart
	json.NewDecoder(res2.Body).Decode(&cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected merged line with quantity 3, got %+v", cart.Items)
	}
	if cart.TotalPrice != 300 {
		t.Fatalf("expected total 300, got %v", cart.TotalPrice)
	}

	// set absolute quantity
	req3 := httptest.NewRequest("PUT", "/api/v1/cart/browser-abc/items/1", strings.NewReader(`{"quantity":5}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	json.NewDecoder(res3.Body).Decode(&cart)
	if cart.Items[0].Quantity != 5 || cart.TotalPrice != 500 {
		t.Fatalf("expected quantity 5 / total 500, got %+v", cart)
	}

	// quantity zero removes the line
	req4 := httptest.NewRequest("PUT", "/api/v1/cart/browser-abc/items/1", strings.NewReader(`{"quantity":0}`))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4)
	json.NewDecoder(res4.Body).Decode(&cart)
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after zero quantity, got %+v", cart.Items)
	}

	// clear returns 204
	res5, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/cart/browser-abc", nil))
	if res5.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res5.StatusCode)
	}
}

func TestAddItem_UnknownProductReturns404(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("POST", "/api/v1/cart/browser-abc/items", strings.NewReader(`{"productId":99}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestAddItem_InvalidPayload(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("POST", "/api/v1/cart/browser-abc/items", strings.NewReader(`{"productId":0}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestGetCart_SurvivesAcrossRequests(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("POST", "/api/v1/cart/browser-xyz/items", strings.NewReader(`{"productId":2,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	app.Test(req)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/cart/browser-xyz", nil))
	var cart Cart
	json.NewDecoder(res.Body).Decode(&cart)
	if cart.ItemCount != 2 || cart.TotalPrice != 100 {
		t.Fatalf("expected persisted cart, got %+v", cart)
	}
}
