package product

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(seed []Product) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func intPtr(v int) *int { return &v }

func TestGetProducts_FilterByCategory(t *testing.T) {
	seed := []Product{
		{ID: 1, Name: "Vitamin C Serum", Price: 300, CategoryID: intPtr(1)},
		{ID: 2, Name: "Night Cream", Price: 250, CategoryID: intPtr(2)},
	}
	app := setupApp(seed)

	req := httptest.NewRequest("GET", "/api/v1/products?category=2", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "Night Cream" {
		t.Fatalf("unexpected filter result: %+v", products)
	}

	// "all" behaves like no filter
	req2 := httptest.NewRequest("GET", "/api/v1/products?category=all", nil)
	res2, _ := app.Test(req2)
	var all []Product
	json.NewDecoder(res2.Body).Decode(&all)
	if len(all) != 2 {
		t.Fatalf("expected 2 products without filter, got %d", len(all))
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := setupApp(nil)

	req := httptest.NewRequest("GET", "/api/v1/product/99", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCreateProduct_AppliesDiscountInvariant(t *testing.T) {
	app := setupApp(nil)

	body := `{"name":"Rosewater Toner","price":0,"basePrice":300,"discountPercent":10,"imageUrl":"/img/toner.jpg"}`
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Product
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Price != 270 {
		t.Fatalf("expected derived price 270, got %v", created.Price)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned product id")
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	app := setupApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"price":-5}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", res.StatusCode)
	}
}

func TestDeleteProduct(t *testing.T) {
	app := setupApp([]Product{{ID: 7, Name: "Clay Mask", Price: 120}})

	req := httptest.NewRequest("DELETE", "/api/v1/product/7", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("DELETE", "/api/v1/product/7", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", res2.StatusCode)
	}
}
