package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate_AssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(Order{
		Items:           []Item{{ProductID: 1, Name: "Vitamin C Serum", Price: 100, Quantity: 2}},
		TotalAmount:     200,
		Status:          StatusPending,
		CustomerPhone:   "01234567890",
		DeliveryAddress: "Cairo",
		PaymentMethod:   PaymentCOD,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("expected generated UUID")
	}
	if len(created.ShortRef()) != 8 {
		t.Fatalf("expected 8-char short ref, got %q", created.ShortRef())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_FilterAndItemsDecoding(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	cols := []string{"order_id", "items", "total_amount", "status", "customer_phone", "delivery_address", "payment_method", "created_at", "updated_at"}
	items := `[{"productId":1,"name":"Vitamin C Serum","price":100,"quantity":2,"image":"/img/serum.jpg"}]`
	mock.ExpectQuery("FROM orders WHERE status").
		WithArgs(StatusPending).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("aaaa-bbbb", items, 200.0, StatusPending, "01234567890", "Cairo", PaymentCOD, "t", "u"))

	orders, err := repo.List(StatusPending)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Name != "Vitamin C Serum" {
		t.Fatalf("items not decoded: %+v", orders[0])
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM orders WHERE order_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

	if _, err := repo.GetByID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM orders").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
