package order

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `order_id, items, total_amount, status, customer_phone, delivery_address, payment_method, created_at, updated_at`

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	_, err = r.db.Exec(`INSERT INTO orders (order_id, items, total_amount, status, customer_phone, delivery_address, payment_method, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		ord.ID, itemsJSON, ord.TotalAmount, ord.Status, ord.CustomerPhone, ord.DeliveryAddress, ord.PaymentMethod, ord.CreatedAt, ord.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) List(status string) ([]Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status != "" {
		rows, err = r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at DESC`, status)
	} else {
		rows, err = r.db.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, nil
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Update(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	res, err := r.db.Exec(`UPDATE orders SET items=$1, total_amount=$2, status=$3, customer_phone=$4, delivery_address=$5, payment_method=$6, updated_at=$7
        WHERE order_id = $8`,
		itemsJSON, ord.TotalAmount, ord.Status, ord.CustomerPhone, ord.DeliveryAddress, ord.PaymentMethod, ord.UpdatedAt, ord.ID)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord       Order
		itemsJSON []byte
	)
	if err := row.Scan(&ord.ID, &itemsJSON, &ord.TotalAmount, &ord.Status, &ord.CustomerPhone,
		&ord.DeliveryAddress, &ord.PaymentMethod, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}
