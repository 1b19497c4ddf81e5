package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `product_id, name, description, price, base_price, discount_percent, image_url, category_id, benefits, usage_text, ingredients, created_at, updated_at`

func (r *PostgresRepository) List(categoryID *int) []Product {
	var (
		rows *sql.Rows
		err  error
	)
	if categoryID != nil {
		rows, err = r.db.Query(`SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY product_id`, *categoryID)
	} else {
		rows, err = r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY product_id`)
	}
	if err != nil {
		// keep the storefront resilient: an unreadable table lists as empty
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO products (name, description, price, base_price, discount_percent, image_url, category_id, benefits, usage_text, ingredients, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING product_id`,
		p.Name, p.Description, p.Price, p.BasePrice, p.DiscountPercent, p.ImageURL, p.CategoryID,
		pq.Array(p.Benefits), p.Usage, pq.Array(p.Ingredients), p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(`UPDATE products SET name=$1, description=$2, price=$3, base_price=$4, discount_percent=$5, image_url=$6, category_id=$7, benefits=$8, usage_text=$9, ingredients=$10, updated_at=$11
        WHERE product_id = $12`,
		p.Name, p.Description, p.Price, p.BasePrice, p.DiscountPercent, p.ImageURL, p.CategoryID,
		pq.Array(p.Benefits), p.Usage, pq.Array(p.Ingredients), p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE product_id = $1`, id)
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

func scanProduct(row rowScanner) (Product, error) {
	var (
		p           Product
		basePrice   sql.NullFloat64
		discount    sql.NullInt64
		categoryID  sql.NullInt64
		usageText   sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
		benefits    pq.StringArray
		ingredients pq.StringArray
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &basePrice, &discount, &p.ImageURL,
		&categoryID, &benefits, &usageText, &ingredients, &createdAt, &updatedAt); err != nil {
		return Product{}, err
	}
	if basePrice.Valid {
		p.BasePrice = &basePrice.Float64
	}
	if discount.Valid {
		d := int(discount.Int64)
		p.DiscountPercent = &d
	}
	if categoryID.Valid {
		c := int(categoryID.Int64)
		p.CategoryID = &c
	}
	if usageText.Valid {
		p.Usage = &usageText.String
	}
	if createdAt.Valid {
		p.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.String
	}
	p.Benefits = benefits
	p.Ingredients = ingredients
	return p, nil
}
