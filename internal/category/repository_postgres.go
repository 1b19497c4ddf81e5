package category

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT category_id, category_name FROM categories ORDER BY category_id`)
	if err != nil {
		// table may not exist yet — return empty slice to keep the API resilient
		return []Category{}, nil
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	err := r.db.QueryRow(`INSERT INTO categories (category_name) VALUES ($1) RETURNING category_id`, c.Name).Scan(&c.ID)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Category) (Category, error) {
	res, err := r.db.Exec(`UPDATE categories SET category_name = $1 WHERE category_id = $2`, c.Name, id)
	if err != nil {
		return Category{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Category{}, ErrNotFound
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
