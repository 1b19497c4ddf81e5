package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	var u User
	err := r.db.QueryRow(`SELECT admin_id, email, password, name, created_at FROM admins WHERE admin_id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	var u User
	err := r.db.QueryRow(`SELECT admin_id, email, password, name, created_at FROM admins WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(`INSERT INTO admins (email, password, name, created_at) VALUES ($1,$2,$3,$4) RETURNING admin_id`,
		u.Email, u.Password, u.Name, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		return User{}, err
	}
	return u, nil
}
