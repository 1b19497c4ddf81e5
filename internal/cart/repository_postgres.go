package cart

import (
	"database/sql"
	"encoding/json"
	"strconv"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(cartID string) (map[int]Line, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT items FROM carts WHERE cart_id = $1`, cartID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			// carts are created lazily on first write
			return map[int]Line{}, nil
		}
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return map[int]Line{}, nil
	}

	var m map[string]Line
	if err := json.Unmarshal([]byte(raw.String), &m); err != nil {
		return nil, err
	}
	lines := make(map[int]Line, len(m))
	for key, l := range m {
		pid, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		l.ProductID = pid
		lines[pid] = l
	}
	return lines, nil
}

func (r *PostgresRepository) Save(cartID string, lines map[int]Line, updatedAt string) error {
	m := make(map[string]Line, len(lines))
	for pid, l := range lines {
		m[strconv.Itoa(pid)] = l
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`INSERT INTO carts (cart_id, items, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (cart_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`,
		cartID, string(payload), updatedAt)
	return err
}

func (r *PostgresRepository) Delete(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM carts WHERE cart_id = $1`, cartID)
	return err
}
