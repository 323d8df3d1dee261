package cart

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartItemsQuery = `SELECT items FROM carts WHERE user_id = $1`

	upsertCartItemsQuery = `
		INSERT INTO carts (user_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
	`
	clearCartItemsQuery = `UPDATE carts SET items = '[]', updated_at = $2 WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetItems(userID int) ([]Item, error) {
	var raw []byte
	if err := r.db.QueryRow(getCartItemsQuery, userID).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	items := make([]Item, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) SaveItems(userID int, items []Item, updatedAt string) error {
	if items == nil {
		items = []Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(upsertCartItemsQuery, userID, raw, updatedAt)
	return err
}

func (r *PostgresRepository) ClearItems(userID int, updatedAt string) error {
	res, err := r.db.Exec(clearCartItemsQuery, userID, updatedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCartNotFound
	}
	return nil
}
