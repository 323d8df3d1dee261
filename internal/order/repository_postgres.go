package order

import (
	"database/sql"
	"encoding/json"

	"github.com/techsphere/backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, order_number, user_id, items, shipping_address, payment_method,
		items_price, shipping_price, tax_price, total_price, status, is_delivered, delivered_at, created_at, updated_at`

	insertOrderQuery = `
		INSERT INTO orders (order_number, user_id, items, shipping_address, payment_method,
			items_price, shipping_price, tax_price, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING order_id
	`
	decrementStockQuery = `
		UPDATE products
		SET count_in_stock = count_in_stock - $1, updated_at = $3
		WHERE product_id = $2 AND count_in_stock >= $1
	`
	restoreStockQuery = `
		UPDATE products
		SET count_in_stock = count_in_stock + $1, updated_at = $3
		WHERE product_id = $2
	`
	stockForMessageQuery = `SELECT name, count_in_stock FROM products WHERE product_id = $1`

	clearCartQuery = `UPDATE carts SET items = '[]', updated_at = $2 WHERE user_id = $1`

	getOrderByIDQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1
	`
	listOrdersByUserQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id DESC
		LIMIT $2 OFFSET $3
	`
	countOrdersByUserQuery = `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	updateOrderStatusQuery = `
		UPDATE orders
		SET status = $1, is_delivered = $2, delivered_at = $3, updated_at = $4
		WHERE order_id = $5
	`
	cancelOrderQuery = `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE order_id = $3
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Place runs the whole placement in one transaction: order insert, guarded
// per-item stock decrement, cart clear. The `count_in_stock >= quantity`
// condition makes concurrent checkouts serialize on the row instead of
// overselling.
func (r *PostgresRepository) Place(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	addressJSON, err := json.Marshal(ord.ShippingAddress)
	if err != nil {
		return Order{}, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(insertOrderQuery,
		ord.OrderNumber, ord.UserID, itemsJSON, addressJSON, ord.PaymentMethod,
		ord.ItemsPrice, ord.ShippingPrice, ord.TaxPrice, ord.TotalPrice,
		string(ord.Status), ord.CreatedAt, ord.UpdatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}

	for _, it := range ord.Items {
		res, err := tx.Exec(decrementStockQuery, it.Quantity, it.ProductID, ord.UpdatedAt)
		if err != nil {
			return Order{}, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return Order{}, err
		}
		if n == 0 {
			var name string
			var available int
			if err := tx.QueryRow(stockForMessageQuery, it.ProductID).Scan(&name, &available); err != nil {
				if err == sql.ErrNoRows {
					return Order{}, product.ErrNotFound
				}
				return Order{}, err
			}
			return Order{}, &product.StockError{ProductName: name, Available: available}
		}
	}

	if _, err := tx.Exec(clearCartQuery, ord.UserID, ord.UpdatedAt); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func scanOrder(row interface{ Scan(dest ...any) error }) (Order, error) {
	var ord Order
	var itemsJSON, addressJSON []byte
	var status string
	var deliveredAt sql.NullString

	err := row.Scan(&ord.ID, &ord.OrderNumber, &ord.UserID, &itemsJSON, &addressJSON, &ord.PaymentMethod,
		&ord.ItemsPrice, &ord.ShippingPrice, &ord.TaxPrice, &ord.TotalPrice,
		&status, &ord.IsDelivered, &deliveredAt, &ord.CreatedAt, &ord.UpdatedAt)
	if err != nil {
		return Order{}, err
	}

	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(addressJSON, &ord.ShippingAddress); err != nil {
		return Order{}, err
	}
	ord.Status = Status(status)
	if deliveredAt.Valid {
		ord.DeliveredAt = deliveredAt.String
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID, page, limit int) ([]Order, int, error) {
	offset := (page - 1) * limit
	rows, err := r.db.Query(listOrdersByUserQuery, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(countOrdersByUserQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *PostgresRepository) UpdateStatus(ord Order) error {
	deliveredAt := sql.NullString{}
	if ord.DeliveredAt != "" {
		deliveredAt = sql.NullString{String: ord.DeliveredAt, Valid: true}
	}

	res, err := r.db.Exec(updateOrderStatusQuery,
		string(ord.Status), ord.IsDelivered, deliveredAt, ord.UpdatedAt, ord.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel restores stock for each item and marks the order cancelled in a
// single transaction.
func (r *PostgresRepository) Cancel(ord Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, it := range ord.Items {
		if _, err := tx.Exec(restoreStockQuery, it.Quantity, it.ProductID, ord.UpdatedAt); err != nil {
			return err
		}
	}

	res, err := tx.Exec(cancelOrderQuery, string(StatusCancelled), ord.UpdatedAt, ord.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
