package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vitrine_back_end/internal/models"
)

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, customer_name, customer_email,
	COALESCE(customer_address, ''), COALESCE(customer_city, ''), COALESCE(customer_zip, ''),
	total_amount, order_items, created_at`

// CreateFromCheckout insère la commande puis vide le panier dans UNE seule
// transaction : si le vidage échoue, la commande est annulée au lieu de
// laisser un panier fantôme derrière une commande déjà enregistrée.
func (s *OrderStore) CreateFromCheckout(ctx context.Context, o *models.Order) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("début transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (customer_name, customer_email, customer_address, customer_city, customer_zip, total_amount, order_items)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.CustomerName, o.CustomerEmail, o.CustomerAddress, o.CustomerCity, o.CustomerZip,
		o.TotalAmount, o.OrderItems)
	if err != nil {
		return 0, fmt.Errorf("insertion commande: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return 0, fmt.Errorf("vidage panier après commande: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	o.ID = id
	return id, nil
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerAddress,
			&o.CustomerCity, &o.CustomerZip, &o.TotalAmount, &o.OrderItems, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan commande: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *OrderStore) Get(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerAddress,
			&o.CustomerCity, &o.CustomerZip, &o.TotalAmount, &o.OrderItems, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lecture commande %d: %w", id, err)
	}
	return &o, nil
}
