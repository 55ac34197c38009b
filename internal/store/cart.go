package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vitrine_back_end/internal/models"
)

type CartStore struct {
	db *sql.DB
}

func NewCartStore(db *sql.DB) *CartStore {
	return &CartStore{db: db}
}

// AddResult décrit l'issue d'un ajout au panier : ligne créée ou incrémentée
type AddResult struct {
	Created    bool
	CartItemID int64
	ProductID  int64
	Quantity   int
}

// Add ajoute un produit au panier. S'il y a déjà une ligne pour ce produit,
// la quantité est incrémentée. Tout se fait dans une seule transaction pour
// qu'un ajout concurrent ne perde pas d'incrément.
func (s *CartStore) Add(ctx context.Context, productID int64, quantity int) (*AddResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("début transaction: %w", err)
	}
	defer tx.Rollback()

	// Le produit doit exister
	var exists int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM products WHERE id = ?`, productID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("vérification produit %d: %w", productID, err)
	}

	var lineID int64
	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT id, quantity FROM cart_items WHERE product_id = ?`, productID).
		Scan(&lineID, &current)

	switch {
	case err == nil:
		// Ligne existante : incrément
		if _, err := tx.ExecContext(ctx,
			`UPDATE cart_items SET quantity = quantity + ? WHERE product_id = ?`,
			quantity, productID); err != nil {
			return nil, fmt.Errorf("incrément panier: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return &AddResult{
			Created:    false,
			CartItemID: lineID,
			ProductID:  productID,
			Quantity:   current + quantity,
		}, nil

	case errors.Is(err, sql.ErrNoRows):
		// Nouvelle ligne
		res, err := tx.ExecContext(ctx,
			`INSERT INTO cart_items (product_id, quantity) VALUES (?, ?)`,
			productID, quantity)
		if err != nil {
			return nil, fmt.Errorf("insertion panier: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return &AddResult{
			Created:    true,
			CartItemID: id,
			ProductID:  productID,
			Quantity:   quantity,
		}, nil

	default:
		return nil, fmt.Errorf("lecture ligne panier: %w", err)
	}
}

// Get renvoie le panier complet joint avec les produits, ligne la plus
// récente en premier, avec sous-totaux et agrégats.
func (s *CartStore) Get(ctx context.Context) (*models.CartSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			ci.id AS cart_item_id,
			ci.quantity,
			p.id,
			p.name,
			p.price,
			COALESCE(p.description, ''),
			COALESCE(p.imageUrl, ''),
			(p.price * ci.quantity) AS subtotal
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		ORDER BY ci.created_at DESC, ci.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("lecture panier: %w", err)
	}
	defer rows.Close()

	summary := &models.CartSummary{Items: []models.CartLine{}}
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.CartItemID, &line.Quantity, &line.ID, &line.Name,
			&line.Price, &line.Description, &line.ImageURL, &line.Subtotal); err != nil {
			return nil, fmt.Errorf("scan ligne panier: %w", err)
		}
		summary.Items = append(summary.Items, line)
		summary.Total += line.Subtotal
		summary.TotalItems += line.Quantity
	}
	return summary, rows.Err()
}

func (s *CartStore) UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return 0, fmt.Errorf("mise à jour ligne panier %d: %w", id, err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, ErrNotFound
	}
	return changes, nil
}

func (s *CartStore) Remove(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("suppression ligne panier %d: %w", id, err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, ErrNotFound
	}
	return changes, nil
}

// Clear vide tout le panier. Global, utilisé par le checkout.
func (s *CartStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("vidage panier: %w", err)
	}
	return nil
}
