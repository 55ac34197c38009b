package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vitrine_back_end/internal/models"
)

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, price, COALESCE(description, ''), COALESCE(imageUrl, '')`

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("lecture produits: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ProductStore) Get(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lecture produit %d: %w", id, err)
	}
	return &p, nil
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO products (name, price, description, imageUrl) VALUES (?, ?, ?, ?)`,
		p.Name, p.Price, p.Description, p.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("création produit: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// Update remplace les quatre champs éditables. Pas de patch partiel.
func (s *ProductStore) Update(ctx context.Context, id int64, p *models.Product) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET name = ?, price = ?, description = ?, imageUrl = ? WHERE id = ?`,
		p.Name, p.Price, p.Description, p.ImageURL, id)
	if err != nil {
		return 0, fmt.Errorf("mise à jour produit %d: %w", id, err)
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

// Delete supprime sans vérification référentielle : les lignes de panier qui
// pointaient vers ce produit deviennent orphelines, comme dans le schéma.
func (s *ProductStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("suppression produit %d: %w", id, err)
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

// Search est le fallback SQL quand Elasticsearch n'est pas disponible
func (s *ProductStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE name LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE`,
		pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("recherche produits: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
