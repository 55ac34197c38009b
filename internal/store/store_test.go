package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestProduct(t *testing.T, products *ProductStore, name string, price float64) int64 {
	t.Helper()
	id, err := products.Create(context.Background(), &models.Product{
		Name:        name,
		Price:       price,
		Description: "test product",
		ImageURL:    "test.jpg",
	})
	require.NoError(t, err)
	return id
}
