package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/models"
)

func TestProductCreateThenGet(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)
	ctx := context.Background()

	in := models.Product{
		Name:        "Mouse",
		Price:       999,
		Description: "a mouse",
		ImageURL:    "mouse.jpg",
	}
	id, err := products.Create(ctx, &in)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := products.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.ImageURL, got.ImageURL)
}

func TestProductGetMissing(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)

	_, err := products.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductUpdateReplacesAllFields(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)
	ctx := context.Background()

	id := createTestProduct(t, products, "Old", 100)

	changes, err := products.Update(ctx, id, &models.Product{
		Name:  "New",
		Price: 200,
		// description et imageUrl volontairement vides : remplacement complet
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	got, err := products.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, float64(200), got.Price)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.ImageURL)
}

func TestProductUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)

	_, err := products.Update(context.Background(), 42, &models.Product{Name: "X", Price: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDeleteThenGet(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)
	ctx := context.Background()

	id := createTestProduct(t, products, "Doomed", 1)

	changes, err := products.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	_, err = products.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = products.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductSearchFallback(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)
	ctx := context.Background()

	createTestProduct(t, products, "Gaming Laptop", 1000)
	createTestProduct(t, products, "Office Chair", 200)

	results, err := products.Search(ctx, "laptop")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Gaming Laptop", results[0].Name)

	results, err = products.Search(ctx, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, results)
}
