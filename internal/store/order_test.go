package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine_back_end/internal/models"
)

func testOrder(name string, total float64) *models.Order {
	items, _ := json.Marshal([]models.CheckoutItem{
		{ID: 1, Name: "Mouse", Price: total, Quantity: 1},
	})
	return &models.Order{
		CustomerName:  name,
		CustomerEmail: name + "@example.com",
		TotalAmount:   total,
		OrderItems:    string(items),
	}
}

func TestCheckoutInsertsOrderAndClearsCart(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)
	cart := NewCartStore(db)
	orders := NewOrderStore(db)
	ctx := context.Background()

	pid := createTestProduct(t, products, "Mouse", 999)
	_, err := cart.Add(ctx, pid, 2)
	require.NoError(t, err)

	id, err := orders.CreateFromCheckout(ctx, testOrder("A", 1998))
	require.NoError(t, err)
	require.NotZero(t, id)

	// Le panier est entièrement vidé dans la même transaction
	summary, err := cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	got, err := orders.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A", got.CustomerName)
	assert.Equal(t, float64(1998), got.TotalAmount)
	assert.NotEmpty(t, got.CreatedAt)

	// Les lignes gelées restent lisibles telles qu'achetées
	var frozen []models.CheckoutItem
	require.NoError(t, json.Unmarshal([]byte(got.OrderItems), &frozen))
	require.Len(t, frozen, 1)
	assert.Equal(t, "Mouse", frozen[0].Name)
}

func TestOrderImmutableAfterProductMutation(t *testing.T) {
	db := openTestDB(t)
	products := NewProductStore(db)
	orders := NewOrderStore(db)
	ctx := context.Background()

	pid := createTestProduct(t, products, "Mouse", 999)

	id, err := orders.CreateFromCheckout(ctx, testOrder("A", 999))
	require.NoError(t, err)

	// La suppression du produit ne touche pas la copie gelée
	_, err = products.Delete(ctx, pid)
	require.NoError(t, err)

	got, err := orders.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, got.OrderItems, "Mouse")
}

func TestOrderListMostRecentFirst(t *testing.T) {
	db := openTestDB(t)
	orders := NewOrderStore(db)
	ctx := context.Background()

	first, err := orders.CreateFromCheckout(ctx, testOrder("First", 100))
	require.NoError(t, err)
	second, err := orders.CreateFromCheckout(ctx, testOrder("Second", 200))
	require.NoError(t, err)

	list, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
}

func TestOrderGetMissing(t *testing.T) {
	db := openTestDB(t)
	orders := NewOrderStore(db)

	_, err := orders.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
