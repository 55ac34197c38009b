package cache

import (
	"context"
	"encoding/json"
	"time"

	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/models"
)

const (
	productListKey  = "products:all"
	ProductCacheTTL = 10 * time.Minute
)

// GetProducts récupère le catalogue complet depuis Redis.
// Renvoie (nil, false) si Redis est absent ou si la clé a expiré.
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	if database.Redis == nil {
		return nil, false
	}

	data, err := database.Redis.Get(ctx, productListKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met le catalogue complet en cache
func SetProducts(ctx context.Context, products []models.Product) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productListKey, data, ProductCacheTTL)
	}
}

// InvalidateProducts est appelé après chaque écriture sur le catalogue
func InvalidateProducts(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, productListKey)
}
