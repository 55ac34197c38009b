package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/cache"
	"vitrine_back_end/internal/models"
	"vitrine_back_end/internal/services"
	"vitrine_back_end/internal/store"
)

type ProductHandler struct {
	products *store.ProductStore
}

func NewProductHandler(products *store.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Cache Redis d'abord
	if cached, ok := cache.GetProducts(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"message": "success", "data": cached})
		return
	}

	products, err := h.products.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.SetProducts(ctx, products)
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": products})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": p})
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required."})
		return
	}
	if req.Name == "" || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required."})
		return
	}

	p := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	id, err := h.products.Create(c.Request.Context(), &p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, gin.H{"message": "Product added successfully!", "id": id})
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required."})
		return
	}
	if req.Name == "" || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required."})
		return
	}

	p := models.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	changes, err := h.products.Update(c.Request.Context(), id, &p)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully!", "changes": changes})
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		return
	}

	changes, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	go services.RemoveProduct(id)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!", "changes": changes})
}

// GET /api/search?q=
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required."})
		return
	}

	// 🔎 Elasticsearch d'abord, fallback SQL si absent ou vide
	if results, err := services.SearchProducts(query); err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "success", "data": results})
		return
	}

	results, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": results})
}
