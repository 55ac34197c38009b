package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/store"
)

type CartHandler struct {
	cart *store.CartStore
}

func NewCartHandler(cart *store.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

// POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required."})
		return
	}
	if req.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required."})
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	result, err := h.cart.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Created {
		c.JSON(http.StatusOK, gin.H{
			"message":    "Item added to cart successfully!",
			"cartItemId": result.CartItemID,
			"productId":  result.ProductID,
			"quantity":   result.Quantity,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart item updated successfully!",
		"productId":   result.ProductID,
		"newQuantity": result.Quantity,
	})
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	summary, err := h.cart.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": summary})
}

// PUT /api/cart/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found."})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid quantity is required."})
		return
	}

	changes, err := h.cart.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully!", "changes": changes})
}

// DELETE /api/cart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found."})
		return
	}

	changes, err := h.cart.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully!", "changes": changes})
}
