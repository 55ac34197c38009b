package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/models"
	"vitrine_back_end/internal/services"
	"vitrine_back_end/internal/store"
)

type CheckoutHandler struct {
	orders *store.OrderStore
}

func NewCheckoutHandler(orders *store.OrderStore) *CheckoutHandler {
	return &CheckoutHandler{orders: orders}
}

type checkoutRequest struct {
	CustomerInfo models.CustomerInfo   `json:"customerInfo"`
	CartItems    []models.CheckoutItem `json:"cartItems"`
}

// POST /api/checkout
//
// Le total est calculé côté serveur à partir des lignes soumises — les prix
// restent ceux fournis par le client, comme le contrat d'origine l'exige.
// L'insertion de la commande et le vidage du panier sont atomiques.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name and email are required."})
		return
	}

	if req.CustomerInfo.Name == "" || req.CustomerInfo.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name and email are required."})
		return
	}
	if len(req.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart items are required."})
		return
	}

	var total float64
	for _, item := range req.CartItems {
		total += item.Price * float64(item.Quantity)
	}

	itemsJSON, err := json.Marshal(req.CartItems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		CustomerName:    req.CustomerInfo.Name,
		CustomerEmail:   req.CustomerInfo.Email,
		CustomerAddress: req.CustomerInfo.Address,
		CustomerCity:    req.CustomerInfo.City,
		CustomerZip:     req.CustomerInfo.Zip,
		TotalAmount:     total,
		OrderItems:      string(itemsJSON),
	}

	orderID, err := h.orders.CreateFromCheckout(c.Request.Context(), &order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	receipt := models.Receipt{
		OrderID:       orderID,
		CustomerName:  req.CustomerInfo.Name,
		CustomerEmail: req.CustomerInfo.Email,
		Items:         req.CartItems,
		Total:         total,
		Timestamp:     now.UTC().Format(time.RFC3339),
		OrderDate:     now.Format("January 2, 2006, 03:04 PM"),
	}

	// 📤 Reçu par e-mail, best-effort
	go services.SendOrderConfirmation(receipt)

	c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully!", "receipt": receipt})
}
