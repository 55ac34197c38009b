package models

// CartLine est une ligne du panier jointe avec son produit
type CartLine struct {
	CartItemID  int64   `json:"cart_item_id"`
	Quantity    int     `json:"quantity"`
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Subtotal    float64 `json:"subtotal"`
}

// CartSummary est la réponse complète de GET /api/cart
type CartSummary struct {
	Items      []CartLine `json:"items"`
	Total      float64    `json:"total"`
	TotalItems int        `json:"totalItems"`
}
