package models

// Order est une commande enregistrée, immuable après le checkout.
// OrderItems contient la copie JSON des lignes telles qu'achetées.
type Order struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerAddress string  `json:"customer_address"`
	CustomerCity    string  `json:"customer_city"`
	CustomerZip     string  `json:"customer_zip"`
	TotalAmount     float64 `json:"total_amount"`
	OrderItems      string  `json:"order_items"`
	CreatedAt       string  `json:"created_at"`
}

// CheckoutItem est une ligne telle que soumise par le client au checkout
type CheckoutItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// Receipt est le reçu renvoyé juste après un checkout réussi
type Receipt struct {
	OrderID       int64          `json:"orderId"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	Items         []CheckoutItem `json:"items"`
	Total         float64        `json:"total"`
	Timestamp     string         `json:"timestamp"`
	OrderDate     string         `json:"orderDate"`
}
