package models

// CartItem is one requested line in an order request. Not persisted.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName string     `json:"customer_name" binding:"required"`
	Email        string     `json:"email" binding:"required"`
	Address      string     `json:"address" binding:"required"`
	City         string     `json:"city" binding:"required"`
	Country      string     `json:"country" binding:"required"`
	Items        []CartItem `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
}

type SeedResponse struct {
	Inserted int      `json:"inserted"`
	IDs      []string `json:"ids,omitempty"`
	Message  string   `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
