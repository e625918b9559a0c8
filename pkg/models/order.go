package models

type Order struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customer_id"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"payment_method"`
	CreatedAt     string  `json:"created_at"`
}

// OrderItem subtotals approximate the order total but may not sum to it
// exactly because of taxes and fees; product-level revenue is derived by
// redistributing the order total proportionally across its items.
type OrderItem struct {
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
