package models

type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Stock    int     `json:"stock"`
}

// Margin returns (price - cost) / price, or 0 for a zero-priced product.
func (p Product) Margin() float64 {
	if p.Price == 0 {
		return 0
	}
	return (p.Price - p.Cost) / p.Price
}
