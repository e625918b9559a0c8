package models

// Dataset bundles the six fixture collections. Aggregation functions receive
// it (or individual slices) as explicit parameters and never mutate it, so
// concurrent reads are safe by construction.
type Dataset struct {
	Customers    []Customer    `json:"customers"`
	Orders       []Order       `json:"orders"`
	OrderItems   []OrderItem   `json:"order_items"`
	Products     []Product     `json:"products"`
	Reservations []Reservation `json:"reservations"`
	Reviews      []Review      `json:"reviews"`
	Expenses     []Expense     `json:"expenses"`
}
