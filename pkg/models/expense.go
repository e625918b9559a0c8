package models

// Expense is a monthly aggregate from the expenses fixture; Month uses the
// "YYYY-MM" key that the trend series groups on.
type Expense struct {
	ID       int64   `json:"id"`
	Month    string  `json:"month"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount"`
}
