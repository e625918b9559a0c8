package models

const (
	ReservationConfirmed = "confirmed"
	ReservationPending   = "pending"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	People     int    `json:"people"`
	Status     string `json:"status"`
}

type Review struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at"`
}
