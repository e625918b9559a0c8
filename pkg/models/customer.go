package models

// Customer is an immutable snapshot loaded from the customers fixture.
// Derived values (rates, recency, segment) are always computed from it,
// never stored back.
type Customer struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Visits        int              `json:"visits"`
	LastVisitDate string           `json:"last_visit_date"`
	Reservations  ReservationStats `json:"reservations"`
}

// ReservationStats counts a customer's reservation history.
// Cancelled and NoShows never exceed Made in well-formed fixtures.
type ReservationStats struct {
	Made      int `json:"made"`
	Cancelled int `json:"cancelled"`
	NoShows   int `json:"no_shows"`
}
