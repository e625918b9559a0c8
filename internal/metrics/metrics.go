// Package metrics computes per-customer statistics and aggregate KPIs from
// fixture collections. Every function is a pure transform over its inputs:
// no state, no I/O, zero-denominator rates return 0 instead of NaN.
package metrics

import (
	"math"
	"time"

	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

// CancelRate returns cancelled/made for a customer, or 0 when the customer
// has no reservations.
func CancelRate(c models.Customer) float64 {
	if c.Reservations.Made == 0 {
		return 0
	}
	return float64(c.Reservations.Cancelled) / float64(c.Reservations.Made)
}

// NoShowRate returns no_shows/made for a customer, or 0 when the customer
// has no reservations.
func NoShowRate(c models.Customer) float64 {
	if c.Reservations.Made == 0 {
		return 0
	}
	return float64(c.Reservations.NoShows) / float64(c.Reservations.Made)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a fixture date string. Fixtures carry plain dates for
// visits and reservations and ISO timestamps for orders and reviews.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysSince returns the number of whole days between now and the given date
// string. Unparseable dates return 0, so recency rules downstream treat them
// as a fresh visit rather than failing.
func DaysSince(date string, now time.Time) int {
	t, ok := ParseDate(date)
	if !ok {
		return 0
	}
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

// ActiveCount counts customers whose last visit falls within windowDays of now.
func ActiveCount(customers []models.Customer, windowDays int, now time.Time) int {
	count := 0
	for _, c := range customers {
		if DaysSince(c.LastVisitDate, now) <= windowDays {
			count++
		}
	}
	return count
}

// KPIReport aggregates customer-base statistics. The overall rates divide
// summed counters rather than averaging per-customer rates, which would
// overweight customers with few reservations.
type KPIReport struct {
	TotalCustomers        int     `json:"total_customers"`
	TotalVisits           int     `json:"total_visits"`
	AverageVisits         float64 `json:"average_visits"`
	ReservationsMade      int     `json:"reservations_made"`
	ReservationsCancelled int     `json:"reservations_cancelled"`
	NoShows               int     `json:"no_shows"`
	NoShowRate            float64 `json:"no_show_rate"`
	CancelRate            float64 `json:"cancel_rate"`
}

func ComputeKPIs(customers []models.Customer) KPIReport {
	report := KPIReport{TotalCustomers: len(customers)}
	for _, c := range customers {
		report.TotalVisits += c.Visits
		report.ReservationsMade += c.Reservations.Made
		report.ReservationsCancelled += c.Reservations.Cancelled
		report.NoShows += c.Reservations.NoShows
	}
	if report.TotalCustomers > 0 {
		report.AverageVisits = float64(report.TotalVisits) / float64(report.TotalCustomers)
	}
	if report.ReservationsMade > 0 {
		report.NoShowRate = float64(report.NoShows) / float64(report.ReservationsMade)
		report.CancelRate = float64(report.ReservationsCancelled) / float64(report.ReservationsMade)
	}
	return report
}

// PercentChange returns the signed percent change from previous to current,
// or 0 when previous is 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
