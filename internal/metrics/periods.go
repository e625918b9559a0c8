package metrics

import (
	"math"
	"time"

	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

// Period selects a comparison window measured backwards from the most recent
// order in the dataset, not from wall-clock time, so a fixture set that ends
// in March still reports a meaningful "today".
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Days returns the window length in days. Unknown periods fall back to a
// single day, mirroring the today window.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 1
	}
}

type ChangeType string

const (
	ChangePositive ChangeType = "positive"
	ChangeNegative ChangeType = "negative"
)

// Change is a display-ready percent delta: absolute value rounded to one
// decimal, with the sign carried separately. A zero previous value reports
// a flat positive change rather than dividing by zero.
type Change struct {
	Percent float64    `json:"percent"`
	Type    ChangeType `json:"type"`
}

func ChangeBetween(current, previous float64) Change {
	if previous == 0 {
		return Change{Percent: 0, Type: ChangePositive}
	}
	pct := (current - previous) / previous * 100
	change := Change{Percent: math.Round(math.Abs(pct)*10) / 10, Type: ChangePositive}
	if pct < 0 {
		change.Type = ChangeNegative
	}
	return change
}

// MetricDelta pairs a metric's current-window value with its prior-window
// value and the percent change between them.
type MetricDelta struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   Change  `json:"change"`
}

func deltaBetween(current, previous float64) MetricDelta {
	return MetricDelta{Current: current, Previous: previous, Change: ChangeBetween(current, previous)}
}

// PeriodComparison reports the five headline metrics for a window together
// with their deltas against the equal-length prior window.
type PeriodComparison struct {
	Period        Period      `json:"period"`
	Revenue       MetricDelta `json:"revenue"`
	Orders        MetricDelta `json:"orders"`
	AverageTicket MetricDelta `json:"average_ticket"`
	OccupancyRate MetricDelta `json:"occupancy_rate"`
	AverageRating MetricDelta `json:"average_rating"`
}

// ReferenceTime returns the most recent order timestamp, or the zero time for
// an empty or unparseable collection.
func ReferenceTime(orders []models.Order) time.Time {
	var latest time.Time
	for _, o := range orders {
		if t, ok := ParseDate(o.CreatedAt); ok && t.After(latest) {
			latest = t
		}
	}
	return latest
}

// inWindow reports whether date falls within periodDays of now. The today
// window deliberately spans two days so yesterday's close-of-business orders
// still count.
func inWindow(date string, now time.Time, periodDays int) bool {
	diff := DaysSince(date, now)
	return diff <= periodDays
}

// inPriorWindow reports whether date falls in the equal-length window
// immediately before the current one.
func inPriorWindow(date string, now time.Time, periodDays int) bool {
	diff := DaysSince(date, now)
	return diff > periodDays && diff <= periodDays*2
}

// ComparePeriods computes revenue, order count, average ticket, occupancy and
// rating for the selected window and the window before it, anchored at the
// most recent order in the collection.
func ComparePeriods(orders []models.Order, reservations []models.Reservation, reviews []models.Review, period Period) PeriodComparison {
	now := ReferenceTime(orders)
	days := period.Days()

	var revenue, prevRevenue float64
	var count, prevCount int
	for _, o := range orders {
		switch {
		case inWindow(o.CreatedAt, now, days):
			revenue += o.Total
			count++
		case inPriorWindow(o.CreatedAt, now, days):
			prevRevenue += o.Total
			prevCount++
		}
	}

	var ticket, prevTicket float64
	if count > 0 {
		ticket = revenue / float64(count)
	}
	if prevCount > 0 {
		prevTicket = prevRevenue / float64(prevCount)
	}

	occupancy := occupancyIn(reservations, now, days, inWindow)
	prevOccupancy := occupancyIn(reservations, now, days, inPriorWindow)

	rating := ratingIn(reviews, now, days, inWindow)
	prevRating := ratingIn(reviews, now, days, inPriorWindow)

	return PeriodComparison{
		Period:        period,
		Revenue:       deltaBetween(revenue, prevRevenue),
		Orders:        deltaBetween(float64(count), float64(prevCount)),
		AverageTicket: deltaBetween(ticket, prevTicket),
		OccupancyRate: deltaBetween(occupancy, prevOccupancy),
		AverageRating: deltaBetween(rating, prevRating),
	}
}

type windowFunc func(date string, now time.Time, periodDays int) bool

func occupancyIn(reservations []models.Reservation, now time.Time, days int, in windowFunc) float64 {
	total, confirmed := 0, 0
	for _, r := range reservations {
		if !in(r.Date, now, days) {
			continue
		}
		total++
		if r.Status == models.ReservationConfirmed {
			confirmed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(confirmed) / float64(total) * 100
}

func ratingIn(reviews []models.Review, now time.Time, days int, in windowFunc) float64 {
	sum, count := 0, 0
	for _, r := range reviews {
		if !in(r.CreatedAt, now, days) {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
