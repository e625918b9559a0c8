// Package segments classifies customers into behavioral segments with an
// ordered decision list. Rule order is part of the contract: a ten-visit
// regular who has not shown up in three months is still VIP, because the
// VIP rule runs before the at-risk rule.
package segments

import (
	"time"

	"github.com/GuimaraesSilva/resto-dashboard/internal/metrics"
	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

type Segment string

const (
	SegmentVIP               Segment = "VIP"
	SegmentNew               Segment = "New"
	SegmentAtRisk            Segment = "At-Risk"
	SegmentNoShowRisk        Segment = "No-show-Risk"
	SegmentFrequentCanceller Segment = "Frequent-Canceller"
	SegmentRegular           Segment = "Regular"
)

// All returns every segment in rule order, Regular last.
func All() []Segment {
	return []Segment{
		SegmentVIP,
		SegmentNew,
		SegmentAtRisk,
		SegmentNoShowRisk,
		SegmentFrequentCanceller,
		SegmentRegular,
	}
}

// Thresholds tunes the classifier. Each field is independently overridable;
// zero values are taken literally, so callers start from DefaultThresholds
// and adjust.
type Thresholds struct {
	VIPVisits      int     `json:"vip_visits"`
	NewMaxVisits   int     `json:"new_max_visits"`
	AtRiskDays     int     `json:"at_risk_days"`
	NoShowRateHigh float64 `json:"no_show_rate_high"`
	CancelRateHigh float64 `json:"cancel_rate_high"`
	NoShowsMin     int     `json:"no_shows_min"`
	CancelledMin   int     `json:"cancelled_min"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		VIPVisits:      10,
		NewMaxVisits:   2,
		AtRiskDays:     60,
		NoShowRateHigh: 0.2,
		CancelRateHigh: 0.3,
		NoShowsMin:     2,
		CancelledMin:   2,
	}
}

type rule struct {
	segment Segment
	matches func(c models.Customer, t Thresholds, now time.Time) bool
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{SegmentVIP, func(c models.Customer, t Thresholds, _ time.Time) bool {
		return c.Visits >= t.VIPVisits
	}},
	{SegmentNew, func(c models.Customer, t Thresholds, _ time.Time) bool {
		return c.Visits <= t.NewMaxVisits
	}},
	{SegmentAtRisk, func(c models.Customer, t Thresholds, now time.Time) bool {
		return metrics.DaysSince(c.LastVisitDate, now) >= t.AtRiskDays
	}},
	{SegmentNoShowRisk, func(c models.Customer, t Thresholds, _ time.Time) bool {
		return c.Reservations.NoShows >= t.NoShowsMin || metrics.NoShowRate(c) >= t.NoShowRateHigh
	}},
	{SegmentFrequentCanceller, func(c models.Customer, t Thresholds, _ time.Time) bool {
		return c.Reservations.Cancelled >= t.CancelledMin || metrics.CancelRate(c) >= t.CancelRateHigh
	}},
}

// SegmentOf returns exactly one segment for the customer. Total and
// deterministic for a fixed (customer, thresholds, now).
func SegmentOf(c models.Customer, t Thresholds, now time.Time) Segment {
	for _, r := range rules {
		if r.matches(c, t, now) {
			return r.segment
		}
	}
	return SegmentRegular
}

// CountBySegment tallies customers per segment. Every segment is present in
// the result, zero-valued when empty, so chart consumers get a stable key set.
func CountBySegment(customers []models.Customer, t Thresholds, now time.Time) map[Segment]int {
	counts := make(map[Segment]int, len(All()))
	for _, s := range All() {
		counts[s] = 0
	}
	for _, c := range customers {
		counts[SegmentOf(c, t, now)]++
	}
	return counts
}
