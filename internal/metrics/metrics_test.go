package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

func customerWithReservations(made, cancelled, noShows int) models.Customer {
	return models.Customer{
		Reservations: models.ReservationStats{Made: made, Cancelled: cancelled, NoShows: noShows},
	}
}

func TestRatesStayWithinBounds(t *testing.T) {
	cases := []struct {
		name string
		c    models.Customer
	}{
		{"no reservations", customerWithReservations(0, 0, 0)},
		{"all cancelled", customerWithReservations(4, 4, 0)},
		{"all no-shows", customerWithReservations(4, 0, 4)},
		{"mixed", customerWithReservations(10, 3, 2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cr := CancelRate(tc.c)
			nsr := NoShowRate(tc.c)
			if cr < 0 || cr > 1 {
				t.Errorf("CancelRate = %v, want within [0,1]", cr)
			}
			if nsr < 0 || nsr > 1 {
				t.Errorf("NoShowRate = %v, want within [0,1]", nsr)
			}
			if tc.c.Reservations.Made == 0 && (cr != 0 || nsr != 0) {
				t.Errorf("rates with made=0 should be 0, got cancel=%v noShow=%v", cr, nsr)
			}
		})
	}
}

func TestComputeKPIsUsesSummedCounters(t *testing.T) {
	// Aggregate rate must be sum(no_shows)/sum(made), not the mean of
	// per-customer rates: mean(0.1, 1.0) = 0.55 would be badly skewed by
	// the one-reservation customer.
	customers := []models.Customer{
		customerWithReservations(10, 0, 1),
		customerWithReservations(1, 0, 1),
	}

	report := ComputeKPIs(customers)
	want := 2.0 / 11.0
	if math.Abs(report.NoShowRate-want) > 1e-9 {
		t.Errorf("NoShowRate = %v, want %v", report.NoShowRate, want)
	}
}

func TestComputeKPIsEmpty(t *testing.T) {
	report := ComputeKPIs(nil)
	if report.TotalCustomers != 0 || report.AverageVisits != 0 || report.NoShowRate != 0 || report.CancelRate != 0 {
		t.Errorf("empty input should yield a zero report, got %+v", report)
	}
}

func TestComputeKPIsTotals(t *testing.T) {
	customers := []models.Customer{
		{Visits: 4, Reservations: models.ReservationStats{Made: 3, Cancelled: 1, NoShows: 0}},
		{Visits: 8, Reservations: models.ReservationStats{Made: 5, Cancelled: 1, NoShows: 2}},
	}

	report := ComputeKPIs(customers)
	if report.TotalVisits != 12 {
		t.Errorf("TotalVisits = %d, want 12", report.TotalVisits)
	}
	if report.AverageVisits != 6 {
		t.Errorf("AverageVisits = %v, want 6", report.AverageVisits)
	}
	if report.ReservationsMade != 8 || report.ReservationsCancelled != 2 || report.NoShows != 2 {
		t.Errorf("reservation totals wrong: %+v", report)
	}
	if report.CancelRate != 0.25 {
		t.Errorf("CancelRate = %v, want 0.25", report.CancelRate)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		date string
		want int
	}{
		{"2025-03-15", 0},
		{"2025-03-10", 5},
		{"2025-01-14", 60},
		{"2025-03-14T20:00:00", 0},
		{"not-a-date", 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := DaysSince(tc.date, now); got != tc.want {
			t.Errorf("DaysSince(%q) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestActiveCount(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{LastVisitDate: "2025-03-14"},
		{LastVisitDate: "2025-03-01"},
		{LastVisitDate: "2024-11-01"},
	}

	if got := ActiveCount(customers, 30, now); got != 2 {
		t.Errorf("ActiveCount(30d) = %d, want 2", got)
	}
	if got := ActiveCount(customers, 365, now); got != 3 {
		t.Errorf("ActiveCount(365d) = %d, want 3", got)
	}
}

func TestPercentChange(t *testing.T) {
	if got := PercentChange(110, 100); got != 10 {
		t.Errorf("PercentChange(110, 100) = %v, want 10", got)
	}
	if got := PercentChange(50, 100); got != -50 {
		t.Errorf("PercentChange(50, 100) = %v, want -50", got)
	}
	if got := PercentChange(10, 0); got != 0 {
		t.Errorf("PercentChange(10, 0) = %v, want 0 (zero guard)", got)
	}
}

func TestChangeBetween(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		wantPercent       float64
		wantType          ChangeType
	}{
		{"growth", 110, 100, 10, ChangePositive},
		{"decline", 90, 100, 10, ChangeNegative},
		{"flat", 100, 100, 0, ChangePositive},
		{"zero previous", 42, 0, 0, ChangePositive},
		{"rounded", 1, 3, 66.7, ChangeNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ChangeBetween(tc.current, tc.previous)
			if got.Percent != tc.wantPercent || got.Type != tc.wantType {
				t.Errorf("ChangeBetween(%v, %v) = %+v, want {%v %v}",
					tc.current, tc.previous, got, tc.wantPercent, tc.wantType)
			}
		})
	}
}

func TestReferenceTime(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: "2025-02-10T12:00:00"},
		{CreatedAt: "2025-03-15T20:30:00"},
		{CreatedAt: "garbage"},
	}

	want := time.Date(2025, 3, 15, 20, 30, 0, 0, time.UTC)
	if got := ReferenceTime(orders); !got.Equal(want) {
		t.Errorf("ReferenceTime = %v, want %v", got, want)
	}
	if got := ReferenceTime(nil); !got.IsZero() {
		t.Errorf("ReferenceTime(nil) = %v, want zero time", got)
	}
}

func TestComparePeriodsWindows(t *testing.T) {
	// Reference instant is the newest order: 2025-03-15T20:00.
	orders := []models.Order{
		{ID: 1, Total: 30, CreatedAt: "2025-03-15T20:00:00"},
		{ID: 2, Total: 10, CreatedAt: "2025-03-14T10:00:00"},
		{ID: 3, Total: 20, CreatedAt: "2025-03-05T10:00:00"},
		{ID: 4, Total: 99, CreatedAt: "2025-01-01T10:00:00"},
	}

	got := ComparePeriods(orders, nil, nil, PeriodWeek)

	if got.Revenue.Current != 40 || got.Revenue.Previous != 20 {
		t.Errorf("revenue window = %v/%v, want 40/20", got.Revenue.Current, got.Revenue.Previous)
	}
	if got.Revenue.Change.Percent != 100 || got.Revenue.Change.Type != ChangePositive {
		t.Errorf("revenue change = %+v, want 100%% positive", got.Revenue.Change)
	}
	if got.Orders.Current != 2 || got.Orders.Previous != 1 {
		t.Errorf("order counts = %v/%v, want 2/1", got.Orders.Current, got.Orders.Previous)
	}
	if got.AverageTicket.Current != 20 || got.AverageTicket.Previous != 20 {
		t.Errorf("ticket = %v/%v, want 20/20", got.AverageTicket.Current, got.AverageTicket.Previous)
	}
	if got.AverageTicket.Change.Percent != 0 || got.AverageTicket.Change.Type != ChangePositive {
		t.Errorf("flat ticket should report 0%% positive, got %+v", got.AverageTicket.Change)
	}
}

func TestComparePeriodsEmptyPriorWindow(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Total: 25, CreatedAt: "2025-03-15T20:00:00"},
		{ID: 2, Total: 15, CreatedAt: "2025-03-15T13:00:00"},
	}

	got := ComparePeriods(orders, nil, nil, PeriodToday)

	if got.Revenue.Previous != 0 {
		t.Fatalf("prior revenue = %v, want 0", got.Revenue.Previous)
	}
	if got.Revenue.Change.Percent != 0 || got.Revenue.Change.Type != ChangePositive {
		t.Errorf("empty prior window change = %+v, want 0%% positive", got.Revenue.Change)
	}
}

func TestComparePeriodsOccupancyAndRating(t *testing.T) {
	orders := []models.Order{{ID: 1, Total: 10, CreatedAt: "2025-03-15T20:00:00"}}
	reservations := []models.Reservation{
		{Date: "2025-03-14", Status: models.ReservationConfirmed},
		{Date: "2025-03-13", Status: models.ReservationPending},
		{Date: "2025-03-04", Status: models.ReservationConfirmed},
	}
	reviews := []models.Review{
		{Rating: 5, CreatedAt: "2025-03-14T10:00:00"},
		{Rating: 3, CreatedAt: "2025-03-12T10:00:00"},
		{Rating: 1, CreatedAt: "2025-03-04T10:00:00"},
	}

	got := ComparePeriods(orders, reservations, reviews, PeriodWeek)

	if got.OccupancyRate.Current != 50 {
		t.Errorf("occupancy current = %v, want 50", got.OccupancyRate.Current)
	}
	if got.OccupancyRate.Previous != 100 {
		t.Errorf("occupancy previous = %v, want 100", got.OccupancyRate.Previous)
	}
	if got.AverageRating.Current != 4 {
		t.Errorf("rating current = %v, want 4", got.AverageRating.Current)
	}
	if got.AverageRating.Previous != 1 {
		t.Errorf("rating previous = %v, want 1", got.AverageRating.Previous)
	}
}

func TestPeriodDays(t *testing.T) {
	cases := map[Period]int{
		PeriodToday:     1,
		PeriodWeek:      7,
		PeriodMonth:     30,
		PeriodYear:      365,
		Period("bogus"): 1,
	}
	for period, want := range cases {
		if got := period.Days(); got != want {
			t.Errorf("%q.Days() = %d, want %d", period, got, want)
		}
	}
}
