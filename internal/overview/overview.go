// Package overview joins the fixture collections into the consolidated
// dashboard snapshot: headline metrics with prior-window deltas, top-N lists,
// payment breakdown and the monthly trend series. Unjoinable records (an
// order item whose product no longer exists) are skipped, never an error.
package overview

import (
	"github.com/GuimaraesSilva/resto-dashboard/internal/metrics"
	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

type Metrics struct {
	TotalRevenue  float64 `json:"total_revenue"`
	Orders        int     `json:"orders"`
	AverageTicket float64 `json:"average_ticket"`
	OccupancyRate float64 `json:"occupancy_rate"`
	AverageRating float64 `json:"average_rating"`
}

type Changes struct {
	TotalRevenue  metrics.Change `json:"total_revenue"`
	Orders        metrics.Change `json:"orders"`
	AverageTicket metrics.Change `json:"average_ticket"`
	OccupancyRate metrics.Change `json:"occupancy_rate"`
	AverageRating metrics.Change `json:"average_rating"`
}

type Snapshot struct {
	Metrics        Metrics              `json:"metrics"`
	Changes        Changes              `json:"changes"`
	TopProducts    []ProductSales       `json:"top_products"`
	TopClients     []ClientRank         `json:"top_clients"`
	PaymentMethods []PaymentMethodStats `json:"payment_methods"`
}

// TotalRevenue sums order totals.
func TotalRevenue(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

// AverageTicket returns revenue per order, or 0 with no orders.
func AverageTicket(orders []models.Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	return TotalRevenue(orders) / float64(len(orders))
}

// OccupancyRate is the share of confirmed reservations among reservations
// carrying a status, as a percentage. Blank-status rows are excluded from
// the denominator.
func OccupancyRate(reservations []models.Reservation) float64 {
	total, confirmed := 0, 0
	for _, r := range reservations {
		if r.Status == "" {
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

// AverageRating is the mean review rating, or 0 with no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// BuildSnapshot assembles the dashboard snapshot. Metrics cover the whole
// dataset; changes compare the selected period window against the equal
// prior window anchored at the most recent order.
func BuildSnapshot(ds models.Dataset, period metrics.Period, limit int) Snapshot {
	comparison := metrics.ComparePeriods(ds.Orders, ds.Reservations, ds.Reviews, period)

	return Snapshot{
		Metrics: Metrics{
			TotalRevenue:  TotalRevenue(ds.Orders),
			Orders:        len(ds.Orders),
			AverageTicket: AverageTicket(ds.Orders),
			OccupancyRate: OccupancyRate(ds.Reservations),
			AverageRating: AverageRating(ds.Reviews),
		},
		Changes: Changes{
			TotalRevenue:  comparison.Revenue.Change,
			Orders:        comparison.Orders.Change,
			AverageTicket: comparison.AverageTicket.Change,
			OccupancyRate: comparison.OccupancyRate.Change,
			AverageRating: comparison.AverageRating.Change,
		},
		TopProducts:    TopProductsByQuantity(ds.Orders, ds.OrderItems, ds.Products, limit),
		TopClients:     TopClients(ds.Customers, limit),
		PaymentMethods: PaymentMethodBreakdown(ds.Orders),
	}
}
