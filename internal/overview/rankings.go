package overview

import (
	"sort"
	"strings"

	"github.com/GuimaraesSilva/resto-dashboard/internal/metrics"
	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

type ProductSales struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type ClientRank struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Initials         string `json:"initials"`
	Visits           int    `json:"visits"`
	ReservationsMade int    `json:"reservations_made"`
}

type CustomerSpend struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
	Orders     int     `json:"orders"`
}

type productAccumulator struct {
	quantity int
	revenue  float64
}

// TopProductsByQuantity ranks products by units sold. Revenue per product is
// the order total redistributed across the order's items proportionally to
// subtotal share, so taxes and fees land on products in proportion to what
// was bought. Orders whose item subtotals sum to 0 are skipped entirely.
func TopProductsByQuantity(orders []models.Order, items []models.OrderItem, products []models.Product, limit int) []ProductSales {
	itemsByOrder := make(map[int64][]models.OrderItem)
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	acc := make(map[int64]*productAccumulator)
	for _, order := range orders {
		orderItems := itemsByOrder[order.ID]
		var subtotalSum float64
		for _, item := range orderItems {
			subtotalSum += item.Subtotal
		}
		if subtotalSum == 0 {
			continue
		}
		for _, item := range orderItems {
			a, ok := acc[item.ProductID]
			if !ok {
				a = &productAccumulator{}
				acc[item.ProductID] = a
			}
			a.quantity += item.Quantity
			a.revenue += order.Total * (item.Subtotal / subtotalSum)
		}
	}

	return rankProducts(acc, products, limit, func(a, b ProductSales) bool {
		return a.Quantity > b.Quantity
	})
}

// TopProductsByRevenue ranks products by raw subtotal revenue, without
// redistributing order totals. Useful when item-level pricing is the figure
// of interest rather than realized order revenue.
func TopProductsByRevenue(items []models.OrderItem, products []models.Product, limit int) []ProductSales {
	acc := make(map[int64]*productAccumulator)
	for _, item := range items {
		a, ok := acc[item.ProductID]
		if !ok {
			a = &productAccumulator{}
			acc[item.ProductID] = a
		}
		a.quantity += item.Quantity
		a.revenue += item.Subtotal
	}

	return rankProducts(acc, products, limit, func(a, b ProductSales) bool {
		return a.Revenue > b.Revenue
	})
}

// rankProducts joins accumulated sales to the product catalog, silently
// dropping ids with no matching product.
func rankProducts(acc map[int64]*productAccumulator, products []models.Product, limit int, less func(a, b ProductSales) bool) []ProductSales {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ranked := make([]ProductSales, 0, len(acc))
	for productID, a := range acc {
		product, ok := byID[productID]
		if !ok {
			continue
		}
		ranked = append(ranked, ProductSales{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category,
			Quantity: a.quantity,
			Revenue:  a.revenue,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if less(ranked[i], ranked[j]) {
			return true
		}
		if less(ranked[j], ranked[i]) {
			return false
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopClients ranks customers by reservations made, visits breaking ties.
// Customers who never made a reservation are excluded regardless of visits.
func TopClients(customers []models.Customer, limit int) []ClientRank {
	eligible := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if c.Reservations.Made > 0 {
			eligible = append(eligible, c)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Reservations.Made != eligible[j].Reservations.Made {
			return eligible[i].Reservations.Made > eligible[j].Reservations.Made
		}
		if eligible[i].Visits != eligible[j].Visits {
			return eligible[i].Visits > eligible[j].Visits
		}
		return eligible[i].ID < eligible[j].ID
	})
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	ranked := make([]ClientRank, 0, len(eligible))
	for _, c := range eligible {
		ranked = append(ranked, ClientRank{
			Name:             c.Name,
			Email:            c.Email,
			Initials:         initialsOf(c.Name),
			Visits:           c.Visits,
			ReservationsMade: c.Reservations.Made,
		})
	}
	return ranked
}

// TopCustomersByVisits ranks customers purely by visit count.
func TopCustomersByVisits(customers []models.Customer, limit int) []ClientRank {
	sorted := append([]models.Customer(nil), customers...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Visits != sorted[j].Visits {
			return sorted[i].Visits > sorted[j].Visits
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ranked := make([]ClientRank, 0, len(sorted))
	for _, c := range sorted {
		ranked = append(ranked, ClientRank{
			Name:             c.Name,
			Email:            c.Email,
			Initials:         initialsOf(c.Name),
			Visits:           c.Visits,
			ReservationsMade: c.Reservations.Made,
		})
	}
	return ranked
}

// TopCustomersBySpend ranks customers by order revenue within the period
// window anchored at the most recent order. Orders referencing unknown
// customers are skipped.
func TopCustomersBySpend(orders []models.Order, customers []models.Customer, period metrics.Period, limit int) []CustomerSpend {
	now := metrics.ReferenceTime(orders)
	days := period.Days()

	type spendAccumulator struct {
		total float64
		count int
	}
	acc := make(map[int64]*spendAccumulator)
	for _, o := range orders {
		if metrics.DaysSince(o.CreatedAt, now) > days {
			continue
		}
		a, ok := acc[o.CustomerID]
		if !ok {
			a = &spendAccumulator{}
			acc[o.CustomerID] = a
		}
		a.total += o.Total
		a.count++
	}

	byID := make(map[int64]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	ranked := make([]CustomerSpend, 0, len(acc))
	for customerID, a := range acc {
		customer, ok := byID[customerID]
		if !ok {
			continue
		}
		ranked = append(ranked, CustomerSpend{
			ID:         customer.ID,
			Name:       customer.Name,
			TotalSpent: a.total,
			Orders:     a.count,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalSpent != ranked[j].TotalSpent {
			return ranked[i].TotalSpent > ranked[j].TotalSpent
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// initialsOf takes the first letter of the first two name parts, upper-cased.
func initialsOf(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	initials := string([]rune(parts[0])[0])
	if len(parts) >= 2 {
		initials += string([]rune(parts[1])[0])
	}
	return strings.ToUpper(initials)
}
