package overview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

type PaymentMethodStats struct {
	Method       string  `json:"method"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
	Fill         string  `json:"fill"`
}

type MonthlyTrend struct {
	Month         string  `json:"month"`
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	Expenses      float64 `json:"expenses"`
	Profit        float64 `json:"profit"`
	AverageTicket float64 `json:"average_ticket"`
}

// Display colors keyed by payment method; unknown methods get the fallback.
var paymentColors = map[string]string{
	"MBWay":      "#1B2B1F",
	"Multibanco": "#C3CEC4",
	"Numerário":  "#8F7F78",
	"Visa":       "#3B2F2C",
	"Mastercard": "#536657",
}

const paymentColorFallback = "#8884d8"

// PaymentMethodBreakdown groups orders by payment method, counting
// transactions and summing revenue, most-used method first.
func PaymentMethodBreakdown(orders []models.Order) []PaymentMethodStats {
	byMethod := make(map[string]*PaymentMethodStats)
	for _, o := range orders {
		stats, ok := byMethod[o.PaymentMethod]
		if !ok {
			fill, known := paymentColors[o.PaymentMethod]
			if !known {
				fill = paymentColorFallback
			}
			stats = &PaymentMethodStats{Method: o.PaymentMethod, Fill: fill}
			byMethod[o.PaymentMethod] = stats
		}
		stats.Transactions++
		stats.Revenue += o.Total
	}

	breakdown := make([]PaymentMethodStats, 0, len(byMethod))
	for _, stats := range byMethod {
		breakdown = append(breakdown, *stats)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Transactions != breakdown[j].Transactions {
			return breakdown[i].Transactions > breakdown[j].Transactions
		}
		return breakdown[i].Method < breakdown[j].Method
	})
	return breakdown
}

// MonthlyTrends groups order revenue and expenses by calendar month and
// derives profit and average ticket per month. The month sets are unioned:
// a month with expenses but no orders still appears, with zero revenue and
// a negative profit.
func MonthlyTrends(orders []models.Order, expenses []models.Expense) []MonthlyTrend {
	type monthOrders struct {
		total float64
		count int
	}
	revenueByMonth := make(map[string]*monthOrders)
	for _, o := range orders {
		key := monthKey(o.CreatedAt)
		if key == "" {
			continue
		}
		m, ok := revenueByMonth[key]
		if !ok {
			m = &monthOrders{}
			revenueByMonth[key] = m
		}
		m.total += o.Total
		m.count++
	}

	expensesByMonth := make(map[string]float64)
	for _, e := range expenses {
		expensesByMonth[e.Month] += e.Amount
	}

	monthSet := make(map[string]struct{})
	for key := range revenueByMonth {
		monthSet[key] = struct{}{}
	}
	for key := range expensesByMonth {
		monthSet[key] = struct{}{}
	}
	months := make([]string, 0, len(monthSet))
	for key := range monthSet {
		months = append(months, key)
	}
	sort.Strings(months)

	trends := make([]MonthlyTrend, 0, len(months))
	for _, key := range months {
		trend := MonthlyTrend{Month: monthLabel(key), Expenses: expensesByMonth[key]}
		if m, ok := revenueByMonth[key]; ok {
			trend.Revenue = m.total
			trend.Orders = m.count
			if m.count > 0 {
				trend.AverageTicket = m.total / float64(m.count)
			}
		}
		trend.Profit = trend.Revenue - trend.Expenses
		trends = append(trends, trend)
	}
	return trends
}

// monthKey extracts the "YYYY-MM" grouping key from a timestamp string.
func monthKey(createdAt string) string {
	if len(createdAt) < 7 {
		return ""
	}
	return createdAt[:7]
}

// monthLabel turns "2025-02" into "Feb 2025". Keys that do not split into a
// year and a valid month number pass through unchanged.
func monthLabel(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return key
	}
	monthNum, err := strconv.Atoi(parts[1])
	if err != nil || monthNum < 1 || monthNum > 12 {
		return key
	}
	return fmt.Sprintf("%s %s", time.Month(monthNum).String()[:3], parts[0])
}
