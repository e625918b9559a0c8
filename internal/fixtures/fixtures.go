// Package fixtures loads the static JSON collections the dashboard is
// computed from. Each file wraps its records in a named key, matching the
// original data directory layout. A load is all-or-nothing: any unreadable
// or undecodable file fails the whole call.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/GuimaraesSilva/resto-dashboard/pkg/models"
)

type customersFile struct {
	Customers []models.Customer `json:"customers"`
}

type ordersFile struct {
	Orders     []models.Order     `json:"orders"`
	OrderItems []models.OrderItem `json:"order_items"`
}

type productsFile struct {
	Products []models.Product `json:"products"`
}

type reservationsFile struct {
	Reservations []models.Reservation `json:"reservations"`
}

type reviewsFile struct {
	Reviews []models.Review `json:"reviews"`
}

type expensesFile struct {
	Expenses []models.Expense `json:"expenses"`
}

// Load reads the six fixture files from dir and returns the assembled
// dataset.
func Load(dir string, logger *logrus.Logger) (models.Dataset, error) {
	var ds models.Dataset

	var customers customersFile
	if err := decodeFile(dir, "customers.json", &customers); err != nil {
		return models.Dataset{}, err
	}
	var orders ordersFile
	if err := decodeFile(dir, "orders.json", &orders); err != nil {
		return models.Dataset{}, err
	}
	var products productsFile
	if err := decodeFile(dir, "products.json", &products); err != nil {
		return models.Dataset{}, err
	}
	var reservations reservationsFile
	if err := decodeFile(dir, "reservations.json", &reservations); err != nil {
		return models.Dataset{}, err
	}
	var reviews reviewsFile
	if err := decodeFile(dir, "reviews.json", &reviews); err != nil {
		return models.Dataset{}, err
	}
	var expenses expensesFile
	if err := decodeFile(dir, "expenses.json", &expenses); err != nil {
		return models.Dataset{}, err
	}

	ds.Customers = customers.Customers
	ds.Orders = orders.Orders
	ds.OrderItems = orders.OrderItems
	ds.Products = products.Products
	ds.Reservations = reservations.Reservations
	ds.Reviews = reviews.Reviews
	ds.Expenses = expenses.Expenses

	logger.WithFields(logrus.Fields{
		"customers":    len(ds.Customers),
		"orders":       len(ds.Orders),
		"order_items":  len(ds.OrderItems),
		"products":     len(ds.Products),
		"reservations": len(ds.Reservations),
		"reviews":      len(ds.Reviews),
		"expenses":     len(ds.Expenses),
	}).Debug("Fixtures loaded")

	return ds, nil
}

func decodeFile(dir, name string, out interface{}) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
