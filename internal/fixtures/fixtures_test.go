package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // Reduce noise in tests
	return logger
}

func TestLoad(t *testing.T) {
	ds, err := Load("testdata", testLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Customers) != 2 {
		t.Errorf("customers = %d, want 2", len(ds.Customers))
	}
	if len(ds.Orders) != 2 {
		t.Errorf("orders = %d, want 2", len(ds.Orders))
	}
	if len(ds.OrderItems) != 3 {
		t.Errorf("order items = %d, want 3", len(ds.OrderItems))
	}
	if len(ds.Products) != 2 || len(ds.Reservations) != 2 || len(ds.Reviews) != 2 || len(ds.Expenses) != 2 {
		t.Errorf("unexpected collection sizes: %+v", ds)
	}

	if ds.Customers[0].Name != "Ana Ferreira" {
		t.Errorf("first customer = %q, want Ana Ferreira", ds.Customers[0].Name)
	}
	if ds.Customers[0].Reservations.Made != 12 {
		t.Errorf("nested reservation stats not decoded: %+v", ds.Customers[0].Reservations)
	}
	if ds.Orders[0].PaymentMethod != "MBWay" {
		t.Errorf("payment method = %q, want MBWay", ds.Orders[0].PaymentMethod)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope"), testLogger()); err == nil {
		t.Fatal("expected an error for a missing fixture directory")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"customers.json", "orders.json", "products.json", "reservations.json", "reviews.json", "expenses.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir, testLogger()); err == nil {
		t.Fatal("expected a decode error for malformed orders.json")
	}
}
