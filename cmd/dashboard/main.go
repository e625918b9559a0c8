package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/GuimaraesSilva/resto-dashboard/internal/fixtures"
	"github.com/GuimaraesSilva/resto-dashboard/internal/metrics"
	"github.com/GuimaraesSilva/resto-dashboard/internal/overview"
	"github.com/GuimaraesSilva/resto-dashboard/internal/segments"
)

// report is the single JSON document written to stdout.
type report struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	Period        metrics.Period           `json:"period"`
	Snapshot      overview.Snapshot        `json:"snapshot"`
	CustomerKPIs  metrics.KPIReport        `json:"customer_kpis"`
	Comparison    metrics.PeriodComparison `json:"comparison"`
	Segments      map[segments.Segment]int `json:"segments"`
	MonthlyTrends []overview.MonthlyTrend  `json:"monthly_trends"`
}

func main() {
	dataDir := flag.String("data", "data", "directory containing the JSON fixtures")
	period := flag.String("period", "month", "comparison period: today, week, month or year")
	top := flag.Int("top", 5, "number of entries in top-N lists")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	// .env is optional; env vars win either way.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	runLogger := logger.WithField("run_id", uuid.New().String())

	p := metrics.Period(*period)
	switch p {
	case metrics.PeriodToday, metrics.PeriodWeek, metrics.PeriodMonth, metrics.PeriodYear:
	default:
		runLogger.WithField("period", *period).Fatal("Unknown period")
	}

	ds, err := fixtures.Load(*dataDir, logger)
	if err != nil {
		runLogger.WithError(err).Fatal("Failed to load fixtures")
	}

	thresholds := segments.ThresholdsFromEnv()
	now := metrics.ReferenceTime(ds.Orders)

	out := report{
		GeneratedAt:   time.Now().UTC(),
		Period:        p,
		Snapshot:      overview.BuildSnapshot(ds, p, *top),
		CustomerKPIs:  metrics.ComputeKPIs(ds.Customers),
		Comparison:    metrics.ComparePeriods(ds.Orders, ds.Reservations, ds.Reviews, p),
		Segments:      segments.CountBySegment(ds.Customers, thresholds, now),
		MonthlyTrends: overview.MonthlyTrends(ds.Orders, ds.Expenses),
	}

	runLogger.WithFields(logrus.Fields{
		"period":        p,
		"orders":        len(ds.Orders),
		"customers":     len(ds.Customers),
		"total_revenue": out.Snapshot.Metrics.TotalRevenue,
	}).Info("Dashboard snapshot computed")

	encoder := json.NewEncoder(os.Stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(out); err != nil {
		runLogger.WithError(err).Fatal("Failed to encode report")
	}
}
