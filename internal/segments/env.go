package segments

import (
	"os"
	"strconv"
)

// ThresholdsFromEnv starts from the defaults and applies any SEGMENT_*
// environment overrides. Unset or malformed values keep the default.
func ThresholdsFromEnv() Thresholds {
	t := DefaultThresholds()
	t.VIPVisits = getEnvInt("SEGMENT_VIP_VISITS", t.VIPVisits)
	t.NewMaxVisits = getEnvInt("SEGMENT_NEW_MAX_VISITS", t.NewMaxVisits)
	t.AtRiskDays = getEnvInt("SEGMENT_AT_RISK_DAYS", t.AtRiskDays)
	t.NoShowRateHigh = getEnvFloat("SEGMENT_NO_SHOW_RATE_HIGH", t.NoShowRateHigh)
	t.CancelRateHigh = getEnvFloat("SEGMENT_CANCEL_RATE_HIGH", t.CancelRateHigh)
	t.NoShowsMin = getEnvInt("SEGMENT_NO_SHOWS_MIN", t.NoShowsMin)
	t.CancelledMin = getEnvInt("SEGMENT_CANCELLED_MIN", t.CancelledMin)
	return t
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
