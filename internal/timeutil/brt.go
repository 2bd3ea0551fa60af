package timeutil

import (
	"time"
)

// BRT is the salon's local timezone (America/Sao_Paulo, UTC-3)
var BRT *time.Location

func init() {
	var err error
	BRT, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback: create fixed zone if America/Sao_Paulo not available
		BRT = time.FixedZone("BRT", -3*60*60) // UTC-3
	}
}

// Now returns the current time in BRT
func Now() time.Time {
	return time.Now().In(BRT)
}

// StartOfDay returns the start of day (00:00:00) in BRT for the given time
func StartOfDay(t time.Time) time.Time {
	local := t.In(BRT)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, BRT)
}

// ParseDay parses a YYYY-MM-DD day string as midnight BRT.
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, BRT)
}

// Common layouts
const (
	DateLayout = "2006-01-02"
)
