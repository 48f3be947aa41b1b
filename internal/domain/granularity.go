package domain

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the calendar bucket size for period returns.
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return GranularityMonthly, nil
	case "quarterly", "quarter":
		return GranularityQuarterly, nil
	case "yearly", "year":
		return GranularityYearly, nil
	default:
		return "", fmt.Errorf("%w: unknown granularity %q", ErrInvalidInput, s)
	}
}

// Label maps a date into this granularity's bucket key: YYYY-MM, YYYY-Qn,
// or YYYY. Keys sort lexicographically in chronological order.
func (g Granularity) Label(t time.Time) string {
	switch g {
	case GranularityQuarterly:
		return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())+2)/3)
	case GranularityYearly:
		return fmt.Sprintf("%04d", t.Year())
	default:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	}
}
