package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput marks a malformed snapshot sequence - empty input or
	// dates that are not strictly increasing. Callers must not render
	// partial results derived from a sequence that failed validation.
	ErrInvalidInput = errors.New("invalid snapshot sequence")

	// ErrEmptyInput marks an aggregation requested over zero periods. An
	// empty period list is a legitimate intermediate state, so callers
	// should treat this as "nothing to show" rather than a hard failure.
	ErrEmptyInput = errors.New("no periods to aggregate")
)

// Holding is one position inside a daily snapshot.
type Holding struct {
	Symbol       string
	Quantity     float64
	AvgPrice     float64
	CurrentPrice float64
	MarketValue  float64
}

// DailySnapshot is one day of an already-simulated portfolio series. The
// simulation engine produces these; nothing in this repo mutates them.
type DailySnapshot struct {
	Date           time.Time
	PortfolioValue float64
	BenchmarkValue float64
	Holdings       []Holding
	NewAdded       []string
	Exited         []string
}

// IsRebalanceDay reports whether the holdings set changed on this day.
func (s DailySnapshot) IsRebalanceDay() bool {
	return len(s.NewAdded) > 0 || len(s.Exited) > 0
}

// TotalMarketValue sums the market value of all holdings in the snapshot.
func (s DailySnapshot) TotalMarketValue() float64 {
	total := 0.0
	for _, h := range s.Holdings {
		total += h.MarketValue
	}
	return total
}

func (s DailySnapshot) HoldingBySymbol(symbol string) (Holding, bool) {
	for _, h := range s.Holdings {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return Holding{}, false
}
