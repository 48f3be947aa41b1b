// Package schema holds the wire shapes produced by the simulation engine
// and converts them into strict domain types. Validation happens exactly
// once here; everything downstream operates on domain.DailySnapshot and
// never on loose JSON.
package schema

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stockdash/internal/domain"
)

type Snapshot struct {
	Date           string          `json:"date"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	BenchmarkValue decimal.Decimal `json:"benchmark_value"`
	Holdings       []Holding       `json:"holdings"`
	NewAdded       []string        `json:"new_added"`
	Exited         []string        `json:"exited"`
}

type Holding struct {
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketValue  decimal.Decimal `json:"market_value"`
}

// ParseSnapshots validates a raw daily series and converts it to domain
// snapshots: ISO dates, strictly increasing; positive portfolio values;
// holdings unique by symbol; nil collections normalized to empty. The
// benchmark column may be absent (all zero) - then it is left at zero for a
// later backfill - but a partially-present benchmark is rejected.
func ParseSnapshots(raw []Snapshot) ([]domain.DailySnapshot, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot sequence", domain.ErrInvalidInput)
	}

	out := make([]domain.DailySnapshot, 0, len(raw))
	var prevDate time.Time
	benchmarkZeroes := 0
	for i, r := range raw {
		date, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q at index %d", domain.ErrInvalidInput, r.Date, i)
		}
		if i > 0 && !date.After(prevDate) {
			return nil, fmt.Errorf("%w: dates not strictly increasing at index %d (%s)", domain.ErrInvalidInput, i, r.Date)
		}
		prevDate = date

		if !r.PortfolioValue.IsPositive() {
			return nil, fmt.Errorf("%w: portfolio_value must be positive on %s", domain.ErrInvalidInput, r.Date)
		}
		if r.BenchmarkValue.IsNegative() {
			return nil, fmt.Errorf("%w: benchmark_value must not be negative on %s", domain.ErrInvalidInput, r.Date)
		}
		if r.BenchmarkValue.IsZero() {
			benchmarkZeroes++
		}

		holdings := make([]domain.Holding, 0, len(r.Holdings))
		seen := map[string]bool{}
		for _, h := range r.Holdings {
			if h.Symbol == "" {
				return nil, fmt.Errorf("%w: holding with empty symbol on %s", domain.ErrInvalidInput, r.Date)
			}
			if seen[h.Symbol] {
				return nil, fmt.Errorf("%w: duplicate holding %s on %s", domain.ErrInvalidInput, h.Symbol, r.Date)
			}
			seen[h.Symbol] = true
			holdings = append(holdings, domain.Holding{
				Symbol:       h.Symbol,
				Quantity:     h.Quantity.InexactFloat64(),
				AvgPrice:     h.AvgPrice.InexactFloat64(),
				CurrentPrice: h.CurrentPrice.InexactFloat64(),
				MarketValue:  h.MarketValue.InexactFloat64(),
			})
		}

		out = append(out, domain.DailySnapshot{
			Date:           date,
			PortfolioValue: r.PortfolioValue.InexactFloat64(),
			BenchmarkValue: r.BenchmarkValue.InexactFloat64(),
			Holdings:       holdings,
			NewAdded:       orEmpty(r.NewAdded),
			Exited:         orEmpty(r.Exited),
		})
	}

	if benchmarkZeroes > 0 && benchmarkZeroes != len(raw) {
		return nil, fmt.Errorf("%w: benchmark_value present on some days but not all", domain.ErrInvalidInput)
	}

	return out, nil
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
