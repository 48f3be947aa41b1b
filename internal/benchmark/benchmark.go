// Package benchmark fills in a benchmark value series when the simulation
// engine omits one, using daily adjusted closes indexed to the portfolio's
// first-day value.
package benchmark

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"stockdash/internal/domain"
)

// FetchDailyCloses pulls adjusted daily closes for symbol over [start, end],
// keyed by YYYY-MM-DD.
func FetchDailyCloses(symbol string, start, end time.Time) (map[string]float64, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	closes := map[string]float64{}
	for iter.Next() {
		t := time.Unix(int64(iter.Bar().Timestamp), 0).UTC()
		closes[t.Format(time.DateOnly)] = iter.Bar().AdjClose.InexactFloat64()
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get closes for %s: %w", symbol, err)
	}

	return closes, nil
}

// Backfill sets BenchmarkValue on every snapshot from the given closes,
// indexed so the benchmark starts at the portfolio's first-day value. Days
// without a close (non-trading days) carry the most recent close forward.
func Backfill(snapshots []domain.DailySnapshot, closes map[string]float64) error {
	if len(snapshots) == 0 {
		return fmt.Errorf("%w: empty snapshot sequence", domain.ErrInvalidInput)
	}

	firstClose, ok := closes[snapshots[0].Date.Format(time.DateOnly)]
	if !ok || firstClose == 0 {
		return fmt.Errorf("no benchmark close on first day %s", snapshots[0].Date.Format(time.DateOnly))
	}

	scale := snapshots[0].PortfolioValue / firstClose
	last := firstClose
	for i := range snapshots {
		if c, ok := closes[snapshots[i].Date.Format(time.DateOnly)]; ok && c != 0 {
			last = c
		}
		snapshots[i].BenchmarkValue = last * scale
	}

	return nil
}
