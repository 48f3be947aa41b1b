// Package segmenter derives rebalance segments, calendar-period returns,
// and aggregate statistics from a daily portfolio snapshot series. All
// functions are pure: no I/O, no hidden state, recomputed in full from the
// input sequence alone.
package segmenter

import (
	"fmt"
	"sort"
	"time"

	"stockdash/internal/domain"
)

// ComputeRebalanceSegments partitions a date-ascending snapshot sequence
// into contiguous segments between rebalance boundaries. Index 0 is always
// a boundary, as is every later index whose holdings set changed, as is the
// final index. Consecutive segments share exactly their boundary index. A
// single-element sequence yields zero segments.
func ComputeRebalanceSegments(snapshots []domain.DailySnapshot) ([]domain.RebalanceSegment, error) {
	if err := validate(snapshots); err != nil {
		return nil, err
	}
	if len(snapshots) == 1 {
		return []domain.RebalanceSegment{}, nil
	}

	boundaries := []int{0}
	for i := 1; i < len(snapshots); i++ {
		if snapshots[i].IsRebalanceDay() {
			boundaries = append(boundaries, i)
		}
	}
	// close the final segment
	if boundaries[len(boundaries)-1] != len(snapshots)-1 {
		boundaries = append(boundaries, len(snapshots)-1)
	}

	segments := make([]domain.RebalanceSegment, 0, len(boundaries)-1)
	for k := 0; k+1 < len(boundaries); k++ {
		segments = append(segments, buildSegment(snapshots, boundaries[k], boundaries[k+1]))
	}

	return segments, nil
}

func buildSegment(snapshots []domain.DailySnapshot, start, end int) domain.RebalanceSegment {
	startSnap := snapshots[start]
	endSnap := snapshots[end]

	totalValue := startSnap.TotalMarketValue()
	performance := make([]domain.StockPerformance, 0, len(startSnap.Holdings))
	for _, h := range startSnap.Holdings {
		// a symbol sold before the segment closed keeps its start price,
		// so its contribution reads as 0% rather than a guessed exit price
		endPrice := h.CurrentPrice
		if closing, ok := endSnap.HoldingBySymbol(h.Symbol); ok {
			endPrice = closing.CurrentPrice
		}

		ret := 0.0
		if h.CurrentPrice != 0 {
			ret = (endPrice/h.CurrentPrice - 1) * 100
		}

		weight := 0.0
		if totalValue != 0 {
			weight = h.MarketValue / totalValue * 100
		}

		performance = append(performance, domain.StockPerformance{
			Symbol:        h.Symbol,
			StartPrice:    h.CurrentPrice,
			EndPrice:      endPrice,
			ReturnPercent: ret,
			Weight:        weight,
		})
	}
	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].ReturnPercent > performance[j].ReturnPercent
	})

	return domain.RebalanceSegment{
		StartIndex:       start,
		EndIndex:         end,
		StartDate:        startSnap.Date,
		EndDate:          endSnap.Date,
		StartValue:       startSnap.PortfolioValue,
		EndValue:         endSnap.PortfolioValue,
		ReturnPercent:    (endSnap.PortfolioValue/startSnap.PortfolioValue - 1) * 100,
		StockPerformance: performance,
	}
}

func validate(snapshots []domain.DailySnapshot) error {
	if len(snapshots) == 0 {
		return fmt.Errorf("%w: empty sequence", domain.ErrInvalidInput)
	}
	for i := 1; i < len(snapshots); i++ {
		if !snapshots[i].Date.After(snapshots[i-1].Date) {
			return fmt.Errorf(
				"%w: dates not strictly increasing at index %d (%s -> %s)",
				domain.ErrInvalidInput,
				i,
				snapshots[i-1].Date.Format(time.DateOnly),
				snapshots[i].Date.Format(time.DateOnly),
			)
		}
	}
	return nil
}
