package segmenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockdash/internal/domain"
)

func newSnapshot(t *testing.T, date string, value float64) domain.DailySnapshot {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, date)
	require.NoError(t, err)
	return domain.DailySnapshot{
		Date:           parsed,
		PortfolioValue: value,
		BenchmarkValue: value,
		Holdings:       []domain.Holding{},
		NewAdded:       []string{},
		Exited:         []string{},
	}
}

func Test_ComputeRebalanceSegments(t *testing.T) {
	t.Run("empty input is invalid", func(t *testing.T) {
		_, err := ComputeRebalanceSegments(nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("non-increasing dates are invalid", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100),
			newSnapshot(t, "2023-01-03", 101),
		}
		_, err := ComputeRebalanceSegments(snapshots)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("single day yields no segments", func(t *testing.T) {
		segments, err := ComputeRebalanceSegments([]domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
		})
		require.NoError(t, err)
		require.Empty(t, segments)
	})

	t.Run("no rebalance days yields one segment spanning the series", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
			newSnapshot(t, "2023-01-04", 101000),
			newSnapshot(t, "2023-01-05", 99000),
			newSnapshot(t, "2023-01-06", 102000),
		}
		segments, err := ComputeRebalanceSegments(snapshots)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		require.Equal(t, 0, segments[0].StartIndex)
		require.Equal(t, 3, segments[0].EndIndex)
		require.InDelta(t, 2.0, segments[0].ReturnPercent, 1e-9)
	})

	t.Run("rebalance in the middle splits the series", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
			newSnapshot(t, "2023-01-04", 105000),
			newSnapshot(t, "2023-01-05", 99750),
		}
		snapshots[1].NewAdded = []string{"NEW"}

		segments, err := ComputeRebalanceSegments(snapshots)
		require.NoError(t, err)
		require.Len(t, segments, 2)

		require.Equal(t, 0, segments[0].StartIndex)
		require.Equal(t, 1, segments[0].EndIndex)
		require.InDelta(t, 5.0, segments[0].ReturnPercent, 1e-9)

		require.Equal(t, 1, segments[1].StartIndex)
		require.Equal(t, 2, segments[1].EndIndex)
		require.InDelta(t, -5.0, segments[1].ReturnPercent, 1e-9)
	})

	t.Run("rebalance on the final day is not duplicated", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
			newSnapshot(t, "2023-01-04", 101000),
			newSnapshot(t, "2023-01-05", 102000),
		}
		snapshots[2].Exited = []string{"OLD"}

		segments, err := ComputeRebalanceSegments(snapshots)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		require.Equal(t, 0, segments[0].StartIndex)
		require.Equal(t, 2, segments[0].EndIndex)
	})

	t.Run("segments cover the series and share boundaries", func(t *testing.T) {
		snapshots := make([]domain.DailySnapshot, 0, 10)
		base := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 10; i++ {
			snapshots = append(snapshots, domain.DailySnapshot{
				Date:           base.AddDate(0, 0, i),
				PortfolioValue: 100000 + float64(i)*500,
				BenchmarkValue: 100000,
				Holdings:       []domain.Holding{},
				NewAdded:       []string{},
				Exited:         []string{},
			})
		}
		snapshots[3].NewAdded = []string{"AAPL"}
		snapshots[7].Exited = []string{"CSCO"}

		segments, err := ComputeRebalanceSegments(snapshots)
		require.NoError(t, err)
		require.Len(t, segments, 3)

		require.Equal(t, 0, segments[0].StartIndex)
		for k := 1; k < len(segments); k++ {
			require.Equal(t, segments[k-1].EndIndex, segments[k].StartIndex)
		}
		require.Equal(t, len(snapshots)-1, segments[len(segments)-1].EndIndex)

		// every rebalance day is a boundary of some segment
		for _, i := range []int{3, 7} {
			found := false
			for _, s := range segments {
				if s.StartIndex == i || s.EndIndex == i {
					found = true
				}
			}
			require.True(t, found, "index %d should be a segment boundary", i)
		}
	})
}

func Test_stockPerformance(t *testing.T) {
	holdings := []domain.Holding{
		{Symbol: "AAPL", Quantity: 10, AvgPrice: 95, CurrentPrice: 100, MarketValue: 1000},
		{Symbol: "CSCO", Quantity: 60, AvgPrice: 48, CurrentPrice: 50, MarketValue: 3000},
		{Symbol: "NVDA", Quantity: 5, AvgPrice: 190, CurrentPrice: 200, MarketValue: 1000},
	}

	t.Run("attribution, weights, and ordering", func(t *testing.T) {
		start := newSnapshot(t, "2023-01-03", 100000)
		start.Holdings = holdings

		end := newSnapshot(t, "2023-01-10", 103000)
		end.Holdings = []domain.Holding{
			{Symbol: "AAPL", Quantity: 10, AvgPrice: 95, CurrentPrice: 110, MarketValue: 1100},
			{Symbol: "CSCO", Quantity: 60, AvgPrice: 48, CurrentPrice: 45, MarketValue: 2700},
			// NVDA exited mid-segment
		}
		end.NewAdded = []string{"MSFT"}

		segments, err := ComputeRebalanceSegments([]domain.DailySnapshot{start, end})
		require.NoError(t, err)
		require.Len(t, segments, 1)

		performance := segments[0].StockPerformance
		require.Len(t, performance, 3)

		// descending by return: AAPL +10%, NVDA 0% (exited fallback), CSCO -10%
		require.Equal(t, "AAPL", performance[0].Symbol)
		require.InDelta(t, 10.0, performance[0].ReturnPercent, 1e-9)
		require.Equal(t, "NVDA", performance[1].Symbol)
		require.InDelta(t, 0.0, performance[1].ReturnPercent, 1e-9)
		require.InDelta(t, 200.0, performance[1].EndPrice, 1e-9)
		require.Equal(t, "CSCO", performance[2].Symbol)
		require.InDelta(t, -10.0, performance[2].ReturnPercent, 1e-9)

		weightSum := 0.0
		for _, p := range performance {
			weightSum += p.Weight
		}
		require.InDelta(t, 100.0, weightSum, 1e-9)
	})

	t.Run("equal returns keep holding order", func(t *testing.T) {
		start := newSnapshot(t, "2023-01-03", 100000)
		start.Holdings = []domain.Holding{
			{Symbol: "AAA", CurrentPrice: 10, MarketValue: 500},
			{Symbol: "BBB", CurrentPrice: 20, MarketValue: 500},
		}
		end := newSnapshot(t, "2023-01-04", 100000)
		end.Holdings = []domain.Holding{
			{Symbol: "AAA", CurrentPrice: 11, MarketValue: 550},
			{Symbol: "BBB", CurrentPrice: 22, MarketValue: 550},
		}

		segments, err := ComputeRebalanceSegments([]domain.DailySnapshot{start, end})
		require.NoError(t, err)
		require.Len(t, segments, 1)
		require.Equal(t, "AAA", segments[0].StockPerformance[0].Symbol)
		require.Equal(t, "BBB", segments[0].StockPerformance[1].Symbol)
	})

	t.Run("zero total market value yields zero weights", func(t *testing.T) {
		start := newSnapshot(t, "2023-01-03", 100000)
		start.Holdings = []domain.Holding{
			{Symbol: "AAA", CurrentPrice: 10, MarketValue: 0},
		}
		end := newSnapshot(t, "2023-01-04", 100000)

		segments, err := ComputeRebalanceSegments([]domain.DailySnapshot{start, end})
		require.NoError(t, err)
		require.Len(t, segments, 1)
		require.InDelta(t, 0.0, segments[0].StockPerformance[0].Weight, 1e-9)
	})
}
