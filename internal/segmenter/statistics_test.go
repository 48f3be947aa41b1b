package segmenter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stockdash/internal/domain"
)

func Test_AggregateReturns(t *testing.T) {
	t.Run("known example", func(t *testing.T) {
		statistics, err := AggregateReturns([]float64{10, -5, 0})
		require.NoError(t, err)

		require.Equal(t, 3, statistics.Count)
		require.InDelta(t, 1.6667, statistics.AvgReturn, 1e-3)
		require.InDelta(t, 33.333, statistics.WinRate, 1e-2)
		require.InDelta(t, 10.0, statistics.BestReturn, 1e-9)
		require.InDelta(t, -5.0, statistics.WorstReturn, 1e-9)
		// population stdev, not sample
		require.InDelta(t, 6.2361, statistics.Volatility, 1e-3)
	})

	t.Run("all positive returns win every period", func(t *testing.T) {
		statistics, err := AggregateReturns([]float64{1, 2, 3, 4})
		require.NoError(t, err)
		require.InDelta(t, 100.0, statistics.WinRate, 1e-9)
	})

	t.Run("empty input is rejected, never NaN", func(t *testing.T) {
		_, err := AggregateReturns(nil)
		require.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}

func Test_AggregateStatistics(t *testing.T) {
	snapshots := []domain.DailySnapshot{
		newSnapshot(t, "2023-01-03", 100000),
		newSnapshot(t, "2023-01-31", 110000),
		newSnapshot(t, "2023-02-28", 104500),
	}

	periods, err := ComputeCalendarPeriodReturns(snapshots, domain.GranularityMonthly)
	require.NoError(t, err)

	statistics, err := AggregateStatistics(periods)
	require.NoError(t, err)
	require.Equal(t, 2, statistics.Count)
	require.InDelta(t, 50.0, statistics.WinRate, 1e-9)
	require.InDelta(t, 10.0, statistics.BestReturn, 1e-9)
	require.InDelta(t, -5.0, statistics.WorstReturn, 1e-9)
	require.InDelta(t, 2.5, statistics.AvgReturn, 1e-9)
}
