package segmenter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stockdash/internal/domain"
)

func Test_ComputeCalendarPeriodReturns(t *testing.T) {
	t.Run("monthly buckets", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
			newSnapshot(t, "2023-01-17", 103000),
			newSnapshot(t, "2023-01-31", 110000),
			newSnapshot(t, "2023-02-01", 110000),
			newSnapshot(t, "2023-02-28", 99000),
			newSnapshot(t, "2023-03-15", 99000),
		}

		periods, err := ComputeCalendarPeriodReturns(snapshots, domain.GranularityMonthly)
		require.NoError(t, err)
		require.Len(t, periods, 3)

		require.Equal(t, "2023-01", periods[0].PeriodLabel)
		require.Equal(t, "2023-01-03", periods[0].StartDate.Format("2006-01-02"))
		require.Equal(t, "2023-01-31", periods[0].EndDate.Format("2006-01-02"))
		require.InDelta(t, 10.0, periods[0].ReturnPercent, 1e-9)

		require.Equal(t, "2023-02", periods[1].PeriodLabel)
		require.InDelta(t, -10.0, periods[1].ReturnPercent, 1e-9)

		// single-snapshot bucket
		require.Equal(t, "2023-03", periods[2].PeriodLabel)
		require.InDelta(t, 0.0, periods[2].ReturnPercent, 1e-9)
	})

	t.Run("quarterly buckets", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
			newSnapshot(t, "2023-03-31", 105000),
			newSnapshot(t, "2023-04-03", 105000),
			newSnapshot(t, "2023-10-02", 120000),
		}

		periods, err := ComputeCalendarPeriodReturns(snapshots, domain.GranularityQuarterly)
		require.NoError(t, err)
		require.Len(t, periods, 3)
		require.Equal(t, "2023-Q1", periods[0].PeriodLabel)
		require.Equal(t, "2023-Q2", periods[1].PeriodLabel)
		require.Equal(t, "2023-Q4", periods[2].PeriodLabel)
		require.InDelta(t, 5.0, periods[0].ReturnPercent, 1e-9)
	})

	t.Run("yearly buckets span year boundaries", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2022-12-30", 100000),
			newSnapshot(t, "2023-01-03", 101000),
			newSnapshot(t, "2023-12-29", 125000),
		}

		periods, err := ComputeCalendarPeriodReturns(snapshots, domain.GranularityYearly)
		require.NoError(t, err)
		require.Len(t, periods, 2)
		require.Equal(t, "2022", periods[0].PeriodLabel)
		require.InDelta(t, 0.0, periods[0].ReturnPercent, 1e-9)
		require.Equal(t, "2023", periods[1].PeriodLabel)
		require.InDelta(t, float64(125000)/101000*100-100, periods[1].ReturnPercent, 1e-9)
	})

	t.Run("regrouping period date ranges is stable", func(t *testing.T) {
		snapshots := []domain.DailySnapshot{
			newSnapshot(t, "2023-01-03", 100000),
			newSnapshot(t, "2023-02-14", 104000),
			newSnapshot(t, "2023-03-01", 99000),
		}

		periods, err := ComputeCalendarPeriodReturns(snapshots, domain.GranularityMonthly)
		require.NoError(t, err)

		for _, p := range periods {
			require.Equal(t, p.PeriodLabel, domain.GranularityMonthly.Label(p.StartDate))
			require.Equal(t, p.PeriodLabel, domain.GranularityMonthly.Label(p.EndDate))
		}
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		_, err := ComputeCalendarPeriodReturns(nil, domain.GranularityMonthly)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
