package segmenter

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"stockdash/internal/domain"
)

// AggregateStatistics summarizes calendar period returns.
func AggregateStatistics(periods []domain.CalendarPeriodReturn) (*domain.PeriodStatistics, error) {
	returns := make([]float64, 0, len(periods))
	for _, p := range periods {
		returns = append(returns, p.ReturnPercent)
	}
	return AggregateReturns(returns)
}

// AggregateReturns computes count, win rate, mean, best/worst, and
// volatility over a list of percent returns. Volatility is the population
// standard deviation; consumers of historical output depend on the
// population variant. An empty list is rejected so no statistic can come
// back NaN.
func AggregateReturns(returns []float64) (*domain.PeriodStatistics, error) {
	if len(returns) == 0 {
		return nil, fmt.Errorf("%w: no returns", domain.ErrEmptyInput)
	}

	wins := 0
	for _, r := range returns {
		if r > 0 {
			wins++
		}
	}

	avg, err := stats.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean: %w", err)
	}
	best, err := stats.Max(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate max: %w", err)
	}
	worst, err := stats.Min(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate min: %w", err)
	}
	volatility, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}

	return &domain.PeriodStatistics{
		Count:       len(returns),
		WinRate:     float64(wins) / float64(len(returns)) * 100,
		AvgReturn:   avg,
		BestReturn:  best,
		WorstReturn: worst,
		Volatility:  volatility,
	}, nil
}
