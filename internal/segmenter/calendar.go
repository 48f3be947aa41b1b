package segmenter

import (
	"sort"

	"stockdash/internal/domain"
)

// ComputeCalendarPeriodReturns groups snapshots into calendar buckets and
// computes each bucket's first-to-last portfolio return. Buckets are emitted
// in chronological order; map iteration order is never trusted. A bucket
// holding a single snapshot yields a 0% return.
func ComputeCalendarPeriodReturns(snapshots []domain.DailySnapshot, granularity domain.Granularity) ([]domain.CalendarPeriodReturn, error) {
	if err := validate(snapshots); err != nil {
		return nil, err
	}

	type bucket struct {
		first domain.DailySnapshot
		last  domain.DailySnapshot
	}
	buckets := map[string]*bucket{}
	for _, s := range snapshots {
		label := granularity.Label(s.Date)
		if b, ok := buckets[label]; ok {
			b.last = s
			continue
		}
		buckets[label] = &bucket{first: s, last: s}
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]domain.CalendarPeriodReturn, 0, len(labels))
	for _, label := range labels {
		b := buckets[label]
		out = append(out, domain.CalendarPeriodReturn{
			PeriodLabel:   label,
			StartDate:     b.first.Date,
			EndDate:       b.last.Date,
			StartValue:    b.first.PortfolioValue,
			EndValue:      b.last.PortfolioValue,
			ReturnPercent: (b.last.PortfolioValue/b.first.PortfolioValue - 1) * 100,
		})
	}

	return out, nil
}
