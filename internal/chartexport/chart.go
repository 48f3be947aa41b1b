// Package chartexport renders derived series as PNG charts for clients that
// want a server-side image instead of raw JSON.
package chartexport

import (
	"fmt"
	"time"

	charts "github.com/vicanso/go-charts/v2"

	"stockdash/internal/domain"
)

// RenderValueChart draws portfolio and benchmark values as a line chart.
func RenderValueChart(snapshots []domain.DailySnapshot, title string) ([]byte, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot sequence", domain.ErrInvalidInput)
	}

	xAxis := make([]string, 0, len(snapshots))
	portfolio := make([]float64, 0, len(snapshots))
	bench := make([]float64, 0, len(snapshots))
	for _, s := range snapshots {
		xAxis = append(xAxis, s.Date.Format(time.DateOnly))
		portfolio = append(portfolio, s.PortfolioValue)
		bench = append(bench, s.BenchmarkValue)
	}

	split := len(xAxis) / 8
	if split < 1 {
		split = 1
	}

	painter, err := charts.LineRender(
		[][]float64{portfolio, bench},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xAxis, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"portfolio", "benchmark"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return painter.Bytes()
}
