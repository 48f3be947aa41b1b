package export

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"stockdash/internal/domain"
)

type segmentRow struct {
	Segment       int     `csv:"segment"`
	StartDate     string  `csv:"start_date"`
	EndDate       string  `csv:"end_date"`
	StartValue    float64 `csv:"start_value"`
	EndValue      float64 `csv:"end_value"`
	ReturnPercent float64 `csv:"return_percent"`
}

type attributionRow struct {
	Segment       int     `csv:"segment"`
	Symbol        string  `csv:"symbol"`
	StartPrice    float64 `csv:"start_price"`
	EndPrice      float64 `csv:"end_price"`
	ReturnPercent float64 `csv:"return_percent"`
	WeightPercent float64 `csv:"weight_percent"`
}

// WriteSegments writes one CSV row per segment.
func WriteSegments(w io.Writer, segments []domain.RebalanceSegment) error {
	rows := make([]segmentRow, 0, len(segments))
	for i, s := range segments {
		rows = append(rows, segmentRow{
			Segment:       i,
			StartDate:     s.StartDate.Format(time.DateOnly),
			EndDate:       s.EndDate.Format(time.DateOnly),
			StartValue:    s.StartValue,
			EndValue:      s.EndValue,
			ReturnPercent: s.ReturnPercent,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// WriteAttribution writes one CSV row per holding per segment, in the
// segment's descending-return order.
func WriteAttribution(w io.Writer, segments []domain.RebalanceSegment) error {
	rows := []attributionRow{}
	for i, s := range segments {
		for _, p := range s.StockPerformance {
			rows = append(rows, attributionRow{
				Segment:       i,
				Symbol:        p.Symbol,
				StartPrice:    p.StartPrice,
				EndPrice:      p.EndPrice,
				ReturnPercent: p.ReturnPercent,
				WeightPercent: p.Weight,
			})
		}
	}
	return gocsv.Marshal(&rows, w)
}
