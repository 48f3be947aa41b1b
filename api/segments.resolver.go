package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"stockdash/internal/domain"
	"stockdash/internal/schema"
	"stockdash/internal/segmenter"
)

type segmentsRequest struct {
	Snapshots []schema.Snapshot `json:"snapshots"`
}

type stockPerformanceJson struct {
	Symbol        string  `json:"symbol"`
	StartPrice    float64 `json:"startPrice"`
	EndPrice      float64 `json:"endPrice"`
	ReturnPercent float64 `json:"returnPercent"`
	Weight        float64 `json:"weight"`
}

type segmentJson struct {
	StartIndex       int                    `json:"startIndex"`
	EndIndex         int                    `json:"endIndex"`
	StartDate        string                 `json:"startDate"`
	EndDate          string                 `json:"endDate"`
	StartValue       float64                `json:"startValue"`
	EndValue         float64                `json:"endValue"`
	ReturnPercent    float64                `json:"returnPercent"`
	StockPerformance []stockPerformanceJson `json:"stockPerformance"`
}

type statisticsJson struct {
	Count       int     `json:"count"`
	WinRate     float64 `json:"winRate"`
	AvgReturn   float64 `json:"avgReturn"`
	BestReturn  float64 `json:"bestReturn"`
	WorstReturn float64 `json:"worstReturn"`
	Volatility  float64 `json:"volatility"`
}

type segmentsResponse struct {
	Segments   []segmentJson   `json:"segments"`
	Statistics *statisticsJson `json:"statistics,omitempty"`
}

func (m ApiHandler) segments(c *gin.Context) {
	var requestBody segmentsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), c)
		return
	}

	snapshots, err := schema.ParseSnapshots(requestBody.Snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	segments, err := segmenter.ComputeRebalanceSegments(snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	response := segmentsResponse{Segments: segmentsToJson(segments)}
	if len(segments) > 0 {
		returns := make([]float64, 0, len(segments))
		for _, s := range segments {
			returns = append(returns, s.ReturnPercent)
		}
		statistics, err := segmenter.AggregateReturns(returns)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		response.Statistics = statisticsToJson(statistics)
	}

	c.JSON(200, response)
}

func segmentsToJson(segments []domain.RebalanceSegment) []segmentJson {
	out := make([]segmentJson, 0, len(segments))
	for _, s := range segments {
		performance := make([]stockPerformanceJson, 0, len(s.StockPerformance))
		for _, p := range s.StockPerformance {
			performance = append(performance, stockPerformanceJson{
				Symbol:        p.Symbol,
				StartPrice:    p.StartPrice,
				EndPrice:      p.EndPrice,
				ReturnPercent: p.ReturnPercent,
				Weight:        p.Weight,
			})
		}
		out = append(out, segmentJson{
			StartIndex:       s.StartIndex,
			EndIndex:         s.EndIndex,
			StartDate:        s.StartDate.Format(time.DateOnly),
			EndDate:          s.EndDate.Format(time.DateOnly),
			StartValue:       s.StartValue,
			EndValue:         s.EndValue,
			ReturnPercent:    s.ReturnPercent,
			StockPerformance: performance,
		})
	}
	return out
}

func statisticsToJson(statistics *domain.PeriodStatistics) *statisticsJson {
	if statistics == nil {
		return nil
	}
	return &statisticsJson{
		Count:       statistics.Count,
		WinRate:     statistics.WinRate,
		AvgReturn:   statistics.AvgReturn,
		BestReturn:  statistics.BestReturn,
		WorstReturn: statistics.WorstReturn,
		Volatility:  statistics.Volatility,
	}
}
