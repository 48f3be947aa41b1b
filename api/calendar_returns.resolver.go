package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"stockdash/internal/domain"
	"stockdash/internal/schema"
	"stockdash/internal/segmenter"
)

type calendarReturnsRequest struct {
	Snapshots   []schema.Snapshot `json:"snapshots"`
	Granularity string            `json:"granularity"`
}

type calendarPeriodJson struct {
	PeriodLabel   string  `json:"periodLabel"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	ReturnPercent float64 `json:"returnPercent"`
}

type calendarReturnsResponse struct {
	Granularity string               `json:"granularity"`
	Periods     []calendarPeriodJson `json:"periods"`
	Statistics  *statisticsJson      `json:"statistics"`
}

func (m ApiHandler) calendarReturns(c *gin.Context) {
	var requestBody calendarReturnsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), c)
		return
	}

	granularity, err := domain.ParseGranularity(requestBody.Granularity)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	snapshots, err := schema.ParseSnapshots(requestBody.Snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	periods, err := segmenter.ComputeCalendarPeriodReturns(snapshots, granularity)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	statistics, err := segmenter.AggregateStatistics(periods)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, calendarReturnsResponse{
		Granularity: string(granularity),
		Periods:     periodsToJson(periods),
		Statistics:  statisticsToJson(statistics),
	})
}

func periodsToJson(periods []domain.CalendarPeriodReturn) []calendarPeriodJson {
	out := make([]calendarPeriodJson, 0, len(periods))
	for _, p := range periods {
		out = append(out, calendarPeriodJson{
			PeriodLabel:   p.PeriodLabel,
			StartDate:     p.StartDate.Format(time.DateOnly),
			EndDate:       p.EndDate.Format(time.DateOnly),
			ReturnPercent: p.ReturnPercent,
		})
	}
	return out
}
