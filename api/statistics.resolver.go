package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"stockdash/internal/domain"
	"stockdash/internal/segmenter"
)

type periodStatisticsRequest struct {
	Returns []float64 `json:"returns"`
}

func (m ApiHandler) periodStatistics(c *gin.Context) {
	var requestBody periodStatisticsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), c)
		return
	}

	statistics, err := segmenter.AggregateReturns(requestBody.Returns)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, statisticsToJson(statistics))
}
