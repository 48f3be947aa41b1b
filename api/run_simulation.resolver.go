package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/runcache"
	"stockdash/internal/schema"
	"stockdash/internal/segmenter"
	"stockdash/pkg/simbackend"
)

type runSimulationRequest struct {
	StrategyID      string  `json:"strategyId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	InitialCapital  float64 `json:"initialCapital"`
	RebalancePeriod string  `json:"rebalancePeriod"`
	BenchmarkSymbol string  `json:"benchmarkSymbol"`
	HoldingsCount   int     `json:"holdingsCount"`

	// ForceRefresh discards any cached run for the same parameters. It is
	// deliberately excluded from the params hash.
	ForceRefresh bool `json:"forceRefresh"`
}

type runSimulationResponse struct {
	RunID          string               `json:"runId"`
	Cached         bool                 `json:"cached"`
	Segments       []segmentJson        `json:"segments"`
	MonthlyReturns []calendarPeriodJson `json:"monthlyReturns"`
	Statistics     *statisticsJson      `json:"statistics"`
}

func (m ApiHandler) runSimulation(c *gin.Context) {
	var requestBody runSimulationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), c)
		return
	}

	user, err := m.parseBearerToken(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	input := simbackend.RunSimulationInput{
		StrategyID:      requestBody.StrategyID,
		StartDate:       requestBody.StartDate,
		EndDate:         requestBody.EndDate,
		InitialCapital:  requestBody.InitialCapital,
		RebalancePeriod: requestBody.RebalancePeriod,
		BenchmarkSymbol: requestBody.BenchmarkSymbol,
		HoldingsCount:   requestBody.HoldingsCount,
	}

	hash, err := runcache.HashParams(input)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if requestBody.ForceRefresh {
		m.RunCache.Invalidate(hash)
	} else if cached, ok := m.RunCache.GetByHash(hash); ok {
		c.JSON(200, runResultToJson(cached, true))
		return
	}

	raw, err := m.SimClient.RunSimulation(c.Request.Context(), input)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run simulation: %w", err), c)
		return
	}

	snapshots, err := schema.ParseSnapshots(raw)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	segments, err := segmenter.ComputeRebalanceSegments(snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	monthly, err := segmenter.ComputeCalendarPeriodReturns(snapshots, domain.GranularityMonthly)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	statistics, err := segmenter.AggregateStatistics(monthly)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result := &runcache.Result{
		ParamsHash:     hash,
		Snapshots:      snapshots,
		Segments:       segments,
		MonthlyReturns: monthly,
		Statistics:     statistics,
	}
	if user != nil {
		result.Owner = &user.Subject
	}
	m.RunCache.Put(result)
	logger.FromContext(c).Infow("completed simulation run",
		"runId", result.RunID.String(),
		"strategyId", requestBody.StrategyID,
		"days", len(snapshots),
		"segments", len(segments),
	)

	c.JSON(200, runResultToJson(result, false))
}

func runResultToJson(result *runcache.Result, cached bool) runSimulationResponse {
	return runSimulationResponse{
		RunID:          result.RunID.String(),
		Cached:         cached,
		Segments:       segmentsToJson(result.Segments),
		MonthlyReturns: periodsToJson(result.MonthlyReturns),
		Statistics:     statisticsToJson(result.Statistics),
	}
}
