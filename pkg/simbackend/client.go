// Package simbackend is the HTTP client for the external simulation engine.
// The engine owns all indicator math and portfolio simulation; this client
// only ships parameters and decodes the daily series it returns. A failed
// call is a failed call - there is no synthetic-data fallback here.
package simbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"stockdash/internal/schema"
)

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

type RunSimulationInput struct {
	StrategyID      string  `json:"strategy_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	InitialCapital  float64 `json:"initial_capital"`
	RebalancePeriod string  `json:"rebalance_period"`
	BenchmarkSymbol string  `json:"benchmark_symbol"`
	HoldingsCount   int     `json:"holdings_count"`
}

type runSimulationResponse struct {
	Results []schema.Snapshot `json:"results"`
}

func (c Client) RunSimulation(ctx context.Context, in RunSimulationInput) ([]schema.Snapshot, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal simulation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/api/simulation/run", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call simulation engine: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err == nil && errJson.Error != "" {
			return nil, fmt.Errorf("simulation engine returned %d: %s", response.StatusCode, errJson.Error)
		}
		return nil, fmt.Errorf("simulation engine returned %d", response.StatusCode)
	}

	var responseJson runSimulationResponse
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to decode simulation response: %w", err)
	}

	return responseJson.Results, nil
}
