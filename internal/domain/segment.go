package domain

import "time"

// StockPerformance is the per-holding attribution for one segment, measured
// from the holding's price at the segment start to its price at the segment
// end. Weight is the holding's share of total market value at the segment
// start, in percent.
type StockPerformance struct {
	Symbol        string
	StartPrice    float64
	EndPrice      float64
	ReturnPercent float64
	Weight        float64
}

// RebalanceSegment is a contiguous span of days between two rebalance
// boundaries, inclusive of both endpoints. Segments are pure views over the
// snapshot sequence and are recomputed from scratch on every run.
type RebalanceSegment struct {
	StartIndex int
	EndIndex   int
	StartDate  time.Time
	EndDate    time.Time
	StartValue float64
	EndValue   float64
	// (EndValue/StartValue - 1) * 100
	ReturnPercent    float64
	StockPerformance []StockPerformance
}

// CalendarPeriodReturn is the portfolio's return over one calendar bucket
// (month, quarter, or year), independent of rebalance timing.
type CalendarPeriodReturn struct {
	PeriodLabel   string
	StartDate     time.Time
	EndDate       time.Time
	StartValue    float64
	EndValue      float64
	ReturnPercent float64
}

// PeriodStatistics summarizes a list of period returns. Volatility is the
// population standard deviation, not the sample one - existing consumers
// depend on the population variant.
type PeriodStatistics struct {
	Count       int
	WinRate     float64
	AvgReturn   float64
	BestReturn  float64
	WorstReturn float64
	Volatility  float64
}
