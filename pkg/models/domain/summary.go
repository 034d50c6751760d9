package domain

import "time"

// DaySummary is the aggregation result for one calendar day, keyed by an
// ISO date string (YYYY-MM-DD). It is derived entirely from trip, cost and
// partner state and recomputed on every read.
type DaySummary struct {
	Date            string
	WorkDuration    time.Duration
	TotalRevenue    float64
	TotalCosts      float64
	NetProfit       float64
	ProfitPerHour   float64
	TripCount       int
	TotalDistanceKm float64
	Trips           []Trip
	IncidentalCosts []Cost
	Partner         *Partner
	// AppliedDailyCost is the recurring daily cost charged on this day,
	// nil when the partner defines none or the day had no trips.
	AppliedDailyCost *DailyRecurringCost
	// AppliedRentalCost is this day's share of a weekly rental fee.
	AppliedRentalCost float64
}

// PeriodStats are the all-time rollups plus today-vs-yesterday comparisons
// and trailing 7-day trend sequences (oldest day first, today last).
type PeriodStats struct {
	TotalRevenue    float64
	TotalCosts      float64
	NetProfit       float64
	TotalWorkTime   time.Duration
	ProfitPerHour   float64
	TripCount       int
	TotalDistanceKm float64

	RevenueComparison float64
	CostsComparison   float64
	ProfitComparison  float64

	RevenueTrend []float64
	CostsTrend   []float64
	ProfitTrend  []float64
}

type CategoryAmount struct {
	Label  string
	Amount float64
}
