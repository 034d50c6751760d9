package api

type DaySummary struct {
	Date              string              `json:"date"`
	WorkDurationMs    int64               `json:"work_duration_ms"`
	TotalRevenue      float64             `json:"total_revenue"`
	TotalCosts        float64             `json:"total_costs"`
	NetProfit         float64             `json:"net_profit"`
	ProfitPerHour     float64             `json:"profit_per_hour"`
	TripCount         int                 `json:"trip_count"`
	TotalDistanceKm   float64             `json:"total_distance_km"`
	Trips             []Trip              `json:"trips"`
	IncidentalCosts   []Cost              `json:"incidental_costs"`
	Partner           *Partner            `json:"partner,omitempty"`
	AppliedDailyCost  *DailyRecurringCost `json:"applied_daily_cost,omitempty"`
	AppliedRentalCost float64             `json:"applied_rental_cost,omitempty"`
}

type PeriodStats struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCosts      float64 `json:"total_costs"`
	NetProfit       float64 `json:"net_profit"`
	TotalWorkTimeMs int64   `json:"total_work_time_ms"`
	ProfitPerHour   float64 `json:"profit_per_hour"`
	TripCount       int     `json:"trip_count"`
	TotalDistanceKm float64 `json:"total_distance_km"`

	RevenueComparison float64 `json:"revenue_comparison"`
	CostsComparison   float64 `json:"costs_comparison"`
	ProfitComparison  float64 `json:"profit_comparison"`

	RevenueTrend []float64 `json:"revenue_trend"`
	CostsTrend   []float64 `json:"costs_trend"`
	ProfitTrend  []float64 `json:"profit_trend"`
}

type CategoryAmount struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type ImportResult struct {
	Platform  string `json:"platform"`
	TripCount int    `json:"trip_count"`
	Skipped   int    `json:"skipped"`
}
