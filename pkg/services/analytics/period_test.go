package analytics

import (
	"testing"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestComparisonPct(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth from zero", 50, 0, 100},
		{"both zero", 0, 0, 0},
		{"drop to zero", 0, 100, -100},
		{"halved", 100, 200, -50},
		{"doubled", 200, 100, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, comparisonPct(tc.current, tc.previous), 1e-9)
		})
	}
}

func TestAggregatePeriod_AllTimeTotals(t *testing.T) {
	summaries := []domain.DaySummary{
		{Date: "2024-05-06", TotalRevenue: 500, TotalCosts: 200, NetProfit: 300, WorkDuration: 8 * time.Hour},
		{Date: "2024-05-07", TotalRevenue: 300, TotalCosts: 100, NetProfit: 200, WorkDuration: 4 * time.Hour},
	}

	stats := AggregatePeriod(summaries, date(2024, time.May, 7))

	assert.InDelta(t, 800, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 300, stats.TotalCosts, 1e-9)
	assert.InDelta(t, 500, stats.NetProfit, 1e-9)
	assert.Equal(t, 12*time.Hour, stats.TotalWorkTime)
	assert.InDelta(t, 500.0/12, stats.ProfitPerHour, 1e-9)
}

func TestAggregatePeriod_ZeroWorkTime(t *testing.T) {
	summaries := []domain.DaySummary{
		{Date: "2024-05-06", TotalCosts: 120, NetProfit: -120},
	}

	stats := AggregatePeriod(summaries, date(2024, time.May, 7))

	assert.Zero(t, stats.ProfitPerHour)
}

func TestAggregatePeriod_TodayVsYesterday(t *testing.T) {
	summaries := []domain.DaySummary{
		{Date: "2024-05-06", TotalRevenue: 200, TotalCosts: 50, NetProfit: 150},
		{Date: "2024-05-07", TotalRevenue: 100, TotalCosts: 50, NetProfit: 50},
	}

	stats := AggregatePeriod(summaries, date(2024, time.May, 7).Add(15*time.Hour))

	assert.InDelta(t, -50, stats.RevenueComparison, 1e-9)
	assert.InDelta(t, 0, stats.CostsComparison, 1e-9)
	assert.InDelta(t, -100.0/150*100, stats.ProfitComparison, 1e-9)
}

func TestAggregatePeriod_SevenDayTrend(t *testing.T) {
	now := date(2024, time.May, 7)
	summaries := []domain.DaySummary{
		{Date: "2024-05-01", TotalRevenue: 10, NetProfit: 5},  // 6 days back, first point
		{Date: "2024-05-07", TotalRevenue: 70, NetProfit: 35}, // today, last point
		{Date: "2024-04-30", TotalRevenue: 99, NetProfit: 99}, // outside the window
	}

	stats := AggregatePeriod(summaries, now)

	assert.Len(t, stats.RevenueTrend, 7)
	assert.Len(t, stats.CostsTrend, 7)
	assert.Len(t, stats.ProfitTrend, 7)
	assert.InDelta(t, 10, stats.RevenueTrend[0], 1e-9)
	assert.InDelta(t, 70, stats.RevenueTrend[6], 1e-9)
	for _, v := range stats.RevenueTrend[1:6] {
		assert.Zero(t, v)
	}
}

func TestAggregatePeriod_Empty(t *testing.T) {
	stats := AggregatePeriod(nil, date(2024, time.May, 7))

	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.ProfitPerHour)
	assert.Zero(t, stats.RevenueComparison)
	assert.Len(t, stats.RevenueTrend, 7)
}
