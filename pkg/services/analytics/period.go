package analytics

import (
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

// trendDays is the length of the trailing trend window, today inclusive.
const trendDays = 7

type dayMetrics struct {
	revenue float64
	costs   float64
	profit  float64
}

// AggregatePeriod rolls a day-summary collection up into all-time totals,
// today-vs-yesterday comparison percentages and trailing 7-day trend
// sequences. The reference time is a parameter so the rollup stays a pure
// function of its inputs.
func AggregatePeriod(summaries []domain.DaySummary, now time.Time) domain.PeriodStats {
	stats := domain.PeriodStats{}

	byDay := make(map[string]dayMetrics, len(summaries))
	for _, s := range summaries {
		stats.TotalRevenue += s.TotalRevenue
		stats.TotalCosts += s.TotalCosts
		stats.NetProfit += s.NetProfit
		stats.TotalWorkTime += s.WorkDuration
		stats.TripCount += s.TripCount
		stats.TotalDistanceKm += s.TotalDistanceKm

		m := byDay[s.Date]
		m.revenue += s.TotalRevenue
		m.costs += s.TotalCosts
		m.profit += s.NetProfit
		byDay[s.Date] = m
	}

	if stats.TotalWorkTime > 0 {
		stats.ProfitPerHour = stats.NetProfit / stats.TotalWorkTime.Hours()
	}

	today := startOfDayUTC(now)
	cur := byDay[DayKey(today)]
	prev := byDay[DayKey(today.AddDate(0, 0, -1))]
	stats.RevenueComparison = comparisonPct(cur.revenue, prev.revenue)
	stats.CostsComparison = comparisonPct(cur.costs, prev.costs)
	stats.ProfitComparison = comparisonPct(cur.profit, prev.profit)

	stats.RevenueTrend = make([]float64, 0, trendDays)
	stats.CostsTrend = make([]float64, 0, trendDays)
	stats.ProfitTrend = make([]float64, 0, trendDays)
	for offset := trendDays - 1; offset >= 0; offset-- {
		m := byDay[DayKey(today.AddDate(0, 0, -offset))]
		stats.RevenueTrend = append(stats.RevenueTrend, m.revenue)
		stats.CostsTrend = append(stats.CostsTrend, m.costs)
		stats.ProfitTrend = append(stats.ProfitTrend, m.profit)
	}

	return stats
}

// comparisonPct computes (current-previous)/previous as a percentage with
// explicit division-by-zero rules: a jump from nothing reads as +100%, a
// drop to nothing as -100%, and no movement as 0%.
func comparisonPct(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	if current == 0 && previous > 0 {
		return -100
	}
	return (current - previous) / previous * 100
}
