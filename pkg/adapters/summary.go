package adapters

import (
	"github.com/drive-tools/fare-atlas/pkg/models/api"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

func MapDaySummaryDomainToApi(s domain.DaySummary) api.DaySummary {
	out := api.DaySummary{
		Date:              s.Date,
		WorkDurationMs:    s.WorkDuration.Milliseconds(),
		TotalRevenue:      s.TotalRevenue,
		TotalCosts:        s.TotalCosts,
		NetProfit:         s.NetProfit,
		ProfitPerHour:     s.ProfitPerHour,
		TripCount:         s.TripCount,
		TotalDistanceKm:   s.TotalDistanceKm,
		Trips:             make([]api.Trip, 0, len(s.Trips)),
		IncidentalCosts:   make([]api.Cost, 0, len(s.IncidentalCosts)),
		AppliedRentalCost: s.AppliedRentalCost,
	}

	for _, t := range s.Trips {
		out.Trips = append(out.Trips, MapTripDomainToApi(t))
	}
	for _, c := range s.IncidentalCosts {
		out.IncidentalCosts = append(out.IncidentalCosts, MapCostDomainToApi(c))
	}
	if s.Partner != nil {
		p := MapPartnerDomainToApi(*s.Partner)
		out.Partner = &p
	}
	if s.AppliedDailyCost != nil {
		out.AppliedDailyCost = &api.DailyRecurringCost{
			ID:          s.AppliedDailyCost.ID,
			Description: s.AppliedDailyCost.Description,
			Amount:      s.AppliedDailyCost.Amount,
		}
	}
	return out
}

func MapPeriodStatsDomainToApi(s domain.PeriodStats) api.PeriodStats {
	return api.PeriodStats{
		TotalRevenue:      s.TotalRevenue,
		TotalCosts:        s.TotalCosts,
		NetProfit:         s.NetProfit,
		TotalWorkTimeMs:   s.TotalWorkTime.Milliseconds(),
		ProfitPerHour:     s.ProfitPerHour,
		TripCount:         s.TripCount,
		TotalDistanceKm:   s.TotalDistanceKm,
		RevenueComparison: s.RevenueComparison,
		CostsComparison:   s.CostsComparison,
		ProfitComparison:  s.ProfitComparison,
		RevenueTrend:      s.RevenueTrend,
		CostsTrend:        s.CostsTrend,
		ProfitTrend:       s.ProfitTrend,
	}
}

func MapCategoryAmountDomainToApi(c domain.CategoryAmount) api.CategoryAmount {
	return api.CategoryAmount{Label: c.Label, Amount: c.Amount}
}
