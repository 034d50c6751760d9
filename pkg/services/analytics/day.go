package analytics

import (
	"sort"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

type dayActivity struct {
	trips []domain.Trip
	costs []domain.Cost
}

// BuildDaySummaries groups trips and incidental costs by UTC calendar day,
// injects fuel estimates, allocates weekly rental fees and aggregates each
// day into a DaySummary, sorted by date descending.
//
// All of a day's trips are billed under the chronologically first trip's
// partner. Mixed-partner days are attributed wholesale to that partner; an
// expense-only day is billed under the default profile.
func BuildDaySummaries(
	trips []domain.Trip,
	costs []domain.Cost,
	resolver PartnerResolver,
	cfg Config,
) []domain.DaySummary {
	activity := make(map[string]*dayActivity)
	dayFor := func(key string) *dayActivity {
		if activity[key] == nil {
			activity[key] = &dayActivity{}
		}
		return activity[key]
	}

	for _, t := range trips {
		day := dayFor(DayKey(t.StartTime))
		day.trips = append(day.trips, t)
	}
	for _, c := range costs {
		day := dayFor(DayKey(c.Date))
		day.costs = append(day.costs, c)
	}

	for key, day := range activity {
		sort.SliceStable(day.trips, func(i, j int) bool {
			return day.trips[i].StartTime.Before(day.trips[j].StartTime)
		})

		// A working day without a manual fuel entry gets a synthesized one.
		// The check runs against recorded costs before any estimate exists,
		// so a manual entry always suppresses estimation.
		if len(day.trips) > 0 && !hasFuelCost(day.costs) {
			p := resolver.Resolve(day.trips[0].PartnerID)
			if est, ok := estimateFuelCost(key, p, cfg); ok {
				day.costs = append(day.costs, est)
			}
		}
	}

	tripsByDay := make(map[string][]domain.Trip, len(activity))
	for key, day := range activity {
		tripsByDay[key] = day.trips
	}
	rentalShares := allocateWeeklyRental(tripsByDay, resolver)

	summaries := make([]domain.DaySummary, 0, len(activity))
	for key, day := range activity {
		var p domain.Partner
		if len(day.trips) > 0 {
			p = resolver.Resolve(day.trips[0].PartnerID)
		} else {
			p = resolver.Resolve("")
		}
		summaries = append(summaries, AggregateDay(key, day.trips, day.costs, &p, rentalShares[key]))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries
}

// AggregateDay combines one calendar day's trips, incidental costs, billing
// profile and weekly rental share into a DaySummary. Trips are expected to
// be pre-sorted by start time; costs must already include any synthesized
// fuel estimate. A nil partner aggregates with zero-cost behavior.
func AggregateDay(
	day string,
	trips []domain.Trip,
	costs []domain.Cost,
	p *domain.Partner,
	rentalShare float64,
) domain.DaySummary {
	var revenue, distance float64
	for _, t := range trips {
		revenue += t.Fare
		distance += t.DistanceKm
	}

	var incidental float64
	for _, c := range costs {
		incidental += c.Amount
	}

	var fixed, commission, daily float64
	var appliedDaily *domain.DailyRecurringCost
	if p != nil {
		fixed = ProratedFixedCost(*p, parseDayKey(day))
		if p.Commission != nil {
			commission = revenue * p.Commission.Percentage / 100
		}
		if len(trips) > 0 && p.DailyCost != nil {
			daily = p.DailyCost.Amount
			appliedDaily = p.DailyCost
		}
	}

	totalCosts := incidental + fixed + commission + daily + rentalShare
	netProfit := revenue - totalCosts

	// Work duration spans first start to last end; overlapping or adjacent
	// trips are not double-counted.
	var workDuration time.Duration
	if len(trips) > 0 {
		workDuration = trips[len(trips)-1].EndTime.Sub(trips[0].StartTime)
		if p != nil && p.DailyTime != nil {
			workDuration += time.Duration(p.DailyTime.Minutes) * time.Minute
		}
	}

	var profitPerHour float64
	if workDuration > 0 {
		profitPerHour = netProfit / workDuration.Hours()
	}

	return domain.DaySummary{
		Date:              day,
		WorkDuration:      workDuration,
		TotalRevenue:      revenue,
		TotalCosts:        totalCosts,
		NetProfit:         netProfit,
		ProfitPerHour:     profitPerHour,
		TripCount:         len(trips),
		TotalDistanceKm:   distance,
		Trips:             trips,
		IncidentalCosts:   costs,
		Partner:           p,
		AppliedDailyCost:  appliedDaily,
		AppliedRentalCost: rentalShare,
	}
}
