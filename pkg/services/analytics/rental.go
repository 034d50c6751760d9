package analytics

import (
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

// allocateWeeklyRental splits each weekly rental fee evenly across the days
// its partner was actually driven within that ISO week (Monday start). Days
// without activity for the partner carry none of the week's fee, so a driver
// working 3 days of a 7-day rental week sees the fee concentrated on those
// 3 days. Shares are additive per day.
//
// Only the fee of the first trip's partner counts for a given day, and days
// whose trips carry no explicit partner reference are skipped: the default
// profile is resolved separately at aggregation time.
func allocateWeeklyRental(tripsByDay map[string][]domain.Trip, resolver PartnerResolver) map[string]float64 {
	type weekActivity map[string][]string // partner id -> distinct active day keys

	weeks := make(map[string]weekActivity)
	for day, trips := range tripsByDay {
		if len(trips) == 0 {
			continue
		}
		partnerID := trips[0].PartnerID
		if partnerID == "" {
			continue
		}

		week := DayKey(startOfISOWeek(parseDayKey(day)))
		if weeks[week] == nil {
			weeks[week] = make(weekActivity)
		}
		if !contains(weeks[week][partnerID], day) {
			weeks[week][partnerID] = append(weeks[week][partnerID], day)
		}
	}

	shares := make(map[string]float64)
	for week, activity := range weeks {
		weekStart := parseDayKey(week)
		for partnerID, activeDays := range activity {
			p := resolver.Resolve(partnerID)
			fee := weeklyRentalFee(p)
			if fee == nil || weekStart.Before(startOfDayUTC(fee.StartDate)) {
				continue
			}
			if len(activeDays) == 0 {
				continue
			}
			portion := fee.Amount / float64(len(activeDays))
			for _, day := range activeDays {
				shares[day] += portion
			}
		}
	}
	return shares
}

func weeklyRentalFee(p domain.Partner) *domain.RecurringFee {
	if p.Car.Type != domain.CarTypeRental || p.Car.Rental == nil {
		return nil
	}
	fee := p.Car.Rental.RentalFee
	if fee == nil || fee.Frequency != domain.FrequencyWeekly {
		return nil
	}
	return fee
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
