package analytics

import (
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

// ProratedFixedCost computes the portion of the partner's periodic fixed
// costs attributable to a single calendar day: monthly rental fees spread
// over a flat 30 days, and insurance premiums spread over their inclusive
// coverage window. Weekly rental fees are excluded here; they are allocated
// across active days only (see allocateWeeklyRental), so charging them per
// calendar day as well would double-bill the week.
func ProratedFixedCost(p domain.Partner, day time.Time) float64 {
	d := startOfDayUTC(day)
	var total float64

	switch p.Car.Type {
	case domain.CarTypeRental:
		if p.Car.Rental == nil {
			break
		}
		fee := p.Car.Rental.RentalFee
		if fee == nil || fee.Frequency != domain.FrequencyMonthly {
			break
		}
		if !d.Before(startOfDayUTC(fee.StartDate)) {
			// Flat 30-day divisor regardless of actual month length.
			total += fee.Amount / 30
		}

	case domain.CarTypeOwned:
		if p.Car.Owned == nil {
			break
		}
		for _, policy := range p.Car.Owned.Policies {
			if rate, ok := policyDailyRate(policy, d); ok {
				total += rate
			}
		}
	}

	return total
}

// policyDailyRate returns the policy's prorated daily amount when day falls
// within its inclusive [start, end] coverage window.
func policyDailyRate(policy domain.InsurancePolicy, day time.Time) (float64, bool) {
	start := startOfDayUTC(policy.StartDate)
	end := startOfDayUTC(policy.EndDate)
	if day.Before(start) || day.After(end) {
		return 0, false
	}
	days := inclusiveDays(start, end)
	if days <= 0 {
		return 0, false
	}
	return policy.Amount / float64(days), true
}
