package analytics

import (
	"sort"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

var categoryLabels = map[domain.CostCategory]string{
	domain.CategoryFuel:      "Fuel",
	domain.CategoryCarWash:   "Car wash",
	domain.CategoryService:   "Service",
	domain.CategoryInsurance: "Insurance",
	domain.CategoryOther:     "Other",
}

// CostsByCategory re-derives the spend-by-label breakdown across a set of
// day summaries: incidental costs grouped by category, plus one line per
// distinct fixed-cost, commission, daily recurring and weekly rental
// description. Labels come from the originating entities, so two partners
// with differently worded rental descriptions produce two lines. Entries
// that sum to zero or less are dropped. Output is sorted by amount
// descending (label as tie-break) for stable rendering.
func CostsByCategory(summaries []domain.DaySummary) []domain.CategoryAmount {
	totals := make(map[string]float64)

	for _, day := range summaries {
		for _, c := range day.IncidentalCosts {
			totals[categoryLabel(c.Category)] += c.Amount
		}
	}

	for _, day := range summaries {
		p := day.Partner
		if p == nil {
			continue
		}
		date := parseDayKey(day.Date)

		switch p.Car.Type {
		case domain.CarTypeRental:
			if fixed := ProratedFixedCost(*p, date); fixed > 0 && p.Car.Rental.RentalFee != nil {
				totals[p.Car.Rental.RentalFee.Description] += fixed
			}
		case domain.CarTypeOwned:
			if p.Car.Owned == nil {
				break
			}
			for _, policy := range p.Car.Owned.Policies {
				if rate, ok := policyDailyRate(policy, startOfDayUTC(date)); ok {
					totals[policy.Description] += rate
				}
			}
		}

		if p.Commission != nil {
			totals[p.Commission.Description] += day.TotalRevenue * p.Commission.Percentage / 100
		}
		if day.AppliedDailyCost != nil {
			totals[day.AppliedDailyCost.Description] += day.AppliedDailyCost.Amount
		}
		if day.AppliedRentalCost > 0 && p.Car.Type == domain.CarTypeRental &&
			p.Car.Rental != nil && p.Car.Rental.RentalFee != nil {
			totals[p.Car.Rental.RentalFee.Description] += day.AppliedRentalCost
		}
	}

	out := make([]domain.CategoryAmount, 0, len(totals))
	for label, amount := range totals {
		if amount <= 0 {
			continue
		}
		out = append(out, domain.CategoryAmount{Label: label, Amount: amount})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func categoryLabel(c domain.CostCategory) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
