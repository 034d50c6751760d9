package analytics

import (
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

// HourlyProfitability buckets trips by UTC weekday (Sunday first) and start
// hour, and returns commission-net profit per hour driven in each bucket.
// Cells without any driven hours are nil.
func HourlyProfitability(summaries []domain.DaySummary) [7][24]*float64 {
	var profit, hours [7][24]float64

	for _, day := range summaries {
		for _, trip := range day.Trips {
			durationHours := trip.Duration().Hours()
			if durationHours <= 0 {
				continue
			}

			net := trip.Fare
			if day.Partner != nil && day.Partner.Commission != nil {
				net -= trip.Fare * day.Partner.Commission.Percentage / 100
			}

			start := trip.StartTime.UTC()
			weekday := int(start.Weekday())
			hour := start.Hour()
			profit[weekday][hour] += net
			hours[weekday][hour] += durationHours
		}
	}

	var matrix [7][24]*float64
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			if hours[d][h] > 0 {
				rate := profit[d][h] / hours[d][h]
				matrix[d][h] = &rate
			}
		}
	}
	return matrix
}

// EarningsPerWeekday sums gross fares by UTC weekday, Sunday first.
func EarningsPerWeekday(trips []domain.Trip) [7]float64 {
	var earnings [7]float64
	for _, t := range trips {
		earnings[int(t.StartTime.UTC().Weekday())] += t.Fare
	}
	return earnings
}
