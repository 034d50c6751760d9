package analytics

import (
	"testing"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryByDate(t *testing.T, summaries []domain.DaySummary, day string) domain.DaySummary {
	t.Helper()
	for _, s := range summaries {
		if s.Date == day {
			return s
		}
	}
	t.Fatalf("no summary for %s", day)
	return domain.DaySummary{}
}

func TestWeeklyRental_SplitAcrossActiveDaysOnly(t *testing.T) {
	rental := weeklyRentalPartner(600)
	resolver := resolverFor(ownCarPartner(), rental)

	// Monday 2024-05-06, Wednesday 2024-05-08, Friday 2024-05-10: three
	// active days in one ISO week.
	var trips []domain.Trip
	for _, d := range []time.Time{
		date(2024, time.May, 6),
		date(2024, time.May, 8),
		date(2024, time.May, 10),
	} {
		trips = append(trips, trip(rental.ID, d.Add(9*time.Hour), time.Hour, 100, 20))
	}

	summaries := BuildDaySummaries(trips, nil, resolver, DefaultConfig())
	require.Len(t, summaries, 3)

	for _, day := range []string{"2024-05-06", "2024-05-08", "2024-05-10"} {
		s := summaryByDate(t, summaries, day)
		assert.InDelta(t, 200, s.AppliedRentalCost, 1e-9, "each active day carries exactly a third")
		assert.InDelta(t, 200, s.TotalCosts, 1e-9)
	}
}

func TestWeeklyRental_InactiveDaysGetNoShare(t *testing.T) {
	rental := weeklyRentalPartner(600)
	resolver := resolverFor(ownCarPartner(), rental)

	trips := []domain.Trip{
		trip(rental.ID, date(2024, time.May, 6).Add(9*time.Hour), time.Hour, 100, 20),
	}
	// Expense-only day in the same week: no trips, no rental share.
	costs := []domain.Cost{
		{ID: "c1", Amount: 40, Date: date(2024, time.May, 7), Category: domain.CategoryCarWash},
	}

	summaries := BuildDaySummaries(trips, costs, resolver, DefaultConfig())
	require.Len(t, summaries, 2)

	assert.InDelta(t, 600, summaryByDate(t, summaries, "2024-05-06").AppliedRentalCost, 1e-9)
	assert.Zero(t, summaryByDate(t, summaries, "2024-05-07").AppliedRentalCost)
}

func TestWeeklyRental_SeparateWeeksAllocateSeparately(t *testing.T) {
	rental := weeklyRentalPartner(600)
	resolver := resolverFor(ownCarPartner(), rental)

	trips := []domain.Trip{
		// Week of Monday 2024-05-06: two active days -> 300 each.
		trip(rental.ID, date(2024, time.May, 6).Add(9*time.Hour), time.Hour, 100, 20),
		trip(rental.ID, date(2024, time.May, 7).Add(9*time.Hour), time.Hour, 100, 20),
		// Week of Monday 2024-05-13: one active day -> full 600.
		trip(rental.ID, date(2024, time.May, 13).Add(9*time.Hour), time.Hour, 100, 20),
	}

	summaries := BuildDaySummaries(trips, nil, resolver, DefaultConfig())

	assert.InDelta(t, 300, summaryByDate(t, summaries, "2024-05-06").AppliedRentalCost, 1e-9)
	assert.InDelta(t, 300, summaryByDate(t, summaries, "2024-05-07").AppliedRentalCost, 1e-9)
	assert.InDelta(t, 600, summaryByDate(t, summaries, "2024-05-13").AppliedRentalCost, 1e-9)
}

func TestWeeklyRental_SundayBelongsToPrecedingMondayWeek(t *testing.T) {
	rental := weeklyRentalPartner(600)
	resolver := resolverFor(ownCarPartner(), rental)

	trips := []domain.Trip{
		// Sunday 2024-05-12 closes the week started Monday 2024-05-06.
		trip(rental.ID, date(2024, time.May, 6).Add(9*time.Hour), time.Hour, 100, 20),
		trip(rental.ID, date(2024, time.May, 12).Add(9*time.Hour), time.Hour, 100, 20),
	}

	summaries := BuildDaySummaries(trips, nil, resolver, DefaultConfig())

	assert.InDelta(t, 300, summaryByDate(t, summaries, "2024-05-06").AppliedRentalCost, 1e-9)
	assert.InDelta(t, 300, summaryByDate(t, summaries, "2024-05-12").AppliedRentalCost, 1e-9)
}

func TestWeeklyRental_FeeStartingAfterWeekIsSkipped(t *testing.T) {
	rental := weeklyRentalPartner(600)
	rental.Car.Rental.RentalFee.StartDate = date(2024, time.June, 1)
	resolver := resolverFor(ownCarPartner(), rental)

	trips := []domain.Trip{
		trip(rental.ID, date(2024, time.May, 6).Add(9*time.Hour), time.Hour, 100, 20),
	}

	summaries := BuildDaySummaries(trips, nil, resolver, DefaultConfig())

	assert.Zero(t, summaryByDate(t, summaries, "2024-05-06").AppliedRentalCost)
}

func TestWeeklyRental_MonthlyFeeNotAllocatedWeekly(t *testing.T) {
	p := domain.Partner{
		ID: "monthly_rental",
		Car: domain.CarConfig{
			Type: domain.CarTypeRental,
			Rental: &domain.RentalCarConfig{
				RentalFee: &domain.RecurringFee{
					Amount:    3000,
					Frequency: domain.FrequencyMonthly,
					StartDate: date(2020, time.January, 1),
				},
				FuelBy: domain.FuelPaidByPartner,
			},
		},
	}
	resolver := resolverFor(ownCarPartner(), p)

	trips := []domain.Trip{
		trip(p.ID, date(2024, time.May, 6).Add(9*time.Hour), time.Hour, 100, 20),
	}

	summaries := BuildDaySummaries(trips, nil, resolver, DefaultConfig())

	s := summaryByDate(t, summaries, "2024-05-06")
	assert.Zero(t, s.AppliedRentalCost)
	assert.InDelta(t, 100, s.TotalCosts, 1e-9, "monthly fee prorated at 3000/30 per day instead")
}
