package analytics

import (
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

type stubResolver struct {
	partners map[string]domain.Partner
	fallback domain.Partner
}

func (s stubResolver) Resolve(id string) domain.Partner {
	if id == "" {
		return s.fallback
	}
	if p, ok := s.partners[id]; ok {
		return p
	}
	return s.fallback
}

func resolverFor(fallback domain.Partner, partners ...domain.Partner) stubResolver {
	byID := make(map[string]domain.Partner, len(partners)+1)
	byID[fallback.ID] = fallback
	for _, p := range partners {
		byID[p.ID] = p
	}
	return stubResolver{partners: byID, fallback: fallback}
}

func trip(partnerID string, start time.Time, duration time.Duration, fare, distanceKm float64) domain.Trip {
	return domain.Trip{
		ID:         "trip_" + start.Format(time.RFC3339),
		Platform:   domain.PlatformUber,
		DistanceKm: distanceKm,
		Fare:       fare,
		StartTime:  start,
		EndTime:    start.Add(duration),
		PartnerID:  partnerID,
	}
}

func ownCarPartner() domain.Partner {
	return domain.Partner{
		ID:   "own_car_default",
		Name: "Own car",
		Car: domain.CarConfig{
			Type: domain.CarTypeOwned,
			Owned: &domain.OwnedCarConfig{
				FuelConsumption: 5.5,
				FuelPrice:       6.85,
			},
		},
	}
}

func weeklyRentalPartner(amount float64) domain.Partner {
	return domain.Partner{
		ID:   "partner_b_rental",
		Name: "Partner B",
		Car: domain.CarConfig{
			Type: domain.CarTypeRental,
			Rental: &domain.RentalCarConfig{
				RentalFee: &domain.RecurringFee{
					ID:          "partner_b_rental_fee",
					Description: "Weekly car rental",
					Amount:      amount,
					Frequency:   domain.FrequencyWeekly,
					StartDate:   date(2020, time.January, 1),
				},
				FuelBy: domain.FuelPaidByPartner,
			},
		},
	}
}
