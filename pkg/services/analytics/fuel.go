package analytics

import (
	"fmt"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

// fuelTariff resolves the consumption/price pair used for fuel estimation.
// An owned car always uses its own figures; a rental only when the driver
// covers fuel. Both figures must be positive, otherwise no estimate is made.
func fuelTariff(p domain.Partner) (consumption, price float64, ok bool) {
	switch p.Car.Type {
	case domain.CarTypeOwned:
		if p.Car.Owned == nil {
			return 0, 0, false
		}
		consumption, price = p.Car.Owned.FuelConsumption, p.Car.Owned.FuelPrice
	case domain.CarTypeRental:
		if p.Car.Rental == nil || p.Car.Rental.FuelBy != domain.FuelPaidByDriver {
			return 0, 0, false
		}
		consumption, price = p.Car.Rental.FuelConsumption, p.Car.Rental.FuelPrice
	default:
		return 0, 0, false
	}

	if consumption <= 0 || price <= 0 {
		return 0, 0, false
	}
	return consumption, price, true
}

// estimateFuelCost synthesizes a fuel cost entry for a working day with no
// manually recorded fuel expense. The returned cost participates in the
// day's totals and breakdowns but is never persisted.
func estimateFuelCost(day string, p domain.Partner, cfg Config) (domain.Cost, bool) {
	consumption, price, ok := fuelTariff(p)
	if !ok {
		return domain.Cost{}, false
	}

	liters := cfg.AssumedDailyKm / 100 * consumption
	return domain.Cost{
		ID:          "estimated_fuel_" + day,
		Amount:      liters * price,
		Date:        parseDayKey(day),
		Category:    domain.CategoryFuel,
		Description: fmt.Sprintf("Estimated fuel (assumed %.0f km)", cfg.AssumedDailyKm),
		Estimated:   true,
	}, true
}

func hasFuelCost(costs []domain.Cost) bool {
	for _, c := range costs {
		if c.Category == domain.CategoryFuel {
			return true
		}
	}
	return false
}
