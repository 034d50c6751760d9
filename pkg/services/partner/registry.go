package partner

import (
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

// DefaultPartnerID identifies the built-in "own car" profile every
// unresolvable or unset partner reference falls back to.
const DefaultPartnerID = "own_car_default"

// Registry resolves partner ids to billing profiles. The view it exposes is
// the built-in seed merged with user-defined custom partners: a custom entry
// reusing a built-in id replaces it, all other customs are appended.
type Registry interface {
	// Resolve returns the partner for id, or the default partner when id is
	// empty or unknown. It never fails.
	Resolve(id string) domain.Partner
	All() []domain.Partner
}

type registry struct {
	partners []domain.Partner
	byID     map[string]domain.Partner
}

func NewRegistry(custom []domain.Partner) Registry {
	byID := make(map[string]domain.Partner, len(predefined)+len(custom))
	order := make([]string, 0, len(predefined)+len(custom))

	for _, p := range predefined {
		byID[p.ID] = p
		order = append(order, p.ID)
	}
	// Custom wins on id collision, including overrides of the built-in
	// default profile.
	for _, p := range custom {
		if _, exists := byID[p.ID]; !exists {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}

	merged := make([]domain.Partner, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	return &registry{partners: merged, byID: byID}
}

func (r *registry) Resolve(id string) domain.Partner {
	if id == "" {
		return r.byID[DefaultPartnerID]
	}
	if p, ok := r.byID[id]; ok {
		return p
	}
	return r.byID[DefaultPartnerID]
}

func (r *registry) All() []domain.Partner {
	out := make([]domain.Partner, len(r.partners))
	copy(out, r.partners)
	return out
}

var farBack = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

var predefined = []domain.Partner{
	{
		ID:   DefaultPartnerID,
		Name: "Own car",
		Car: domain.CarConfig{
			Type: domain.CarTypeOwned,
			Owned: &domain.OwnedCarConfig{
				Model:           "Toyota Prius",
				FuelConsumption: 5.5,
				FuelPrice:       6.85,
				DeadheadPercent: 15,
			},
		},
	},
	{
		ID:   "partner_a_commission",
		Name: "Partner A (50% commission)",
		Commission: &domain.Commission{
			ID:          "partner_a_commission_id",
			Description: "50% commission",
			Percentage:  50,
		},
		Car: domain.CarConfig{
			Type: domain.CarTypeRental,
			Rental: &domain.RentalCarConfig{
				RentalFee: &domain.RecurringFee{
					ID:          "partner_a_rental_id",
					Description: "Car rental (included in commission)",
					Amount:      0,
					Frequency:   domain.FrequencyWeekly,
					StartDate:   farBack,
				},
				FuelBy: domain.FuelPaidByPartner,
			},
		},
	},
	{
		ID:   "partner_b_rental",
		Name: "Partner B (car rental)",
		Car: domain.CarConfig{
			Type: domain.CarTypeRental,
			Rental: &domain.RentalCarConfig{
				RentalFee: &domain.RecurringFee{
					ID:          "partner_b_rental_id",
					Description: "Weekly car rental",
					Amount:      600,
					Frequency:   domain.FrequencyWeekly,
					StartDate:   farBack,
				},
				FuelBy:          domain.FuelPaidByDriver,
				FuelConsumption: 8.0,
				FuelPrice:       6.85,
			},
		},
	},
}
