package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/drive-tools/fare-atlas/pkg/models/api"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

func MapPartnerDomainToApi(p domain.Partner) api.Partner {
	out := api.Partner{
		ID:     p.ID,
		Name:   p.Name,
		Custom: p.Custom,
		Car:    api.CarConfig{Type: string(p.Car.Type)},
	}

	if p.Commission != nil {
		out.Commission = &api.Commission{
			ID:          p.Commission.ID,
			Description: p.Commission.Description,
			Percentage:  p.Commission.Percentage,
		}
	}

	switch p.Car.Type {
	case domain.CarTypeOwned:
		if p.Car.Owned != nil {
			out.Car.Model = p.Car.Owned.Model
			out.Car.FuelConsumption = p.Car.Owned.FuelConsumption
			out.Car.FuelPrice = p.Car.Owned.FuelPrice
			out.Car.DeadheadPercent = p.Car.Owned.DeadheadPercent
			for _, policy := range p.Car.Owned.Policies {
				out.Car.Policies = append(out.Car.Policies, api.InsurancePolicy{
					ID:          policy.ID,
					Description: policy.Description,
					Amount:      policy.Amount,
					StartDate:   policy.StartDate,
					EndDate:     policy.EndDate,
				})
			}
		}
	case domain.CarTypeRental:
		if p.Car.Rental != nil {
			out.Car.FuelBy = string(p.Car.Rental.FuelBy)
			out.Car.FuelConsumption = p.Car.Rental.FuelConsumption
			out.Car.FuelPrice = p.Car.Rental.FuelPrice
			if fee := p.Car.Rental.RentalFee; fee != nil {
				out.Car.RentalFee = &api.RecurringFee{
					ID:          fee.ID,
					Description: fee.Description,
					Amount:      fee.Amount,
					Frequency:   string(fee.Frequency),
					StartDate:   fee.StartDate,
				}
			}
		}
	}

	if p.DailyCost != nil {
		out.DailyCost = &api.DailyRecurringCost{
			ID:          p.DailyCost.ID,
			Description: p.DailyCost.Description,
			Amount:      p.DailyCost.Amount,
		}
	}
	if p.DailyTime != nil {
		out.DailyTime = &api.DailyRecurringTime{
			ID:          p.DailyTime.ID,
			Description: p.DailyTime.Description,
			Minutes:     p.DailyTime.Minutes,
		}
	}
	return out
}

func MapPartnerApiToDomain(p api.Partner) domain.Partner {
	out := domain.Partner{
		ID:     p.ID,
		Name:   p.Name,
		Custom: p.Custom,
		Car:    domain.CarConfig{Type: domain.CarType(p.Car.Type)},
	}

	if p.Commission != nil {
		out.Commission = &domain.Commission{
			ID:          p.Commission.ID,
			Description: p.Commission.Description,
			Percentage:  p.Commission.Percentage,
		}
	}

	switch out.Car.Type {
	case domain.CarTypeOwned:
		owned := &domain.OwnedCarConfig{
			Model:           p.Car.Model,
			FuelConsumption: p.Car.FuelConsumption,
			FuelPrice:       p.Car.FuelPrice,
			DeadheadPercent: p.Car.DeadheadPercent,
		}
		for _, policy := range p.Car.Policies {
			owned.Policies = append(owned.Policies, domain.InsurancePolicy{
				ID:          policy.ID,
				Description: policy.Description,
				Amount:      policy.Amount,
				StartDate:   policy.StartDate,
				EndDate:     policy.EndDate,
			})
		}
		out.Car.Owned = owned
	case domain.CarTypeRental:
		rental := &domain.RentalCarConfig{
			FuelBy:          domain.FuelPayer(p.Car.FuelBy),
			FuelConsumption: p.Car.FuelConsumption,
			FuelPrice:       p.Car.FuelPrice,
		}
		if fee := p.Car.RentalFee; fee != nil {
			rental.RentalFee = &domain.RecurringFee{
				ID:          fee.ID,
				Description: fee.Description,
				Amount:      fee.Amount,
				Frequency:   domain.BillingFrequency(fee.Frequency),
				StartDate:   fee.StartDate,
			}
		}
		out.Car.Rental = rental
	}

	if p.DailyCost != nil {
		out.DailyCost = &domain.DailyRecurringCost{
			ID:          p.DailyCost.ID,
			Description: p.DailyCost.Description,
			Amount:      p.DailyCost.Amount,
		}
	}
	if p.DailyTime != nil {
		out.DailyTime = &domain.DailyRecurringTime{
			ID:          p.DailyTime.ID,
			Description: p.DailyTime.Description,
			Minutes:     p.DailyTime.Minutes,
		}
	}
	return out
}

// EncodeCustomPartners serializes user-defined partner profiles for the
// settings store blob.
func EncodeCustomPartners(partners []domain.Partner) ([]byte, error) {
	out := make([]api.Partner, 0, len(partners))
	for _, p := range partners {
		out = append(out, MapPartnerDomainToApi(p))
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode custom partners: %w", err)
	}
	return data, nil
}

// DecodeCustomPartners deserializes the settings store blob; an empty blob
// yields no partners.
func DecodeCustomPartners(data []byte) ([]domain.Partner, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []api.Partner
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode custom partners: %w", err)
	}
	out := make([]domain.Partner, 0, len(records))
	for _, record := range records {
		out = append(out, MapPartnerApiToDomain(record))
	}
	return out, nil
}
