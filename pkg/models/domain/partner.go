package domain

import "time"

type CarType string

const (
	CarTypeOwned  CarType = "owned"
	CarTypeRental CarType = "rental"
)

type BillingFrequency string

const (
	FrequencyWeekly  BillingFrequency = "weekly"
	FrequencyMonthly BillingFrequency = "monthly"
)

type FuelPayer string

const (
	FuelPaidByPartner FuelPayer = "partner"
	FuelPaidByDriver  FuelPayer = "driver"
)

// RecurringFee is a flat rental fee billed weekly or monthly, active from
// StartDate onwards.
type RecurringFee struct {
	ID          string
	Description string
	Amount      float64
	Frequency   BillingFrequency
	StartDate   time.Time
}

// Commission is a percentage cut applied to gross fare revenue.
type Commission struct {
	ID          string
	Description string
	Percentage  float64
}

// InsurancePolicy contributes a prorated daily cost within its coverage
// window, inclusive of both endpoints.
type InsurancePolicy struct {
	ID          string
	Description string
	Amount      float64
	StartDate   time.Time
	EndDate     time.Time
}

type OwnedCarConfig struct {
	Model string
	// FuelConsumption is the average consumption in liters per 100 km.
	FuelConsumption float64
	FuelPrice       float64
	DeadheadPercent float64
	Policies        []InsurancePolicy
}

type RentalCarConfig struct {
	RentalFee *RecurringFee
	FuelBy    FuelPayer
	// FuelConsumption/FuelPrice apply only when the driver covers fuel.
	FuelConsumption float64
	FuelPrice       float64
}

// CarConfig is a tagged union: exactly one of Owned/Rental is set, matching
// Type. Callers switch on Type rather than probing pointers.
type CarConfig struct {
	Type   CarType
	Owned  *OwnedCarConfig
	Rental *RentalCarConfig
}

type DailyRecurringCost struct {
	ID          string
	Description string
	Amount      float64
}

type DailyRecurringTime struct {
	ID          string
	Description string
	Minutes     int
}

// Partner is a billing profile: commission, vehicle cost model and recurring
// daily add-ons that determine how a day's revenue is burdened.
type Partner struct {
	ID         string
	Name       string
	Custom     bool
	Commission *Commission
	Car        CarConfig
	DailyCost  *DailyRecurringCost
	DailyTime  *DailyRecurringTime
}
