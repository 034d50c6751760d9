package api

import "time"

type RecurringFee struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Frequency   string    `json:"frequency"`
	StartDate   time.Time `json:"start_date"`
}

type Commission struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

type InsurancePolicy struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type CarConfig struct {
	Type            string            `json:"type"`
	Model           string            `json:"model,omitempty"`
	FuelConsumption float64           `json:"fuel_consumption,omitempty"`
	FuelPrice       float64           `json:"fuel_price,omitempty"`
	DeadheadPercent float64           `json:"deadhead_percent,omitempty"`
	Policies        []InsurancePolicy `json:"policies,omitempty"`
	RentalFee       *RecurringFee     `json:"rental_fee,omitempty"`
	FuelBy          string            `json:"fuel_by,omitempty"`
}

type DailyRecurringCost struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type DailyRecurringTime struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Minutes     int    `json:"minutes"`
}

type Partner struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Custom     bool                `json:"custom"`
	Commission *Commission         `json:"commission,omitempty"`
	Car        CarConfig           `json:"car"`
	DailyCost  *DailyRecurringCost `json:"daily_cost,omitempty"`
	DailyTime  *DailyRecurringTime `json:"daily_time,omitempty"`
}
