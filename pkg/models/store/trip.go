package store

import "time"

type TripRecord struct {
	ID            string
	Platform      string
	DistanceKm    float64
	Fare          float64
	StartTime     time.Time
	EndTime       time.Time
	PartnerID     string
	PickupAddress string
	PaymentMethod string
	Lat           *float64
	Lng           *float64
}

type CostRecord struct {
	ID          string
	Amount      float64
	Date        time.Time
	Category    string
	Description string
}
