package api

import "time"

type Trip struct {
	ID            string     `json:"id"`
	Platform      string     `json:"platform"`
	DistanceKm    float64    `json:"distance_km"`
	Fare          float64    `json:"fare"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	PartnerID     string     `json:"partner_id,omitempty"`
	PickupAddress string     `json:"pickup_address,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Lat           *float64   `json:"lat,omitempty"`
	Lng           *float64   `json:"lng,omitempty"`
}

type Cost struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Estimated   bool      `json:"estimated,omitempty"`
}
