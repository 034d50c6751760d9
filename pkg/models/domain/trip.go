package domain

import "time"

type Platform string

const (
	PlatformUber Platform = "Uber"
	PlatformBolt Platform = "Bolt"
)

type Coordinate struct {
	Lat float64
	Lng float64
}

// Trip is one completed ride. PartnerID is empty when the trip is billed
// under the default partner.
type Trip struct {
	ID            string
	Platform      Platform
	DistanceKm    float64
	Fare          float64
	StartTime     time.Time
	EndTime       time.Time
	PartnerID     string
	PickupAddress string
	PaymentMethod string
	Location      *Coordinate
}

func (t Trip) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}
