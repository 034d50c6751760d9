package domain

import "time"

type CostCategory string

const (
	CategoryFuel      CostCategory = "fuel"
	CategoryCarWash   CostCategory = "car_wash"
	CategoryService   CostCategory = "service"
	CategoryInsurance CostCategory = "insurance"
	CategoryOther     CostCategory = "other"
)

// Cost is a one-off incidental expense attributed to a single calendar day.
// Estimated marks costs synthesized by the analytics engine (fuel estimates);
// those exist only inside a derived DaySummary and are never persisted.
type Cost struct {
	ID          string
	Amount      float64
	Date        time.Time
	Category    CostCategory
	Description string
	Estimated   bool
}
