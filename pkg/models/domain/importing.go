package domain

import "time"

type ImportKind string

const (
	ImportKindTrips ImportKind = "trips"
	ImportKindCost  ImportKind = "cost"
)

// ImportEntry is one recorded import batch. Deleting it removes the trips
// or the cost it produced.
type ImportEntry struct {
	ID          string
	Date        time.Time
	Kind        ImportKind
	FileName    string
	Platform    string
	TripCount   int
	Amount      float64
	Description string
	RelatedIDs  []string
}
