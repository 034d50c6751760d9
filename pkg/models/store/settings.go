package store

import "time"

// Settings is the persisted single-user configuration blob. CustomPartners
// holds the user-defined partner profiles serialized as JSON.
type Settings struct {
	SelectedPartnerID string
	CustomPartners    []byte
	UpdatedAt         time.Time
}

type ImportKind string

const (
	ImportKindTrips ImportKind = "trips"
	ImportKindCost  ImportKind = "cost"
)

// ImportRecord tracks one import batch (a CSV trip file or a single cost
// entry) together with the ids it produced, so deletions can cascade.
type ImportRecord struct {
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
