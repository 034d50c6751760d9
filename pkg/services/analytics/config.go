package analytics

import "github.com/drive-tools/fare-atlas/pkg/models/domain"

// DefaultAssumedDailyKm is the distance assumed when synthesizing a fuel
// cost for a working day. Actual trip distances are deliberately not used:
// platform reports often omit distance entirely (Bolt), so a flat daily
// mileage gives a more stable estimate.
const DefaultAssumedDailyKm = 300

// Config carries the engine's tunable assumptions.
type Config struct {
	AssumedDailyKm float64
}

func DefaultConfig() Config {
	return Config{AssumedDailyKm: DefaultAssumedDailyKm}
}

// PartnerResolver maps a partner id (possibly empty) to a billing profile.
// Resolution must always succeed, falling back to a default profile.
type PartnerResolver interface {
	Resolve(id string) domain.Partner
}
