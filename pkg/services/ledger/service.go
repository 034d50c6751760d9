package ledger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/drive-tools/fare-atlas/pkg/adapters"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/models/store"
	"github.com/drive-tools/fare-atlas/pkg/services/analytics"
	"github.com/drive-tools/fare-atlas/pkg/services/export"
	"github.com/drive-tools/fare-atlas/pkg/services/importer"
	"github.com/drive-tools/fare-atlas/pkg/services/partner"
	costdb "github.com/drive-tools/fare-atlas/pkg/store/duckdb/cost"
	historydb "github.com/drive-tools/fare-atlas/pkg/store/duckdb/history"
	settingsdb "github.com/drive-tools/fare-atlas/pkg/store/duckdb/settings"
	tripdb "github.com/drive-tools/fare-atlas/pkg/store/duckdb/trip"
)

// ImportOutcome reports what a trip file import produced.
type ImportOutcome struct {
	Platform  domain.Platform
	TripCount int
	Skipped   int
}

// Service is the application core: it owns the stores, the partner
// registry snapshot and the analytics engine, and exposes every operation
// the HTTP API and the terminal runtime need.
type Service interface {
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	AddTrip(ctx context.Context, t domain.Trip) (domain.Trip, error)
	DeleteTrip(ctx context.Context, id string) error
	ImportTrips(ctx context.Context, fileName string, r io.Reader) (*ImportOutcome, error)

	ListCosts(ctx context.Context) ([]domain.Cost, error)
	AddCost(ctx context.Context, c domain.Cost) (domain.Cost, error)
	DeleteCost(ctx context.Context, id string) error

	ListImports(ctx context.Context) ([]domain.ImportEntry, error)
	DeleteImport(ctx context.Context, id string) error

	Partners(ctx context.Context) ([]domain.Partner, error)
	SelectedPartner(ctx context.Context) (domain.Partner, error)
	SelectPartner(ctx context.Context, id string) error
	SaveCustomPartner(ctx context.Context, p domain.Partner) error
	DeleteCustomPartner(ctx context.Context, id string) error

	DaySummaries(ctx context.Context) ([]domain.DaySummary, error)
	Stats(ctx context.Context, now time.Time) (domain.PeriodStats, error)
	CostBreakdown(ctx context.Context) ([]domain.CategoryAmount, error)
	ProfitabilityHeatmap(ctx context.Context) ([7][24]*float64, error)
	WeekdayEarnings(ctx context.Context) ([7]float64, error)

	ExportTripsCSV(ctx context.Context) ([]byte, error)
	ExportCostsCSV(ctx context.Context) ([]byte, error)
	EarningsReport(ctx context.Context, now time.Time) ([]byte, string, error)
}

type Dependencies struct {
	Trips    tripdb.Store
	Costs    costdb.Store
	Settings settingsdb.Store
	History  historydb.Store
	Engine   analytics.Config
}

type defaultService struct {
	trips    tripdb.Store
	costs    costdb.Store
	settings settingsdb.Store
	history  historydb.Store
	engine   analytics.Config
}

func NewService(deps Dependencies) Service {
	return &defaultService{
		trips:    deps.Trips,
		costs:    deps.Costs,
		settings: deps.Settings,
		history:  deps.History,
		engine:   deps.Engine,
	}
}

func (s *defaultService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	records, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	trips := make([]domain.Trip, 0, len(records))
	for _, r := range records {
		trips = append(trips, adapters.MapStoreTripToDomain(r))
	}
	return trips, nil
}

func (s *defaultService) AddTrip(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.PartnerID == "" {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("load settings: %w", err)
		}
		t.PartnerID = settings.SelectedPartnerID
	}
	if err := s.trips.Add(ctx, []store.TripRecord{adapters.MapDomainTripToStore(t)}); err != nil {
		return domain.Trip{}, fmt.Errorf("add trip: %w", err)
	}
	return t, nil
}

func (s *defaultService) DeleteTrip(ctx context.Context, id string) error {
	return s.trips.Delete(ctx, id)
}

func (s *defaultService) ImportTrips(ctx context.Context, fileName string, r io.Reader) (*ImportOutcome, error) {
	logger := zerolog.Ctx(ctx)

	result, err := importer.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileName, err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	records := make([]store.TripRecord, 0, len(result.Trips))
	ids := make([]string, 0, len(result.Trips))
	for _, t := range result.Trips {
		t.ID = uuid.NewString()
		t.PartnerID = settings.SelectedPartnerID
		records = append(records, adapters.MapDomainTripToStore(t))
		ids = append(ids, t.ID)
	}

	if err := s.trips.Add(ctx, records); err != nil {
		return nil, fmt.Errorf("store imported trips: %w", err)
	}

	entry := store.ImportRecord{
		ID:         uuid.NewString(),
		Date:       time.Now().UTC(),
		Kind:       store.ImportKindTrips,
		FileName:   fileName,
		Platform:   string(result.Platform),
		TripCount:  len(records),
		RelatedIDs: ids,
	}
	if err := s.history.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("record import: %w", err)
	}

	logger.Info().
		Str("file", fileName).
		Str("platform", string(result.Platform)).
		Int("trips", len(records)).
		Int("skipped", result.Skipped).
		Msg("trip file imported")

	return &ImportOutcome{
		Platform:  result.Platform,
		TripCount: len(records),
		Skipped:   result.Skipped,
	}, nil
}

func (s *defaultService) ListCosts(ctx context.Context) ([]domain.Cost, error) {
	records, err := s.costs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list costs: %w", err)
	}
	costs := make([]domain.Cost, 0, len(records))
	for _, r := range records {
		costs = append(costs, adapters.MapStoreCostToDomain(r))
	}
	return costs, nil
}

func (s *defaultService) AddCost(ctx context.Context, c domain.Cost) (domain.Cost, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.costs.Add(ctx, []store.CostRecord{adapters.MapDomainCostToStore(c)}); err != nil {
		return domain.Cost{}, fmt.Errorf("add cost: %w", err)
	}

	entry := store.ImportRecord{
		ID:          uuid.NewString(),
		Date:        time.Now().UTC(),
		Kind:        store.ImportKindCost,
		Amount:      c.Amount,
		Description: c.Description,
		RelatedIDs:  []string{c.ID},
	}
	if err := s.history.Add(ctx, entry); err != nil {
		return domain.Cost{}, fmt.Errorf("record cost entry: %w", err)
	}
	return c, nil
}

func (s *defaultService) DeleteCost(ctx context.Context, id string) error {
	if err := s.costs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	return s.history.DeleteByRelatedID(ctx, id)
}

func (s *defaultService) ListImports(ctx context.Context) ([]domain.ImportEntry, error) {
	records, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	entries := make([]domain.ImportEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, adapters.MapStoreImportToDomain(r))
	}
	return entries, nil
}

// DeleteImport removes the history entry together with the trips or the
// cost it brought in.
func (s *defaultService) DeleteImport(ctx context.Context, id string) error {
	records, err := s.history.List(ctx)
	if err != nil {
		return fmt.Errorf("list imports: %w", err)
	}

	var entry *store.ImportRecord
	for i := range records {
		if records[i].ID == id {
			entry = &records[i]
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("import not found: %s", id)
	}

	switch entry.Kind {
	case store.ImportKindTrips:
		if err := s.trips.DeleteMany(ctx, entry.RelatedIDs); err != nil {
			return fmt.Errorf("delete imported trips: %w", err)
		}
	case store.ImportKindCost:
		for _, costID := range entry.RelatedIDs {
			if err := s.costs.Delete(ctx, costID); err != nil {
				return fmt.Errorf("delete imported cost: %w", err)
			}
		}
	}

	return s.history.Delete(ctx, id)
}

func (s *defaultService) Partners(ctx context.Context) ([]domain.Partner, error) {
	registry, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	return registry.All(), nil
}

func (s *defaultService) SelectedPartner(ctx context.Context) (domain.Partner, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Partner{}, fmt.Errorf("load settings: %w", err)
	}
	registry, err := s.registry(ctx)
	if err != nil {
		return domain.Partner{}, err
	}
	return registry.Resolve(settings.SelectedPartnerID), nil
}

func (s *defaultService) SelectPartner(ctx context.Context, id string) error {
	registry, err := s.registry(ctx)
	if err != nil {
		return err
	}
	if registry.Resolve(id).ID != id {
		return fmt.Errorf("unknown partner: %s", id)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	settings.SelectedPartnerID = id
	return s.settings.Save(ctx, *settings)
}

func (s *defaultService) SaveCustomPartner(ctx context.Context, p domain.Partner) error {
	if p.ID == "" {
		return fmt.Errorf("partner id is required")
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	customs, err := adapters.DecodeCustomPartners(settings.CustomPartners)
	if err != nil {
		return fmt.Errorf("decode custom partners: %w", err)
	}

	replaced := false
	for i := range customs {
		if customs[i].ID == p.ID {
			customs[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		customs = append(customs, p)
	}

	encoded, err := adapters.EncodeCustomPartners(customs)
	if err != nil {
		return fmt.Errorf("encode custom partners: %w", err)
	}
	settings.CustomPartners = encoded
	return s.settings.Save(ctx, *settings)
}

func (s *defaultService) DeleteCustomPartner(ctx context.Context, id string) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	customs, err := adapters.DecodeCustomPartners(settings.CustomPartners)
	if err != nil {
		return fmt.Errorf("decode custom partners: %w", err)
	}

	kept := customs[:0]
	for _, p := range customs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(customs) {
		return fmt.Errorf("custom partner not found: %s", id)
	}

	encoded, err := adapters.EncodeCustomPartners(kept)
	if err != nil {
		return fmt.Errorf("encode custom partners: %w", err)
	}
	settings.CustomPartners = encoded
	if settings.SelectedPartnerID == id {
		settings.SelectedPartnerID = partner.DefaultPartnerID
	}
	return s.settings.Save(ctx, *settings)
}

func (s *defaultService) DaySummaries(ctx context.Context) ([]domain.DaySummary, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	costs, err := s.ListCosts(ctx)
	if err != nil {
		return nil, err
	}
	registry, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.BuildDaySummaries(trips, costs, registry, s.engine), nil
}

func (s *defaultService) Stats(ctx context.Context, now time.Time) (domain.PeriodStats, error) {
	summaries, err := s.DaySummaries(ctx)
	if err != nil {
		return domain.PeriodStats{}, err
	}
	return analytics.AggregatePeriod(summaries, now), nil
}

func (s *defaultService) CostBreakdown(ctx context.Context) ([]domain.CategoryAmount, error) {
	summaries, err := s.DaySummaries(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CostsByCategory(summaries), nil
}

func (s *defaultService) ProfitabilityHeatmap(ctx context.Context) ([7][24]*float64, error) {
	summaries, err := s.DaySummaries(ctx)
	if err != nil {
		return [7][24]*float64{}, err
	}
	return analytics.HourlyProfitability(summaries), nil
}

func (s *defaultService) WeekdayEarnings(ctx context.Context) ([7]float64, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return [7]float64{}, err
	}
	return analytics.EarningsPerWeekday(trips), nil
}

func (s *defaultService) ExportTripsCSV(ctx context.Context) ([]byte, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	return export.TripsCSV(trips)
}

func (s *defaultService) ExportCostsCSV(ctx context.Context) ([]byte, error) {
	costs, err := s.ListCosts(ctx)
	if err != nil {
		return nil, err
	}
	return export.CostsCSV(costs)
}

func (s *defaultService) EarningsReport(ctx context.Context, now time.Time) ([]byte, string, error) {
	summaries, err := s.DaySummaries(ctx)
	if err != nil {
		return nil, "", err
	}
	stats := analytics.AggregatePeriod(summaries, now)
	return export.EarningsReportPDF(stats, summaries, now)
}

func (s *defaultService) registry(ctx context.Context) (partner.Registry, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	customs, err := adapters.DecodeCustomPartners(settings.CustomPartners)
	if err != nil {
		return nil, fmt.Errorf("decode custom partners: %w", err)
	}
	return partner.NewRegistry(customs), nil
}
