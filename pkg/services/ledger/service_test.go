package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/drive-tools/fare-atlas/pkg/adapters"
	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/models/store"
	"github.com/drive-tools/fare-atlas/pkg/services/analytics"
	"github.com/drive-tools/fare-atlas/pkg/services/partner"
)

type mockTripStore struct {
	mock.Mock
}

func (m *mockTripStore) Add(ctx context.Context, records []store.TripRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *mockTripStore) List(ctx context.Context) ([]store.TripRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.TripRecord), args.Error(1)
}

func (m *mockTripStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTripStore) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *mockTripStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockCostStore struct {
	mock.Mock
}

func (m *mockCostStore) Add(ctx context.Context, records []store.CostRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *mockCostStore) List(ctx context.Context) ([]store.CostRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.CostRecord), args.Error(1)
}

func (m *mockCostStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCostStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) Get(ctx context.Context) (*store.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Settings), args.Error(1)
}

func (m *mockSettingsStore) Save(ctx context.Context, settings store.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type mockHistoryStore struct {
	mock.Mock
}

func (m *mockHistoryStore) Add(ctx context.Context, record store.ImportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockHistoryStore) List(ctx context.Context) ([]store.ImportRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.ImportRecord), args.Error(1)
}

func (m *mockHistoryStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockHistoryStore) DeleteByRelatedID(ctx context.Context, relatedID string) error {
	args := m.Called(ctx, relatedID)
	return args.Error(0)
}

type fixture struct {
	trips    *mockTripStore
	costs    *mockCostStore
	settings *mockSettingsStore
	history  *mockHistoryStore
	service  Service
}

func newFixture() *fixture {
	f := &fixture{
		trips:    new(mockTripStore),
		costs:    new(mockCostStore),
		settings: new(mockSettingsStore),
		history:  new(mockHistoryStore),
	}
	f.service = NewService(Dependencies{
		Trips:    f.trips,
		Costs:    f.costs,
		Settings: f.settings,
		History:  f.history,
		Engine:   analytics.DefaultConfig(),
	})
	return f
}

const boltReport = "Data przejazdu,Suma,Data,Adres odbioru,Metoda płatności,Numer faktury\n" +
	"10.03.2025 09:15,\"45,50\",10.03.2025 09:40,Marszałkowska 1,Karta,FV/2025/03/101\n" +
	"10.03.2025 11:00,\"30,00\",10.03.2025 11:20,Puławska 12,Gotówka,FV/2025/03/102\n"

func TestImportTripsAssignsSelectedPartner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.settings.On("Get", ctx).Return(&store.Settings{SelectedPartnerID: "partner_b_rental"}, nil)

	var stored []store.TripRecord
	f.trips.On("Add", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).([]store.TripRecord)
	}).Return(nil)

	var recorded store.ImportRecord
	f.history.On("Add", ctx, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(store.ImportRecord)
	}).Return(nil)

	outcome, err := f.service.ImportTrips(ctx, "bolt-march.csv", strings.NewReader(boltReport))
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformBolt, outcome.Platform)
	assert.Equal(t, 2, outcome.TripCount)
	assert.Equal(t, 0, outcome.Skipped)

	require.Len(t, stored, 2)
	for _, r := range stored {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "partner_b_rental", r.PartnerID)
	}

	assert.Equal(t, store.ImportKindTrips, recorded.Kind)
	assert.Equal(t, "bolt-march.csv", recorded.FileName)
	assert.Equal(t, 2, recorded.TripCount)
	require.Len(t, recorded.RelatedIDs, 2)
	assert.Equal(t, stored[0].ID, recorded.RelatedIDs[0])
}

func TestDeleteImportRemovesRelatedTrips(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.history.On("List", ctx).Return([]store.ImportRecord{
		{ID: "imp1", Kind: store.ImportKindTrips, RelatedIDs: []string{"t1", "t2"}},
	}, nil)
	f.trips.On("DeleteMany", ctx, []string{"t1", "t2"}).Return(nil)
	f.history.On("Delete", ctx, "imp1").Return(nil)

	require.NoError(t, f.service.DeleteImport(ctx, "imp1"))
	f.trips.AssertExpectations(t)
	f.history.AssertExpectations(t)
}

func TestDeleteImportUnknownID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.history.On("List", ctx).Return([]store.ImportRecord{}, nil)

	err := f.service.DeleteImport(ctx, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestDeleteCostCascadesToHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.costs.On("Delete", ctx, "c1").Return(nil)
	f.history.On("DeleteByRelatedID", ctx, "c1").Return(nil)

	require.NoError(t, f.service.DeleteCost(ctx, "c1"))
	f.costs.AssertExpectations(t)
	f.history.AssertExpectations(t)
}

func TestAddCostRecordsHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.costs.On("Add", ctx, mock.Anything).Return(nil)

	var recorded store.ImportRecord
	f.history.On("Add", ctx, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(store.ImportRecord)
	}).Return(nil)

	cost, err := f.service.AddCost(ctx, domain.Cost{
		Amount:      120,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Category:    domain.CategoryCarWash,
		Description: "Weekly wash",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cost.ID)

	assert.Equal(t, store.ImportKindCost, recorded.Kind)
	assert.Equal(t, 120.0, recorded.Amount)
	assert.Equal(t, []string{cost.ID}, recorded.RelatedIDs)
}

func TestSelectPartnerRejectsUnknown(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.settings.On("Get", ctx).Return(&store.Settings{}, nil)

	err := f.service.SelectPartner(ctx, "no_such_partner")
	require.Error(t, err)
	f.settings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSelectPartnerPersistsChoice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.settings.On("Get", ctx).Return(&store.Settings{SelectedPartnerID: partner.DefaultPartnerID}, nil)

	var saved store.Settings
	f.settings.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(store.Settings)
	}).Return(nil)

	require.NoError(t, f.service.SelectPartner(ctx, "partner_a_commission"))
	assert.Equal(t, "partner_a_commission", saved.SelectedPartnerID)
}

func TestSaveCustomPartnerReplacesExisting(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	existing, err := adapters.EncodeCustomPartners([]domain.Partner{
		{ID: "my_fleet", Name: "My Fleet", Car: domain.CarConfig{Type: domain.CarTypeOwned, Owned: &domain.OwnedCarConfig{}}},
	})
	require.NoError(t, err)

	f.settings.On("Get", ctx).Return(&store.Settings{CustomPartners: existing}, nil)

	var saved store.Settings
	f.settings.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(store.Settings)
	}).Return(nil)

	updated := domain.Partner{
		ID:   "my_fleet",
		Name: "My Fleet v2",
		Car:  domain.CarConfig{Type: domain.CarTypeOwned, Owned: &domain.OwnedCarConfig{}},
	}
	require.NoError(t, f.service.SaveCustomPartner(ctx, updated))

	customs, err := adapters.DecodeCustomPartners(saved.CustomPartners)
	require.NoError(t, err)
	require.Len(t, customs, 1)
	assert.Equal(t, "My Fleet v2", customs[0].Name)
}

func TestDeleteCustomPartnerResetsSelection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	existing, err := adapters.EncodeCustomPartners([]domain.Partner{
		{ID: "my_fleet", Name: "My Fleet", Car: domain.CarConfig{Type: domain.CarTypeOwned, Owned: &domain.OwnedCarConfig{}}},
	})
	require.NoError(t, err)

	f.settings.On("Get", ctx).Return(&store.Settings{
		SelectedPartnerID: "my_fleet",
		CustomPartners:    existing,
	}, nil)

	var saved store.Settings
	f.settings.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(store.Settings)
	}).Return(nil)

	require.NoError(t, f.service.DeleteCustomPartner(ctx, "my_fleet"))
	assert.Equal(t, partner.DefaultPartnerID, saved.SelectedPartnerID)

	customs, err := adapters.DecodeCustomPartners(saved.CustomPartners)
	require.NoError(t, err)
	assert.Empty(t, customs)
}

func TestStatsAggregatesStoredActivity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	f.trips.On("List", ctx).Return([]store.TripRecord{
		{
			ID:        "t1",
			Platform:  "Uber",
			Fare:      100,
			StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
			PartnerID: "partner_a_commission",
		},
	}, nil)
	f.costs.On("List", ctx).Return([]store.CostRecord{}, nil)
	f.settings.On("Get", ctx).Return(&store.Settings{}, nil)

	stats, err := f.service.Stats(ctx, now)
	require.NoError(t, err)

	// the commission profile takes half the fare
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 50.0, stats.TotalCosts)
	assert.Equal(t, 50.0, stats.NetProfit)
	assert.Equal(t, 1, stats.TripCount)
	assert.Equal(t, 2*time.Hour, stats.TotalWorkTime)
}

func TestEarningsReportProducesPDF(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.trips.On("List", ctx).Return([]store.TripRecord{}, nil)
	f.costs.On("List", ctx).Return([]store.CostRecord{}, nil)
	f.settings.On("Get", ctx).Return(&store.Settings{}, nil)

	data, name, err := f.service.EarningsReport(ctx, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "earnings-report-2025-03-11.pdf", name)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
