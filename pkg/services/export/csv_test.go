package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

func TestTripsCSV(t *testing.T) {
	trips := []domain.Trip{
		{
			ID:         "t1",
			Platform:   domain.PlatformUber,
			DistanceKm: 12.5,
			Fare:       45.5,
			StartTime:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
			PartnerID:  "partner_a",
		},
	}

	data, err := TripsCSV(trips)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, tripHeaders, rows[0])
	assert.Equal(t, []string{"t1", "Uber", "12.50", "45.50", "2025-03-10T09:00:00Z", "2025-03-10T09:30:00Z", "partner_a"}, rows[1])
}

func TestTripsCSVEmpty(t *testing.T) {
	data, err := TripsCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestCostsCSV(t *testing.T) {
	costs := []domain.Cost{
		{
			ID:          "c1",
			Amount:      120,
			Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Category:    domain.CategoryCarWash,
			Description: "Weekly wash",
		},
	}

	data, err := CostsCSV(costs)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c1", "120.00", "2025-03-10", "car_wash", "Weekly wash"}, rows[1])
}

func TestEarningsReportPDF(t *testing.T) {
	stats := domain.PeriodStats{
		TotalRevenue:  500,
		TotalCosts:    200,
		NetProfit:     300,
		TripCount:     12,
		TotalWorkTime: 10 * time.Hour,
		ProfitPerHour: 30,
	}
	summaries := []domain.DaySummary{
		{Date: "2025-03-10", TripCount: 6, TotalRevenue: 250, TotalCosts: 100, NetProfit: 150, ProfitPerHour: 30, WorkDuration: 5 * time.Hour},
	}

	data, name, err := EarningsReportPDF(stats, summaries, time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "earnings-report-2025-03-11.pdf", name)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
