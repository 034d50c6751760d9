package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

func TestReporterHandle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle(&Report{
		Stats: domain.PeriodStats{
			TotalRevenue:  500,
			TotalCosts:    200,
			NetProfit:     300,
			ProfitPerHour: 60,
			TripCount:     10,
			TotalWorkTime: 5 * time.Hour,
		},
		Days: []domain.DaySummary{
			{
				Date:          "2025-03-10",
				TripCount:     6,
				TotalRevenue:  250,
				TotalCosts:    100,
				NetProfit:     150,
				ProfitPerHour: 30,
				WorkDuration:  5 * time.Hour,
			},
		},
		Breakdown: []domain.CategoryAmount{
			{Label: "Fuel", Amount: 113.03},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Earnings Report")
	assert.Contains(t, out, "Net Profit:    300.00")
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "5h 0m")
	assert.Contains(t, out, "Cost Breakdown")
	assert.Contains(t, out, "Fuel")
}

func TestReporterNilWriterDefaultsToStdout(t *testing.T) {
	reporter := NewReporter(nil)
	require.NotNil(t, reporter)
}
