package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/services/analytics"
)

const reportDayLimit = 31

// EarningsReportPDF builds a printable earnings report covering the
// all-time stats plus a per-day table of the most recent days.
func EarningsReportPDF(stats domain.PeriodStats, summaries []domain.DaySummary, now time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Earnings Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Earnings Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated: "+now.UTC().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Totals")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Revenue: %.2f", stats.TotalRevenue),
		fmt.Sprintf("Costs: %.2f", stats.TotalCosts),
		fmt.Sprintf("Net profit: %.2f", stats.NetProfit),
		fmt.Sprintf("Profit per hour: %.2f", stats.ProfitPerHour),
		fmt.Sprintf("Trips: %d", stats.TripCount),
		fmt.Sprintf("Distance: %.1f km", stats.TotalDistanceKm),
		fmt.Sprintf("Time worked: %s", analytics.FormatDuration(stats.TotalWorkTime)),
	}
	for _, s := range lines {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Daily breakdown")
	pdf.Ln(8)

	widths := []float64{28, 16, 26, 26, 26, 26, 24}
	headers := []string{"Date", "Trips", "Revenue", "Costs", "Profit", "Per hour", "Time"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	rows := summaries
	if len(rows) > reportDayLimit {
		rows = rows[:reportDayLimit]
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, day := range rows {
		cells := []string{
			day.Date,
			fmt.Sprintf("%d", day.TripCount),
			fmt.Sprintf("%.2f", day.TotalRevenue),
			fmt.Sprintf("%.2f", day.TotalCosts),
			fmt.Sprintf("%.2f", day.NetProfit),
			fmt.Sprintf("%.2f", day.ProfitPerHour),
			analytics.FormatDuration(day.WorkDuration),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render earnings report: %w", err)
	}

	filename := fmt.Sprintf("earnings-report-%s.pdf", now.UTC().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
