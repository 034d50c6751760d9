package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
	"github.com/drive-tools/fare-atlas/pkg/services/analytics"
)

// Report bundles everything the console earnings view renders.
type Report struct {
	Stats     domain.PeriodStats
	Days      []domain.DaySummary
	Breakdown []domain.CategoryAmount
}

type TableConfig struct {
	DateWidth   int
	TripsWidth  int
	AmountWidth int
	TimeWidth   int
	LabelWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:   12,
		TripsWidth:  6,
		AmountWidth: 10,
		TimeWidth:   10,
		LabelWidth:  40,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(date string, trips, revenue, costs, profit, perHour, worked string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %*s | %*s | %*s |",
				c.config.DateWidth, date,
				c.config.TripsWidth, trips,
				c.config.AmountWidth, revenue,
				c.config.AmountWidth, costs,
				c.config.AmountWidth, profit,
				c.config.AmountWidth, perHour,
				c.config.TimeWidth, worked)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DateWidth+2),
				strings.Repeat("-", c.config.TripsWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.TimeWidth+2))
		},
		"breakdownRow": func(label string, amount float64) string {
			return fmt.Sprintf("| %-*s | %*.2f |",
				c.config.LabelWidth, label,
				c.config.AmountWidth, amount)
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"count": func(v int) string {
			return fmt.Sprintf("%d", v)
		},
		"duration": analytics.FormatDuration,
	}

	tmpl := `
Earnings Report

Total Revenue: {{printf "%.2f" .Stats.TotalRevenue}}
Total Costs:   {{printf "%.2f" .Stats.TotalCosts}}
Net Profit:    {{printf "%.2f" .Stats.NetProfit}}
Profit/Hour:   {{printf "%.2f" .Stats.ProfitPerHour}}
Trips:         {{.Stats.TripCount}}
Distance:      {{printf "%.1f" .Stats.TotalDistanceKm}} km
Time Worked:   {{duration .Stats.TotalWorkTime}}

{{separator}}
{{formatRow "Date" "Trips" "Revenue" "Costs" "Profit" "Per hour" "Time"}}
{{separator}}
{{range .Days}}{{formatRow .Date (count .TripCount) (money .TotalRevenue) (money .TotalCosts) (money .NetProfit) (money .ProfitPerHour) (duration .WorkDuration)}}
{{end}}{{separator}}
{{if .Breakdown}}
=== Cost Breakdown ===
{{range .Breakdown}}{{breakdownRow .Label .Amount}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
