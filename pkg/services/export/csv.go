package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

var tripHeaders = []string{"ID", "Platform", "Distance (km)", "Fare", "Start Time", "End Time", "Partner ID"}

// TripsCSV renders the trip collection as a CSV export.
func TripsCSV(trips []domain.Trip) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(tripHeaders); err != nil {
		return nil, fmt.Errorf("write trip header: %w", err)
	}
	for _, t := range trips {
		row := []string{
			t.ID,
			string(t.Platform),
			strconv.FormatFloat(t.DistanceKm, 'f', 2, 64),
			strconv.FormatFloat(t.Fare, 'f', 2, 64),
			t.StartTime.Format(time.RFC3339),
			t.EndTime.Format(time.RFC3339),
			t.PartnerID,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write trip row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var costHeaders = []string{"ID", "Amount", "Date", "Category", "Description"}

// CostsCSV renders the incidental cost collection as a CSV export.
func CostsCSV(costs []domain.Cost) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(costHeaders); err != nil {
		return nil, fmt.Errorf("write cost header: %w", err)
	}
	for _, c := range costs {
		row := []string{
			c.ID,
			strconv.FormatFloat(c.Amount, 'f', 2, 64),
			c.Date.Format("2006-01-02"),
			string(c.Category),
			c.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write cost row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
