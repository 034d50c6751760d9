package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/domain"
)

const milesToKm = 1.60934

// Result is one parsed platform report. Trip ids and partner references are
// left unset; the caller assigns them on ingestion.
type Result struct {
	Trips    []domain.Trip
	Platform domain.Platform
	// Skipped counts malformed data lines that were dropped.
	Skipped int
}

// Parse reads a Bolt or Uber trip report, detecting the platform from the
// header line.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv file is empty or has no data rows")
	}

	header := rows[0]
	// Strip the BOM some report exports prepend.
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	platform, err := detectPlatform(header)
	if err != nil {
		return nil, err
	}

	switch platform {
	case domain.PlatformBolt:
		return parseBolt(header, rows[1:])
	default:
		return parseUber(header, rows[1:])
	}
}

func detectPlatform(header []string) (domain.Platform, error) {
	joined := strings.Join(header, ",")
	if strings.Contains(joined, "Data przejazdu") && strings.Contains(joined, "Numer faktury") {
		return domain.PlatformBolt, nil
	}
	lower := strings.ToLower(joined)
	if strings.Contains(lower, "begin trip time") || strings.Contains(lower, "fare amount") {
		return domain.PlatformUber, nil
	}
	return "", fmt.Errorf("unrecognized report format: expected a Bolt or Uber trip export")
}

func columnIndex(header []string, names ...string) int {
	for i, h := range header {
		for _, name := range names {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
	}
	return -1
}

func parseBolt(header []string, rows [][]string) (*Result, error) {
	required := []string{"Data przejazdu", "Suma", "Data", "Adres odbioru", "Metoda płatności"}
	indices := make(map[string]int, len(required))
	for _, name := range required {
		idx := columnIndex(header, name)
		if idx < 0 {
			return nil, fmt.Errorf("bolt csv is missing required column %q", name)
		}
		indices[name] = idx
	}

	result := &Result{Platform: domain.PlatformBolt}
	for _, row := range rows {
		if blankRow(row) {
			continue
		}

		startTime, startErr := parseBoltDate(field(row, indices["Data przejazdu"]))
		endTime, endErr := parseBoltDate(field(row, indices["Data"]))
		fare, fareErr := strconv.ParseFloat(
			strings.ReplaceAll(field(row, indices["Suma"]), ",", "."), 64)
		if startErr != nil || endErr != nil || fareErr != nil {
			result.Skipped++
			continue
		}

		result.Trips = append(result.Trips, domain.Trip{
			Platform: domain.PlatformBolt,
			// Bolt reports do not include trip distance.
			DistanceKm:    0,
			Fare:          fare,
			StartTime:     startTime,
			EndTime:       endTime,
			PickupAddress: field(row, indices["Adres odbioru"]),
			PaymentMethod: field(row, indices["Metoda płatności"]),
		})
	}
	return result, nil
}

func parseUber(header []string, rows [][]string) (*Result, error) {
	columns := map[string][]string{
		"start":    {"Begin Trip Time", "Data rozpoczęcia"},
		"end":      {"End Trip Time", "Data zakończenia"},
		"fare":     {"Fare Amount", "Opłata", "Your Earnings"},
		"distance": {"Distance (miles)", "Dystans (km)"},
	}

	indices := make(map[string]int, len(columns))
	for key, names := range columns {
		idx := columnIndex(header, names...)
		if idx < 0 {
			return nil, fmt.Errorf("uber csv is missing required column (one of %s)",
				strings.Join(names, ", "))
		}
		indices[key] = idx
	}
	isMiles := strings.Contains(header[indices["distance"]], "miles")

	result := &Result{Platform: domain.PlatformUber}
	for _, row := range rows {
		if blankRow(row) {
			continue
		}

		startTime, startErr := parseUberDate(field(row, indices["start"]))
		endTime, endErr := parseUberDate(field(row, indices["end"]))
		fare, fareErr := strconv.ParseFloat(field(row, indices["fare"]), 64)
		distance, distErr := strconv.ParseFloat(field(row, indices["distance"]), 64)
		if startErr != nil || endErr != nil || fareErr != nil || distErr != nil {
			result.Skipped++
			continue
		}

		if isMiles {
			distance *= milesToKm
		}

		result.Trips = append(result.Trips, domain.Trip{
			Platform:   domain.PlatformUber,
			DistanceKm: distance,
			Fare:       fare,
			StartTime:  startTime,
			EndTime:    endTime,
		})
	}
	return result, nil
}

// parseBoltDate reads the "DD.MM.YYYY HH:MM" format Bolt reports use.
func parseBoltDate(value string) (time.Time, error) {
	return time.Parse("02.01.2006 15:04", strings.TrimSpace(value))
}

var uberDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseUberDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range uberDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
