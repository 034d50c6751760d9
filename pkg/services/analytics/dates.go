package analytics

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats a timestamp as the UTC calendar-day key summaries are
// grouped under.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

func parseDayKey(key string) time.Time {
	t, _ := time.Parse(dayKeyLayout, key)
	return t
}

func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfISOWeek returns the Monday starting the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	d := startOfDayUTC(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// inclusiveDays counts calendar days in [start, end] with both endpoints
// included. Inputs are expected to be day-normalized.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
