package api

import "time"

type ImportEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	TripCount   int       `json:"trip_count,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	Description string    `json:"description,omitempty"`
}
