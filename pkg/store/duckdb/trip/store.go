package trip

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/store"
	"github.com/drive-tools/fare-atlas/pkg/store/duckdb"
)

// Store persists trip records. Reads return trips ordered by start time
// descending, newest first, matching the presentation order.
type Store interface {
	Add(ctx context.Context, records []store.TripRecord) error
	List(ctx context.Context) ([]store.TripRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	Clear(ctx context.Context) error
}

type tripStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &tripStore{db: db}, nil
}

func (s *tripStore) Add(ctx context.Context, records []store.TripRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO trips (
			id, platform, distance_km, fare, start_time, end_time,
			partner_id, pickup_address, payment_method, lat, lng
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	tx := duckdb.GetTransaction(ctx)
	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.ID,
			record.Platform,
			record.DistanceKm,
			record.Fare,
			record.StartTime,
			record.EndTime,
			record.PartnerID,
			record.PickupAddress,
			record.PaymentMethod,
			coordValue(record.Lat),
			coordValue(record.Lng),
		)
		if err != nil {
			return fmt.Errorf("insert trip: %w", err)
		}
	}
	return nil
}

// coordValue unwraps an optional coordinate for binding, the driver cannot
// bind pointer parameters.
func coordValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func (s *tripStore) List(ctx context.Context) ([]store.TripRecord, error) {
	query := `
		SELECT id, platform, distance_km, fare, start_time, end_time,
			partner_id, pickup_address, payment_method, lat, lng
		FROM trips
		ORDER BY start_time DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()
	return scanTripRows(rows)
}

func (s *tripStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}

func (s *tripStore) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf(`DELETE FROM trips WHERE id IN (%s)`, placeholders)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete trips: %w", err)
	}
	return nil
}

func (s *tripStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM trips`); err != nil {
		return fmt.Errorf("clear trips: %w", err)
	}
	return nil
}

func scanTripRows(rows *sql.Rows) ([]store.TripRecord, error) {
	records := make([]store.TripRecord, 0)
	for rows.Next() {
		var (
			record             store.TripRecord
			partnerID          sql.NullString
			pickup, payment    sql.NullString
			lat, lng           sql.NullFloat64
			startTime, endTime time.Time
		)
		err := rows.Scan(
			&record.ID,
			&record.Platform,
			&record.DistanceKm,
			&record.Fare,
			&startTime,
			&endTime,
			&partnerID,
			&pickup,
			&payment,
			&lat,
			&lng,
		)
		if err != nil {
			return nil, err
		}
		record.StartTime = startTime
		record.EndTime = endTime
		record.PartnerID = partnerID.String
		record.PickupAddress = pickup.String
		record.PaymentMethod = payment.String
		if lat.Valid {
			v := lat.Float64
			record.Lat = &v
		}
		if lng.Valid {
			v := lng.Float64
			record.Lng = &v
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
