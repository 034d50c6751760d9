package cost

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/drive-tools/fare-atlas/pkg/models/store"
	"github.com/drive-tools/fare-atlas/pkg/store/duckdb"
)

// Store persists incidental cost records, newest first on reads.
type Store interface {
	Add(ctx context.Context, records []store.CostRecord) error
	List(ctx context.Context) ([]store.CostRecord, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type costStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &costStore{db: db}, nil
}

func (s *costStore) Add(ctx context.Context, records []store.CostRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO costs (id, amount, date, category, description)
		VALUES (?, ?, ?, ?, ?)`

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
			record.Amount,
			record.Date,
			record.Category,
			record.Description,
		)
		if err != nil {
			return fmt.Errorf("insert cost: %w", err)
		}
	}
	return nil
}

func (s *costStore) List(ctx context.Context) ([]store.CostRecord, error) {
	query := `
		SELECT id, amount, date, category, description
		FROM costs
		ORDER BY date DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query costs: %w", err)
	}
	defer rows.Close()

	records := make([]store.CostRecord, 0)
	for rows.Next() {
		var record store.CostRecord
		var description sql.NullString
		if err := rows.Scan(&record.ID, &record.Amount, &record.Date, &record.Category, &description); err != nil {
			return nil, err
		}
		record.Description = description.String
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *costStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM costs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	return nil
}

func (s *costStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM costs`); err != nil {
		return fmt.Errorf("clear costs: %w", err)
	}
	return nil
}
