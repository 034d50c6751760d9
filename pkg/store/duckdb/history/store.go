package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/drive-tools/fare-atlas/pkg/models/store"
)

// Store tracks import batches so a deleted file import or cost entry can
// cascade to the records it produced.
type Store interface {
	Add(ctx context.Context, record store.ImportRecord) error
	List(ctx context.Context) ([]store.ImportRecord, error)
	Delete(ctx context.Context, id string) error
	// DeleteByRelatedID removes cost-kind history entries referencing the
	// given id, used when a cost is deleted directly.
	DeleteByRelatedID(ctx context.Context, relatedID string) error
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (s *historyStore) Add(ctx context.Context, record store.ImportRecord) error {
	relatedIDs, err := json.Marshal(record.RelatedIDs)
	if err != nil {
		return fmt.Errorf("marshal related ids: %w", err)
	}

	query := `
		INSERT INTO import_history (
			id, date, kind, file_name, platform, trip_count, amount, description, related_ids
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.Date,
		string(record.Kind),
		record.FileName,
		record.Platform,
		record.TripCount,
		record.Amount,
		record.Description,
		relatedIDs,
	)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	return nil
}

func (s *historyStore) List(ctx context.Context) ([]store.ImportRecord, error) {
	query := `
		SELECT id, date, kind, file_name, platform, trip_count, amount, description,
			related_ids::VARCHAR
		FROM import_history
		ORDER BY date DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	records := make([]store.ImportRecord, 0)
	for rows.Next() {
		var (
			record             store.ImportRecord
			kind               string
			fileName, platform sql.NullString
			description        sql.NullString
			relatedRaw         sql.NullString
		)
		err := rows.Scan(
			&record.ID,
			&record.Date,
			&kind,
			&fileName,
			&platform,
			&record.TripCount,
			&record.Amount,
			&description,
			&relatedRaw,
		)
		if err != nil {
			return nil, err
		}
		record.Kind = store.ImportKind(kind)
		record.FileName = fileName.String
		record.Platform = platform.String
		record.Description = description.String
		if relatedRaw.String != "" {
			if err := json.Unmarshal([]byte(relatedRaw.String), &record.RelatedIDs); err != nil {
				return nil, fmt.Errorf("decode related ids: %w", err)
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *historyStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM import_history WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	return nil
}

func (s *historyStore) DeleteByRelatedID(ctx context.Context, relatedID string) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, record := range records {
		if record.Kind != store.ImportKindCost {
			continue
		}
		for _, id := range record.RelatedIDs {
			if id == relatedID {
				if err := s.Delete(ctx, record.ID); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}
