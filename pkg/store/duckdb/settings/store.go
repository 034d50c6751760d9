package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/drive-tools/fare-atlas/pkg/models/store"
)

// settingsRowID pins the single-user settings blob to one row.
const settingsRowID = 1

// Store persists the single-user settings blob: the active partner id and
// the user-defined custom partner profiles serialized as JSON.
type Store interface {
	Get(ctx context.Context) (*store.Settings, error)
	Save(ctx context.Context, settings store.Settings) error
}

type settingsStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &settingsStore{db: db}, nil
}

// Get returns the stored settings, or an empty Settings when none were
// saved yet.
func (s *settingsStore) Get(ctx context.Context) (*store.Settings, error) {
	query := `
		SELECT selected_partner_id, custom_partners::VARCHAR, updated_at
		FROM app_settings
		WHERE id = ?
	`
	var (
		selected  sql.NullString
		partners  sql.NullString
		updatedAt time.Time
	)
	err := s.db.QueryRowContext(ctx, query, settingsRowID).Scan(&selected, &partners, &updatedAt)
	if err == sql.ErrNoRows {
		return &store.Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	settings := &store.Settings{
		SelectedPartnerID: selected.String,
		UpdatedAt:         updatedAt,
	}
	if partners.String != "" {
		settings.CustomPartners = []byte(partners.String)
	}
	return settings, nil
}

func (s *settingsStore) Save(ctx context.Context, settings store.Settings) error {
	query := `
		INSERT OR REPLACE INTO app_settings (id, selected_partner_id, custom_partners, updated_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		settingsRowID,
		settings.SelectedPartnerID,
		settings.CustomPartners,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
