package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const TripsSchema = `
	CREATE TABLE IF NOT EXISTS trips (
		id VARCHAR NOT NULL,
		platform VARCHAR NOT NULL,
		distance_km DOUBLE NOT NULL,
		fare DOUBLE NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		partner_id VARCHAR,
		pickup_address VARCHAR,
		payment_method VARCHAR,
		lat DOUBLE,
		lng DOUBLE,
		PRIMARY KEY (id)
	);
`

const CostsSchema = `
	CREATE TABLE IF NOT EXISTS costs (
		id VARCHAR NOT NULL,
		amount DOUBLE NOT NULL,
		date TIMESTAMP NOT NULL,
		category VARCHAR NOT NULL,
		description VARCHAR,
		PRIMARY KEY (id)
	);
`

const SettingsSchema = `
	CREATE TABLE IF NOT EXISTS app_settings (
		id INTEGER NOT NULL,
		selected_partner_id VARCHAR,
		custom_partners JSON,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	);
`

const ImportHistorySchema = `
	CREATE TABLE IF NOT EXISTS import_history (
		id VARCHAR NOT NULL,
		date TIMESTAMP NOT NULL,
		kind VARCHAR NOT NULL,
		file_name VARCHAR,
		platform VARCHAR,
		trip_count INTEGER,
		amount DOUBLE,
		description VARCHAR,
		related_ids JSON,
		PRIMARY KEY (id)
	);
`

var bootQueries = []string{
	TripsSchema,
	CostsSchema,
	SettingsSchema,
	ImportHistorySchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
