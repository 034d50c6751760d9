package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/drive-tools/fare-atlas/pkg/runtime/terminal"
	"github.com/drive-tools/fare-atlas/pkg/services/analytics"
	"github.com/drive-tools/fare-atlas/pkg/services/config"
	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
	"github.com/drive-tools/fare-atlas/pkg/store/duckdb"
	duckdbcost "github.com/drive-tools/fare-atlas/pkg/store/duckdb/cost"
	duckdbhistory "github.com/drive-tools/fare-atlas/pkg/store/duckdb/history"
	duckdbsettings "github.com/drive-tools/fare-atlas/pkg/store/duckdb/settings"
	duckdbtrip "github.com/drive-tools/fare-atlas/pkg/store/duckdb/trip"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("FARE_ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DbPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tripStore, err := duckdbtrip.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	costStore, err := duckdbcost.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settingsStore, err := duckdbsettings.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	historyStore, err := duckdbhistory.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Ledger: ledger.NewService(ledger.Dependencies{
			Trips:    tripStore,
			Costs:    costStore,
			Settings: settingsStore,
			History:  historyStore,
			Engine:   analytics.Config{AssumedDailyKm: cfg.AssumedDailyKm},
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
