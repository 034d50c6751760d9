package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drive-tools/fare-atlas/pkg/server"
	"github.com/drive-tools/fare-atlas/pkg/services/analytics"
	"github.com/drive-tools/fare-atlas/pkg/services/config"
	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
	"github.com/drive-tools/fare-atlas/pkg/store/duckdb"
	duckdbcost "github.com/drive-tools/fare-atlas/pkg/store/duckdb/cost"
	duckdbhistory "github.com/drive-tools/fare-atlas/pkg/store/duckdb/history"
	duckdbsettings "github.com/drive-tools/fare-atlas/pkg/store/duckdb/settings"
	duckdbtrip "github.com/drive-tools/fare-atlas/pkg/store/duckdb/trip"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Fare Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults and FARE_ATLAS_* env vars apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	tripStore, err := duckdbtrip.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create trip store: %w", err)
	}
	costStore, err := duckdbcost.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create cost store: %w", err)
	}
	settingsStore, err := duckdbsettings.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create settings store: %w", err)
	}
	historyStore, err := duckdbhistory.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create history store: %w", err)
	}

	ledgerSvc := ledger.NewService(ledger.Dependencies{
		Trips:    tripStore,
		Costs:    costStore,
		Settings: settingsStore,
		History:  historyStore,
		Engine:   analytics.Config{AssumedDailyKm: cfg.AssumedDailyKm},
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Ledger: ledgerSvc,
		},
	})

	logger.Info().Str("db", cfg.DbPath).Msg("stores ready")
	return webAPI.Start()
}
