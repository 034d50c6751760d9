package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/drive-tools/fare-atlas/pkg/handlers/ledger"
	fareatlasmiddleware "github.com/drive-tools/fare-atlas/pkg/server/middleware"
	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Ledger ledger.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	ledgerHandler := handlers.NewHandler(config.Dependencies.Ledger)

	router := chi.NewRouter()

	router.Use(fareatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/summaries", ledgerHandler.ListDaySummaries)
		r.Get("/stats", ledgerHandler.GetStats)
		r.Get("/breakdown", ledgerHandler.GetCostBreakdown)
		r.Get("/heatmap", ledgerHandler.GetHeatmap)
		r.Get("/weekdays", ledgerHandler.GetWeekdayEarnings)

		r.Get("/trips", ledgerHandler.ListTrips)
		r.Post("/trips", ledgerHandler.AddTrip)
		r.Delete("/trips/{id}", ledgerHandler.DeleteTrip)

		r.Get("/costs", ledgerHandler.ListCosts)
		r.Post("/costs", ledgerHandler.AddCost)
		r.Delete("/costs/{id}", ledgerHandler.DeleteCost)

		r.Get("/partners", ledgerHandler.ListPartners)
		r.Post("/partners", ledgerHandler.SaveCustomPartner)
		r.Delete("/partners/{id}", ledgerHandler.DeleteCustomPartner)
		r.Get("/partners/selected", ledgerHandler.GetSelectedPartner)
		r.Put("/partners/selected", ledgerHandler.SelectPartner)

		r.Get("/imports", ledgerHandler.ListImports)
		r.Post("/imports", ledgerHandler.ImportTrips)
		r.Delete("/imports/{id}", ledgerHandler.DeleteImport)

		r.Get("/export/trips", ledgerHandler.ExportTrips)
		r.Get("/export/costs", ledgerHandler.ExportCosts)
		r.Get("/export/report", ledgerHandler.ExportReport)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the configured mux, used by tests and embedding callers.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
