package ledger

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/drive-tools/fare-atlas/pkg/adapters"
	"github.com/drive-tools/fare-atlas/pkg/models/api"
	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
)

// maxImportSize caps uploaded platform reports at 10 MiB.
const maxImportSize = 10 << 20

type Handler struct {
	ledger ledger.Service
	now    func() time.Time
}

func NewHandler(svc ledger.Service) *Handler {
	return &Handler{
		ledger: svc,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) ListDaySummaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.ledger.DaySummaries(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to build day summaries")
		return
	}

	response := make([]api.DaySummary, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, adapters.MapDaySummaryDomainToApi(s))
	}
	h.respond(w, r, response)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.ledger.Stats(ctx, h.now())
	if err != nil {
		h.fail(w, r, err, "failed to aggregate stats")
		return
	}
	h.respond(w, r, adapters.MapPeriodStatsDomainToApi(stats))
}

func (h *Handler) GetCostBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	breakdown, err := h.ledger.CostBreakdown(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to build cost breakdown")
		return
	}

	response := make([]api.CategoryAmount, 0, len(breakdown))
	for _, c := range breakdown {
		response = append(response, adapters.MapCategoryAmountDomainToApi(c))
	}
	h.respond(w, r, response)
}

func (h *Handler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	heatmap, err := h.ledger.ProfitabilityHeatmap(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to build heatmap")
		return
	}
	h.respond(w, r, heatmap)
}

func (h *Handler) GetWeekdayEarnings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	earnings, err := h.ledger.WeekdayEarnings(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to build weekday earnings")
		return
	}
	h.respond(w, r, earnings)
}

func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.ledger.ListTrips(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to list trips")
		return
	}

	response := make([]api.Trip, 0, len(trips))
	for _, t := range trips {
		response = append(response, adapters.MapTripDomainToApi(t))
	}
	h.respond(w, r, response)
}

func (h *Handler) AddTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload api.Trip
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid trip payload", http.StatusBadRequest)
		return
	}

	trip, err := h.ledger.AddTrip(ctx, adapters.MapTripApiToDomain(payload))
	if err != nil {
		h.fail(w, r, err, "failed to add trip")
		return
	}
	h.respondStatus(w, r, http.StatusCreated, adapters.MapTripDomainToApi(trip))
}

func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.ledger.DeleteTrip(ctx, id); err != nil {
		h.fail(w, r, err, "failed to delete trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListCosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	costs, err := h.ledger.ListCosts(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to list costs")
		return
	}

	response := make([]api.Cost, 0, len(costs))
	for _, c := range costs {
		response = append(response, adapters.MapCostDomainToApi(c))
	}
	h.respond(w, r, response)
}

func (h *Handler) AddCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload api.Cost
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid cost payload", http.StatusBadRequest)
		return
	}

	cost, err := h.ledger.AddCost(ctx, adapters.MapCostApiToDomain(payload))
	if err != nil {
		h.fail(w, r, err, "failed to add cost")
		return
	}
	h.respondStatus(w, r, http.StatusCreated, adapters.MapCostDomainToApi(cost))
}

func (h *Handler) DeleteCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.ledger.DeleteCost(ctx, id); err != nil {
		h.fail(w, r, err, "failed to delete cost")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partners, err := h.ledger.Partners(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to list partners")
		return
	}

	response := make([]api.Partner, 0, len(partners))
	for _, p := range partners {
		response = append(response, adapters.MapPartnerDomainToApi(p))
	}
	h.respond(w, r, response)
}

func (h *Handler) GetSelectedPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	selected, err := h.ledger.SelectedPartner(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to resolve selected partner")
		return
	}
	h.respond(w, r, adapters.MapPartnerDomainToApi(selected))
}

func (h *Handler) SelectPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid selection payload", http.StatusBadRequest)
		return
	}

	if err := h.ledger.SelectPartner(ctx, payload.ID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SaveCustomPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload api.Partner
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid partner payload", http.StatusBadRequest)
		return
	}

	if err := h.ledger.SaveCustomPartner(ctx, adapters.MapPartnerApiToDomain(payload)); err != nil {
		h.fail(w, r, err, "failed to save custom partner")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteCustomPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.ledger.DeleteCustomPartner(ctx, id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ImportTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		http.Error(w, "invalid multipart payload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	outcome, err := h.ledger.ImportTrips(ctx, header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respondStatus(w, r, http.StatusCreated, api.ImportResult{
		Platform:  string(outcome.Platform),
		TripCount: outcome.TripCount,
		Skipped:   outcome.Skipped,
	})
}

func (h *Handler) ListImports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.ledger.ListImports(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to list imports")
		return
	}

	response := make([]api.ImportEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, adapters.MapImportEntryDomainToApi(e))
	}
	h.respond(w, r, response)
}

func (h *Handler) DeleteImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.ledger.DeleteImport(ctx, id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ExportTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.ledger.ExportTripsCSV(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to export trips")
		return
	}
	serveAttachment(w, "trips.csv", "text/csv", data)
}

func (h *Handler) ExportCosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.ledger.ExportCostsCSV(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to export costs")
		return
	}
	serveAttachment(w, "costs.csv", "text/csv", data)
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, name, err := h.ledger.EarningsReport(ctx, h.now())
	if err != nil {
		h.fail(w, r, err, "failed to build earnings report")
		return
	}
	serveAttachment(w, name, "application/pdf", data)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any) {
	h.respondStatus(w, r, http.StatusOK, payload)
}

func (h *Handler) respondStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}

func serveAttachment(w http.ResponseWriter, name, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}
