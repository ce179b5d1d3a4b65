package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/api"
	"github.com/warrendt/Azure2AzureTK/pkg/services/assessment"
)

// Handler exposes persisted assessment artifacts over HTTP. It serves what
// the last run wrote; it never starts one.
type Handler struct {
	explorer assessment.Explorer
}

func NewHandler(explorer assessment.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	regions, err := h.explorer.Regions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load regions")
		http.Error(w, "regions artifact not available", http.StatusInternalServerError)
		return
	}

	response := make([]api.Region, 0, len(regions))
	for _, region := range regions {
		response = append(response, adapters.MapRegionDomainToApi(region))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summaries, err := h.explorer.Availability(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load availability")
		http.Error(w, "availability artifact not available", http.StatusInternalServerError)
		return
	}

	response := make([]api.ResourceAvailability, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, adapters.MapResourceSummaryDomainToApi(summary))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetRegionAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	region := chi.URLParam(r, "region")
	if unescaped, err := url.PathUnescape(region); err == nil {
		region = unescaped
	}

	summaries, err := h.explorer.RegionAvailability(ctx, region)
	if err != nil {
		if errors.Is(err, assessment.ErrRegionNotFound) {
			http.Error(w, "region not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("region", region).Msg("failed to load region availability")
		http.Error(w, "availability artifact not available", http.StatusInternalServerError)
		return
	}

	response := make([]api.ResourceAvailability, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, adapters.MapResourceSummaryDomainToApi(summary))
	}
	writeJSON(w, logger, response)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
