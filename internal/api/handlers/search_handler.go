package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/adapters/sources"
	"github.com/keebscout/keebscout/internal/application/services"
	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/pkg/config"
	apperrors "github.com/keebscout/keebscout/pkg/errors"
	"github.com/keebscout/keebscout/pkg/utils"
)

// SearchHandler handles product search requests
type SearchHandler struct {
	registry *sources.Registry
	pipeline *services.PipelineService
	defaults config.PipelineConfig
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(registry *sources.Registry, pipeline *services.PipelineService, defaults config.PipelineConfig) *SearchHandler {
	return &SearchHandler{
		registry: registry,
		pipeline: pipeline,
		defaults: defaults,
	}
}

type searchResponse struct {
	Summary *services.RunSummary     `json:"summary"`
	Results []entities.RankedProduct `json:"results"`
}

// Search handles GET /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := sources.SearchRequest{
		Query:     h.defaults.Query,
		ShipToZip: h.defaults.ShipToZip,
	}
	if v := q.Get("q"); v != "" {
		req.Query = v
	}
	if v := q.Get("zip"); v != "" {
		req.ShipToZip = v
	}

	opts, err := h.parseOptions(q)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	adapterNames := h.registry.List()
	if v := q.Get("adapters"); v != "" {
		adapterNames = strings.Split(v, ",")
	}

	records, err := collectRecords(r, h.registry, adapterNames, req)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.ErrorTypeNotFound {
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		}
		respondWithError(w, http.StatusBadGateway, err.Error())
		return
	}

	ranked, summary, err := h.pipeline.Run(r.Context(), records, opts)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			switch appErr.Type {
			case apperrors.ErrorTypeInvalidWeights, apperrors.ErrorTypeValidation:
				respondWithError(w, http.StatusBadRequest, appErr.Message)
			default:
				respondWithError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, searchResponse{Summary: summary, Results: ranked})
}

// ListAdapters handles GET /api/adapters
func (h *SearchHandler) ListAdapters(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string][]string{
		"adapters": h.registry.List(),
	})
}

func (h *SearchHandler) parseOptions(q map[string][]string) (services.PipelineOptions, error) {
	opts := services.DefaultPipelineOptions()
	opts.BoostPerMatch = h.defaults.BoostPerMatch
	if h.defaults.TopN > 0 {
		opts.TopN = h.defaults.TopN
	}

	get := func(key string) string {
		if vs, ok := q[key]; ok && len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	if v := get("budget"); v != "" {
		budget := utils.ParsePrice(v)
		if budget == nil {
			return opts, apperrors.NewValidationError("budget must be a positive number")
		}
		opts.Filters.Budget = budget
	}
	if v := get("wireless"); v != "" {
		opts.Filters.Wireless = utils.ParseBool(v)
	}
	opts.Filters.Layout = get("layout")
	if v := get("min_rating_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, apperrors.NewValidationError("min_rating_count must be a non-negative integer")
		}
		opts.Filters.MinRatingCount = n
	}
	if v := get("preferences"); v != "" {
		opts.Preferences = services.ParsePreferences(v)
	}
	if v := get("boost"); v != "" {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, apperrors.NewValidationError("boost must be a number")
		}
		opts.BoostPerMatch = b
	}
	if v := get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return opts, apperrors.NewValidationError("top_n must be a positive integer")
		}
		opts.TopN = n
	}

	// Weight overrides replace individual defaults; the sum is validated
	// by the scoring service before any record is processed.
	weightParams := map[string]*float64{
		"w_ergonomics": &opts.Weights.Ergonomics,
		"w_reviews":    &opts.Weights.Reviews,
		"w_value":      &opts.Weights.Value,
		"w_build":      &opts.Weights.Build,
	}
	for key, dst := range weightParams {
		if v := get(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, apperrors.NewValidationError(key + " must be a number")
			}
			*dst = f
		}
	}

	return opts, nil
}

// collectRecords gathers source records from the named adapters. A single
// adapter failing is logged and skipped; an unknown adapter name is an error.
func collectRecords(r *http.Request, registry *sources.Registry, names []string, req sources.SearchRequest) ([]entities.SourceRecord, error) {
	var records []entities.SourceRecord
	for _, name := range names {
		adapter, err := registry.Get(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		recs, err := adapter.Search(r.Context(), req)
		if err != nil {
			log.Warn().Err(err).Str("adapter", adapter.Name()).Msg("adapter search failed, skipping")
			continue
		}
		records = append(records, recs...)
	}
	return records, nil
}
