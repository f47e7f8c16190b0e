package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
	apperrors "github.com/keebscout/keebscout/pkg/errors"
)

// DefaultTopN is the result cap used when the caller does not specify one.
const DefaultTopN = 10

// PipelineOptions configures a single pipeline run.
type PipelineOptions struct {
	Filters       FilterOptions
	Weights       entities.Weights
	Preferences   []string
	BoostPerMatch float64
	TopN          int
}

// DefaultPipelineOptions returns options with default weights and result cap.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Weights: entities.DefaultWeights(),
		TopN:    DefaultTopN,
	}
}

// RunSummary reports what happened during one pipeline run.
type RunSummary struct {
	RunID      string        `json:"run_id"`
	Collected  int           `json:"collected"`
	Skipped    int           `json:"skipped"`
	Normalized int           `json:"normalized"`
	Filtered   int           `json:"filtered"`
	Ranked     int           `json:"ranked"`
	Duration   time.Duration `json:"duration"`
}

// PipelineService orchestrates the core pipeline over a fully materialized
// collection of source records:
//
//	normalize → filter → score → boost → deduplicate/rank → enrich
//
// Each run is independent and reentrant; the service owns no mutable state
// between invocations.
type PipelineService struct {
	normalizer *NormalizerService
	filters    *FilterService
	ranking    *RankingService
	enrichment *EnrichmentService
}

// NewPipelineService creates a pipeline. The enrichment service is
// optional; without one the top picks simply carry no review text.
func NewPipelineService(enrichment *EnrichmentService) *PipelineService {
	return &PipelineService{
		normalizer: NewNormalizerService(),
		filters:    NewFilterService(),
		ranking:    NewRankingService(),
		enrichment: enrichment,
	}
}

// Run executes the pipeline. Configuration errors (invalid weights,
// non-positive result cap) are surfaced before any scoring work. Filters
// eliminating every record is not an error: the result is an empty ranked
// collection.
func (s *PipelineService) Run(
	ctx context.Context,
	records []entities.SourceRecord,
	opts PipelineOptions,
) ([]entities.RankedProduct, *RunSummary, error) {
	start := time.Now()

	summary := &RunSummary{
		RunID:     uuid.New().String(),
		Collected: len(records),
	}
	logger := log.With().Str("run_id", summary.RunID).Logger()

	if opts.TopN == 0 {
		opts.TopN = DefaultTopN
	}
	if opts.TopN < 0 {
		return nil, summary, apperrors.NewValidationError("result cap must be a positive integer")
	}

	// Fail on bad weights before any per-record work.
	scoring, err := NewScoringService(opts.Weights)
	if err != nil {
		return nil, summary, err
	}

	if err := ctx.Err(); err != nil {
		return nil, summary, err
	}

	products, skipped := s.normalizer.NormalizeAll(records)
	summary.Skipped = skipped
	summary.Normalized = len(products)

	filtered := s.filters.Apply(products, opts.Filters)
	summary.Filtered = len(filtered)
	logger.Info().
		Int("collected", summary.Collected).
		Int("skipped", summary.Skipped).
		Int("filtered", summary.Filtered).
		Msg("normalized and filtered source records")

	scored := scoring.ScoreAll(filtered)

	booster := NewPreferenceService(opts.Preferences, opts.BoostPerMatch)
	boosted := booster.Boost(scored)

	ranked := s.ranking.Rank(boosted, opts.TopN)
	summary.Ranked = len(ranked)

	if s.enrichment != nil {
		ranked = s.enrichment.Enrich(ranked)
	}

	summary.Duration = time.Since(start)
	logger.Info().
		Int("ranked", summary.Ranked).
		Dur("duration", summary.Duration).
		Msg("pipeline run complete")

	return ranked, summary, nil
}
