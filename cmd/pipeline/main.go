package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/adapters/output"
	"github.com/keebscout/keebscout/internal/adapters/sources"
	"github.com/keebscout/keebscout/internal/application/services"
	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/internal/infrastructure/observability"
	"github.com/keebscout/keebscout/pkg/config"
	"github.com/keebscout/keebscout/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var (
		query          = flag.String("query", cfg.Pipeline.Query, "search query sent to every adapter")
		zip            = flag.String("zip", cfg.Pipeline.ShipToZip, "ship-to ZIP code stamped on collected records")
		budget         = flag.String("budget", "", "maximum price in USD; products with unknown prices are excluded")
		wireless       = flag.String("wireless", "", "require wireless connectivity: yes or no")
		layout         = flag.String("layout", "", "layout keyword to match, e.g. split, tkl, alice")
		minRatingCount = flag.Int("min-rating-count", 0, "minimum number of customer ratings")
		preferences    = flag.String("preferences", "", "comma-separated preference keywords that boost matching products")
		boost          = flag.Float64("boost", cfg.Pipeline.BoostPerMatch, "score boost per matched preference keyword")
		topN           = flag.Int("top-n", cfg.Pipeline.TopN, "number of ranked products to keep")
		adapterList    = flag.String("adapters", "", "comma-separated adapter names; all registered adapters when empty")
		mode           = flag.String("mode", "auto", "data source mode: auto, seed, or online")
		csvFile        = flag.String("csv-file", cfg.Sources.CSVPath, "path to a CSV export to ingest as an additional source")
		outFormats     = flag.String("out", "text", "comma-separated output formats: text, json, csv, xlsx, or all")
		outputDir      = flag.String("output-dir", cfg.Output.Dir, "directory for csv and xlsx output files")
		dryRun         = flag.Bool("dry-run", false, "collect and count records without running the pipeline")
		verbose        = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	observability.InitLogger("keebscout-pipeline", cfg.Server.Env)
	observability.SetVerbose(*verbose)

	sourceMode, err := parseMode(*mode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid mode")
	}

	registry, err := buildRegistry(cfg, sourceMode, *csvFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build adapter registry")
	}

	names := registry.List()
	if *adapterList != "" {
		names = strings.Split(*adapterList, ",")
	}

	ctx := context.Background()
	req := sources.SearchRequest{Query: *query, ShipToZip: *zip}

	records, err := collect(ctx, registry, names, req)
	if err != nil {
		log.Fatal().Err(err).Msg("record collection failed")
	}
	log.Info().Int("records", len(records)).Msg("collected source records")

	if *dryRun {
		fmt.Printf("dry run: collected %d records from %s\n", len(records), strings.Join(names, ", "))
		return
	}

	opts := services.DefaultPipelineOptions()
	opts.TopN = *topN
	opts.BoostPerMatch = *boost
	opts.Preferences = services.ParsePreferences(*preferences)
	opts.Filters = services.FilterOptions{
		Layout:         *layout,
		MinRatingCount: *minRatingCount,
	}
	if *budget != "" {
		b := utils.ParsePrice(*budget)
		if b == nil {
			log.Fatal().Str("budget", *budget).Msg("budget must be a positive number")
		}
		opts.Filters.Budget = b
	}
	if *wireless != "" {
		opts.Filters.Wireless = utils.ParseBool(*wireless)
	}

	enrichment, err := services.NewEnrichmentServiceFromFile(services.GetReviewsConfigPath())
	if err != nil {
		log.Warn().Err(err).Msg("curated reviews unavailable, results will not be enriched")
		enrichment = nil
	}

	pipeline := services.NewPipelineService(enrichment)
	ranked, summary, err := pipeline.Run(ctx, records, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline run failed")
	}

	meta := output.Metadata{
		RunID:   summary.RunID,
		Query:   *query,
		Budget:  opts.Filters.Budget,
		Mode:    *mode,
		Weights: opts.Weights,
		Count:   len(ranked),
	}

	if err := writeOutputs(ranked, meta, *outFormats, *outputDir); err != nil {
		log.Fatal().Err(err).Msg("failed to write output")
	}
}

func parseMode(raw string) (sources.Mode, error) {
	switch sources.Mode(raw) {
	case sources.ModeAuto, sources.ModeSeed, sources.ModeOnline:
		return sources.Mode(raw), nil
	}
	return "", fmt.Errorf("unknown mode %q, expected auto, seed, or online", raw)
}

func buildRegistry(cfg *config.Config, mode sources.Mode, csvPath string) (*sources.Registry, error) {
	amazon, err := sources.NewAmazonAdapter(mode)
	if err != nil {
		return nil, err
	}
	bestBuy, err := sources.NewBestBuyAdapter(cfg.Sources.BestBuyAPIKey, mode)
	if err != nil {
		return nil, err
	}
	walmart, err := sources.NewWalmartAdapter(cfg.Sources.WalmartAPIKey, mode)
	if err != nil {
		return nil, err
	}

	adapters := []sources.SourceAdapter{amazon, bestBuy, walmart}
	if csvPath != "" {
		adapters = append(adapters, sources.NewCSVAdapter(csvPath))
	}
	return sources.NewRegistry(adapters...), nil
}

// collect gathers records from the named adapters. One adapter failing is
// logged and skipped so a flaky retailer does not sink the whole run.
func collect(ctx context.Context, registry *sources.Registry, names []string, req sources.SearchRequest) ([]entities.SourceRecord, error) {
	var records []entities.SourceRecord
	for _, name := range names {
		adapter, err := registry.Get(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		recs, err := adapter.Search(ctx, req)
		if err != nil {
			log.Warn().Err(err).Str("adapter", adapter.Name()).Msg("adapter search failed, skipping")
			continue
		}
		records = append(records, recs...)
	}
	return records, nil
}

func writeOutputs(ranked []entities.RankedProduct, meta output.Metadata, formats, dir string) error {
	want := map[string]bool{}
	for _, f := range strings.Split(formats, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "all" {
			want["text"], want["json"], want["csv"], want["xlsx"] = true, true, true, true
			continue
		}
		want[f] = true
	}

	for f := range want {
		switch f {
		case "text":
			fmt.Println(output.FormatText(ranked, meta))
		case "json":
			doc, err := output.FormatJSON(ranked, meta)
			if err != nil {
				return err
			}
			fmt.Println(doc)
		case "csv":
			path, err := output.WriteCSV(ranked, dir)
			if err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("wrote CSV output")
		case "xlsx":
			path, err := output.WriteXLSX(ranked, meta, dir)
			if err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("wrote XLSX output")
		default:
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}
