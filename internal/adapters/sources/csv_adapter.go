package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

// CSVAdapter loads listings from a user-provided CSV file. This is the
// bring-your-own-data path for retailers without a public API. Cell values
// stay strings; the normalizer owns all type coercion.
type CSVAdapter struct {
	filePath string
}

// NewCSVAdapter creates a CSV adapter for the given file path.
func NewCSVAdapter(filePath string) *CSVAdapter {
	return &CSVAdapter{filePath: filePath}
}

// Name returns the registry name
func (a *CSVAdapter) Name() string { return "csv" }

// Search reads the CSV file and returns each row as a source record keyed
// by the header columns.
func (a *CSVAdapter) Search(ctx context.Context, req SearchRequest) ([]entities.SourceRecord, error) {
	if a.filePath == "" {
		log.Warn().Str("adapter", a.Name()).Msg("no file path configured, returning no records")
		return nil, nil
	}

	f, err := os.Open(a.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV source: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV source: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	max := req.MaxResults
	if max <= 0 {
		max = len(rows) - 1
	}

	records := make([]entities.SourceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(records) >= max {
			break
		}
		rec := make(entities.SourceRecord, len(header)+1)
		for i, col := range header {
			if i < len(row) && row[i] != "" {
				rec[col] = row[i]
			}
		}
		if _, ok := rec["source_site"]; !ok {
			rec["source_site"] = "CSV"
		}
		if _, ok := rec["ship_to_zip"]; !ok {
			rec["ship_to_zip"] = req.ShipToZip
		}
		records = append(records, rec)
	}

	log.Info().Str("adapter", a.Name()).Str("path", a.filePath).Int("records", len(records)).Msg("loaded CSV records")
	return records, nil
}
