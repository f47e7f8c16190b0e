package output

import (
	"encoding/json"
	"fmt"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

// jsonResult flattens one ranked product for the JSON surface.
type jsonResult struct {
	Rank int `json:"rank"`
	*entities.Product
	Scores  entities.ScoreBreakdown  `json:"scores"`
	Reviews []entities.CuratedReview `json:"pro_reviews"`
}

// jsonDocument is the envelope of the JSON surface.
type jsonDocument struct {
	Metadata Metadata     `json:"metadata"`
	Results  []jsonResult `json:"results"`
}

// FormatJSON renders ranked results as structured, indented JSON with the
// run metadata alongside.
func FormatJSON(ranked []entities.RankedProduct, meta Metadata) (string, error) {
	meta.Count = len(ranked)

	doc := jsonDocument{
		Metadata: meta,
		Results:  make([]jsonResult, len(ranked)),
	}
	for i, rp := range ranked {
		reviews := rp.Reviews
		if reviews == nil {
			reviews = []entities.CuratedReview{}
		}
		doc.Results[i] = jsonResult{
			Rank:    i + 1,
			Product: rp.Product,
			Scores:  rp.Score,
			Reviews: reviews,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render JSON output: %w", err)
	}
	return string(data), nil
}
