package entities

// CuratedReview is a professional review summary attached to a top-ranked
// product during enrichment. Reviews are curated editorial data, never
// computed by the pipeline.
type CuratedReview struct {
	Source    string `json:"source"`
	URL       string `json:"url,omitempty"`
	Pros      string `json:"pros"`
	Cons      string `json:"cons"`
	Verdict   string `json:"verdict"`
	BestFor   string `json:"best_for,omitempty"`
	ErgoNotes string `json:"ergo_notes,omitempty"`
}

// RankedProduct is one entry in the pipeline's final output: the product,
// its score breakdown, and any curated reviews attached by enrichment.
type RankedProduct struct {
	Product *Product        `json:"product"`
	Score   ScoreBreakdown  `json:"scores"`
	Reviews []CuratedReview `json:"pro_reviews,omitempty"`
}
