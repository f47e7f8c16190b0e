package output

import (
	"fmt"
	"strings"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

// FormatText renders ranked results as a markdown table with a score
// breakdown, suitable for stdout or piping to other tools.
func FormatText(ranked []entities.RankedProduct, meta Metadata) string {
	var lines []string

	header := []string{}
	if meta.Query != "" {
		header = append(header, fmt.Sprintf("Query: %s", meta.Query))
	}
	if meta.Budget != nil {
		header = append(header, fmt.Sprintf("Budget: $%s", meta.Budget.StringFixed(0)))
	}
	if meta.Mode != "" {
		header = append(header, fmt.Sprintf("Mode: %s", meta.Mode))
	}
	header = append(header, fmt.Sprintf("Results: %d", len(ranked)))
	lines = append(lines, "**Keyboard Shopping Results** | "+strings.Join(header, " | "), "")

	lines = append(lines,
		"| # | Product | Brand | Price | Score | Ergo | Review | Value | Build | Store |",
		"|---|---------|-------|-------|-------|------|--------|-------|-------|-------|",
	)

	for i, rp := range ranked {
		p := rp.Product
		s := rp.Score
		lines = append(lines, fmt.Sprintf(
			"| %d | %s | %s | %s | %g | %g | %g | %g | %g | %s |",
			i+1, p.Title, p.Brand, priceDisplay(p),
			s.Total, s.Ergonomics, s.Reviews, s.Value, s.Build,
			p.SourceSite,
		))
	}
	lines = append(lines, "")

	hasReviews := false
	for _, rp := range ranked {
		if len(rp.Reviews) > 0 {
			hasReviews = true
			break
		}
	}
	if hasReviews {
		lines = append(lines, "### Pro Reviews", "")
		for _, rp := range ranked {
			if len(rp.Reviews) == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("**%s**", rp.Product.Title))
			for _, r := range rp.Reviews {
				lines = append(lines, fmt.Sprintf("- _%s_: %s", r.Source, r.Verdict))
			}
			lines = append(lines, "")
		}
	}

	w := meta.Weights
	lines = append(lines, fmt.Sprintf(
		"_Scoring weights: Ergo %.0f%%, Review %.0f%%, Value %.0f%%, Build %.0f%%_",
		w.Ergonomics*100, w.Reviews*100, w.Value*100, w.Build*100,
	))

	return strings.Join(lines, "\n")
}
