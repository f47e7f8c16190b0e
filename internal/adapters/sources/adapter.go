package sources

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/keebscout/keebscout/internal/domain/entities"
	apperrors "github.com/keebscout/keebscout/pkg/errors"
	"github.com/keebscout/keebscout/pkg/utils"
)

// Mode selects where an adapter gets its data from.
type Mode string

const (
	// ModeAuto uses the retailer API when a key is configured, seed data otherwise.
	ModeAuto Mode = "auto"
	// ModeSeed always returns the curated seed dataset.
	ModeSeed Mode = "seed"
	// ModeOnline requires the retailer API; a missing key is an error.
	ModeOnline Mode = "online"
)

// SearchRequest carries the common search parameters for every adapter.
type SearchRequest struct {
	Query      string
	ShipToZip  string
	MaxResults int
}

// SourceAdapter is the interface every retailer adapter satisfies.
// Adapters emit loosely-typed source records with canonical keys; the
// normalizer owns type coercion. Field mapping from each retailer's
// payload shape lives entirely inside its adapter.
type SourceAdapter interface {
	Name() string
	Search(ctx context.Context, req SearchRequest) ([]entities.SourceRecord, error)
}

// Registry holds the configured source adapters by name.
type Registry struct {
	adapters map[string]SourceAdapter
}

// NewRegistry creates a registry from the given adapters.
func NewRegistry(adapters ...SourceAdapter) *Registry {
	r := &Registry{adapters: make(map[string]SourceAdapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[strings.ToLower(a.Name())] = a
	}
	return r
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (SourceAdapter, error) {
	adapter, ok := r.adapters[strings.ToLower(name)]
	if !ok {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("unknown adapter %q (available: %s)", name, strings.Join(r.List(), ", ")),
		)
	}
	return adapter, nil
}

// List returns the registered adapter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// genericQueryTerms covers the category queries that should match the
// whole seed dataset rather than be matched word-by-word against titles.
const genericQueryTerms = "ergonomic keyboard mechanical"

// matchesQuery reports whether a seed product title matches the search
// query. Generic category queries match everything; anything more specific
// requires at least one query word in the title.
func matchesQuery(query, title string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || strings.Contains(genericQueryTerms, q) {
		return true
	}
	for _, word := range strings.Fields(q) {
		if utils.ContainsFold(title, word) {
			return true
		}
	}
	return false
}

// missingKeyError builds the EXTERNAL error returned when online mode is
// requested without the required API key.
func missingKeyError(adapterName string, envVars ...string) error {
	return apperrors.NewExternalError(
		fmt.Sprintf("[%s] online mode requires an API key; set %s",
			adapterName, strings.Join(envVars, ", ")),
		nil,
	)
}
