// Package catalog holds the per-category collection profiles: synthetic
// catalogs, keyword sets, retention capacities and live source descriptors.
// Category differences are data here, not code; the generic pipeline in
// internal/runner consumes these definitions.
package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// SourceKind selects the decoder a live source needs.
type SourceKind string

const (
	// SourceRSS is an RSS/Atom feed filtered by the category keywords.
	SourceRSS SourceKind = "rss"
	// SourcePage is an HTML page reduced to readable text and filtered by
	// the category keywords.
	SourcePage SourceKind = "page"
	// SourceWorldBank is the World Bank projects JSON API.
	SourceWorldBank SourceKind = "worldbank"
	// SourceGCF is the Green Climate Fund projects JSON API.
	SourceGCF SourceKind = "gcf"
)

// LiveSource describes one external endpoint a category may query in live
// mode.
type LiveSource struct {
	Name string
	Kind SourceKind
	URL  string
}

// Entry is one synthetic catalog record. The payload shape is category
// specific and opaque to the pipeline.
type Entry struct {
	Source  string
	Title   string
	Payload map[string]any

	// Score, when set, is the entry's fixed relevance. It takes precedence
	// over the definition's randomized ScoreMin/ScoreMax range.
	Score *float64
}

// Definition binds everything one category needs: capacity, keyword set,
// synthetic catalog and live source descriptors.
type Definition struct {
	Category signal.Category
	Capacity int

	// Keywords gate live content. An empty set matches nothing.
	Keywords []string

	// LookBack is the synthetic timestamp jitter window.
	LookBack time.Duration

	// MinCount/MaxCount bound how many synthetic records one run samples.
	MinCount int
	MaxCount int

	// ScoreMin/ScoreMax bound the randomized relevance score attached to
	// synthetic records. Both zero means no score is attached.
	ScoreMin float64
	ScoreMax float64

	Entries []Entry
	Live    []LiveSource

	// Randomize, when set, perturbs a copy of the entry payload per run
	// (price jitter and the like).
	Randomize func(r *rand.Rand, payload map[string]any) map[string]any

	// Summarize, when set, derives a summary document from the run's
	// signals; it is persisted alongside the sequence.
	Summarize func(signals []signal.Signal) map[string]any
}

// All returns every category definition in stable order.
func All() []Definition {
	return []Definition{
		Funding(),
		Community(),
		FeedstockPrice(),
		MarketAccess(),
		Regulatory(),
		Technology(),
	}
}

// Get resolves the definition for one category.
func Get(cat signal.Category) (Definition, error) {
	for _, def := range All() {
		if def.Category == cat {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("no definition for category %q", cat)
}
