package signal

import (
	"fmt"
	"strings"
	"time"
)

// Category identifies one independent signal domain. Each category owns its
// own retention store, keyword set and capacity.
type Category string

const (
	CategoryFunding        Category = "funding"
	CategoryCommunity      Category = "community"
	CategoryFeedstockPrice Category = "feedstock-price"
	CategoryMarketAccess   Category = "market-access"
	CategoryRegulatory     Category = "regulatory"
	CategoryTechnology     Category = "technology"
)

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryFunding,
		CategoryCommunity,
		CategoryFeedstockPrice,
		CategoryMarketAccess,
		CategoryRegulatory,
		CategoryTechnology,
	}
}

// ParseCategory resolves a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Mode records which fetch strategy produced a signal. It is set once by the
// producing strategy and never altered downstream.
type Mode string

const (
	ModeSynthetic Mode = "synthetic"
	ModeLive      Mode = "live"
)

// Signal is the canonical record every category emits. The payload is opaque
// to the pipeline; only its presence matters here.
type Signal struct {
	Timestamp time.Time      `json:"timestamp"`
	Category  Category       `json:"category"`
	Source    string         `json:"source"`
	Title     string         `json:"title"`
	Payload   map[string]any `json:"payload,omitempty"`
	Mode      Mode           `json:"mode"`
	Relevance *float64       `json:"relevance,omitempty"`
}

// Candidate is a raw record produced by a fetch strategy before
// normalization. Live sources fill DiscoveredAt from the feed item when the
// feed carries one; synthetic generators pre-jitter it into the look-back
// window.
type Candidate struct {
	Source       string
	Title        string
	DiscoveredAt time.Time
	Payload      map[string]any
	Relevance    *float64
}

// Normalize converts a raw candidate into a canonical Signal. It fails when
// the candidate lacks the minimum required fields; such failures are dropped
// by the caller, never propagated as run failures.
func Normalize(raw Candidate, cat Category, mode Mode) (Signal, error) {
	title := strings.TrimSpace(raw.Title)
	source := strings.TrimSpace(raw.Source)
	if title == "" {
		return Signal{}, fmt.Errorf("candidate rejected: missing title")
	}
	if source == "" {
		return Signal{}, fmt.Errorf("candidate rejected: missing source")
	}

	ts := raw.DiscoveredAt
	if ts.IsZero() {
		ts = time.Now()
	}

	return Signal{
		Timestamp: ts.UTC(),
		Category:  cat,
		Source:    source,
		Title:     title,
		Payload:   raw.Payload,
		Mode:      mode,
		Relevance: raw.Relevance,
	}, nil
}

// Score returns a pointer to v, for attaching optional relevance scores.
func Score(v float64) *float64 { return &v }
