// Package store persists per-category signal history as a single JSON
// document on disk. Each run performs one load -> merge -> persist cycle;
// no store instance outlives a run.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// Envelope is the on-disk document: the retained signal sequence plus an
// optional derived summary and the time of the last successful persist.
type Envelope struct {
	Signals     []signal.Signal `json:"signals"`
	Summary     map[string]any  `json:"summary,omitempty"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Store binds one category to one backing file. The path is injected so
// tests can point each store at a temporary location.
type Store struct {
	Category signal.Category
	Path     string
}

// New returns a store for cat backed by <dataDir>/<cat>.json.
func New(cat signal.Category, dataDir string) *Store {
	return &Store{Category: cat, Path: filepath.Join(dataDir, string(cat)+".json")}
}

// Load reads the backing file. A missing or structurally invalid file yields
// an empty envelope: corrupt persisted state is treated as absence, not as a
// fatal error.
func (s *Store) Load() Envelope {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return Envelope{}
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}
	}
	return env
}

// Merge concatenates existing and incoming, stable-sorts by timestamp
// descending and truncates to capacity. Records carry no identity beyond
// their content; no deduplication happens here.
func Merge(existing, incoming []signal.Signal, capacity int) []signal.Signal {
	merged := make([]signal.Signal, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)
	merged = append(merged, incoming...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	if capacity >= 0 && len(merged) > capacity {
		merged = merged[:capacity]
	}
	return merged
}

// MergeAndPersist merges incoming signals into the persisted history,
// enforces the retention capacity and writes the result back wholesale.
// The summary, when non-nil, replaces the previously stored one.
func (s *Store) MergeAndPersist(incoming []signal.Signal, capacity int, summary map[string]any) (Envelope, error) {
	existing := s.Load()

	env := Envelope{
		Signals:     Merge(existing.Signals, incoming, capacity),
		Summary:     existing.Summary,
		LastUpdated: time.Now().UTC(),
	}
	if summary != nil {
		env.Summary = summary
	}

	if err := s.write(env); err != nil {
		return Envelope{}, fmt.Errorf("persisting %s store: %w", s.Category, err)
	}
	return env, nil
}

// write replaces the backing file atomically: the document is written to a
// temp file in the same directory and renamed over the previous content, so
// a reader never observes a partial write.
func (s *Store) write(env Envelope) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+string(s.Category)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// IsNotExist reports whether the backing file is absent (as opposed to
// present but empty or corrupt).
func (s *Store) IsNotExist() bool {
	_, err := os.Stat(s.Path)
	return errors.Is(err, os.ErrNotExist)
}
