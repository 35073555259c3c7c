// Package search offers keyword search over the retained signal window. The
// index is built in memory from the persisted stores at query time; nothing
// is indexed beyond what retention keeps.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve"

	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/signal"
	"github.com/saf-hub/sentinel/internal/store"
)

// Hit pairs a matched signal with its search score.
type Hit struct {
	Signal signal.Signal `json:"signal"`
	Score  float64       `json:"score"`
}

// Index is an in-memory bleve index over every retained signal.
type Index struct {
	idx  bleve.Index
	byID map[string]signal.Signal
}

type document struct {
	Category string `json:"category"`
	Source   string `json:"source"`
	Title    string `json:"title"`
	Mode     string `json:"mode"`
}

// Build loads every category store under dataDir and indexes the retained
// signals.
func Build(dataDir string) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	byID := make(map[string]signal.Signal)
	for _, def := range catalog.All() {
		env := store.New(def.Category, dataDir).Load()
		for i, sig := range env.Signals {
			id := fmt.Sprintf("%s/%d", def.Category, i)
			doc := document{
				Category: string(sig.Category),
				Source:   sig.Source,
				Title:    sig.Title,
				Mode:     string(sig.Mode),
			}
			if err := idx.Index(id, doc); err != nil {
				idx.Close()
				return nil, fmt.Errorf("indexing %s: %w", id, err)
			}
			byID[id] = sig
		}
	}
	return &Index{idx: idx, byID: byID}, nil
}

// Query runs a bleve query-string search and returns up to limit hits in
// score order.
func (i *Index) Query(q string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}
	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(q), limit, 0, false)
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", q, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, match := range res.Hits {
		sig, ok := i.byID[match.ID]
		if !ok {
			continue
		}
		hits = append(hits, Hit{Signal: sig, Score: match.Score})
	}
	return hits, nil
}

// Size reports how many signals are indexed.
func (i *Index) Size() int { return len(i.byID) }

// Close releases the index.
func (i *Index) Close() error { return i.idx.Close() }
