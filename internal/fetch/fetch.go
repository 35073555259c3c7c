// Package fetch provides the two interchangeable candidate-producing
// strategies: a synthetic generator sampling from a fixed catalog and a live
// collector querying external sources behind a relevance filter.
package fetch

import (
	"context"
	"errors"

	"github.com/saf-hub/sentinel/internal/signal"
)

// ErrSourceUnavailable marks a live source failure (network, timeout,
// parse). It never crosses the Strategy boundary: the live strategy absorbs
// it and reports zero candidates instead.
var ErrSourceUnavailable = errors.New("source unavailable")

// Strategy produces raw candidate records for one category. A limit <= 0
// leaves the batch size to the strategy.
type Strategy interface {
	Fetch(ctx context.Context, limit int) ([]signal.Candidate, error)
	Mode() signal.Mode
}
