// Package runner binds one category's fetch strategies, capacity and store
// location, and drives the load -> fetch -> merge -> persist cycle of a
// single batch tick.
package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/fetch"
	"github.com/saf-hub/sentinel/internal/signal"
	"github.com/saf-hub/sentinel/internal/store"
	"github.com/saf-hub/sentinel/internal/telemetry"
)

// ConfigurationError reports a category that can produce nothing at all: an
// empty synthetic catalog with no usable live source. There is no safe
// fallback, so it surfaces to the operator.
type ConfigurationError struct {
	Category signal.Category
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("category %s misconfigured: %s", e.Category, e.Reason)
}

// Result is the outcome of one category run.
type Result struct {
	RunID    string          `json:"run_id"`
	Category signal.Category `json:"category"`
	Mode     signal.Mode     `json:"mode"`
	Fallback bool            `json:"fallback"`
	Signals  []signal.Signal `json:"signals"`
	Summary  map[string]any  `json:"summary,omitempty"`
	Retained int             `json:"retained"`
}

// Runner executes batch ticks for one category. Each Run performs a fresh
// load/mutate/save cycle; nothing is cached between runs.
type Runner struct {
	Def       catalog.Definition
	Store     *store.Store
	Synthetic fetch.Strategy
	Live      fetch.Strategy
	Logger    *log.Logger
}

// New wires the default strategies for def with stores rooted at dataDir.
func New(def catalog.Definition, dataDir string, timeout time.Duration) *Runner {
	return &Runner{
		Def:       def,
		Store:     store.New(def.Category, dataDir),
		Synthetic: fetch.NewSynthetic(def),
		Live:      fetch.NewLive(def, timeout),
		Logger:    log.New(log.Writer(), "[RUNNER] ", log.LstdFlags),
	}
}

// Run executes one batch tick. With live requested the controller enters
// ATTEMPT_LIVE; an empty live harvest transitions unconditionally to
// USE_SYNTHETIC — at most once, with no retry loop between live attempts. A
// run never reports zero signals just because live collection found nothing
// relevant.
func (r *Runner) Run(ctx context.Context, live bool) (Result, error) {
	res := Result{
		RunID:    uuid.NewString(),
		Category: r.Def.Category,
		Mode:     signal.ModeSynthetic,
	}

	var signals []signal.Signal

	if live {
		res.Mode = signal.ModeLive
		signals = r.collect(ctx, r.Live)
		if len(signals) == 0 {
			r.Logger.Printf("warning: no live %s signals retrieved, falling back to synthetic", r.Def.Category)
			telemetry.Fallbacks.WithLabelValues(string(r.Def.Category)).Inc()
			res.Mode = signal.ModeSynthetic
			res.Fallback = true
		}
	}

	if res.Mode == signal.ModeSynthetic {
		signals = r.collect(ctx, r.Synthetic)
	}

	if len(signals) == 0 {
		reason := "synthetic catalog is empty"
		if live {
			reason = "live sources yielded nothing and the synthetic catalog is empty"
		}
		return Result{}, &ConfigurationError{Category: r.Def.Category, Reason: reason}
	}

	var summary map[string]any
	if r.Def.Summarize != nil {
		summary = r.Def.Summarize(signals)
	}

	env, err := r.Store.MergeAndPersist(signals, r.Def.Capacity, summary)
	if err != nil {
		return Result{}, err
	}

	telemetry.StoreSize.WithLabelValues(string(r.Def.Category)).Set(float64(len(env.Signals)))

	res.Signals = signals
	res.Summary = env.Summary
	res.Retained = len(env.Signals)
	return res, nil
}

// collect runs one strategy and normalizes its candidates. Malformed
// candidates are dropped, never propagated as run failures.
func (r *Runner) collect(ctx context.Context, strategy fetch.Strategy) []signal.Signal {
	cat := string(r.Def.Category)
	mode := strategy.Mode()

	telemetry.FetchAttempts.WithLabelValues(cat, string(mode)).Inc()
	started := time.Now()
	candidates, err := strategy.Fetch(ctx, 0)
	telemetry.FetchDuration.WithLabelValues(cat, string(mode)).Observe(time.Since(started).Seconds())
	if err != nil {
		// Strategies absorb source failures themselves; anything else is
		// still not fatal to the run.
		r.Logger.Printf("warning: %s %s fetch: %v", cat, mode, err)
		return nil
	}

	signals := make([]signal.Signal, 0, len(candidates))
	for _, cand := range candidates {
		sig, err := signal.Normalize(cand, r.Def.Category, mode)
		if err != nil {
			telemetry.RejectedCandidates.WithLabelValues(cat).Inc()
			continue
		}
		signals = append(signals, sig)
	}
	telemetry.SignalsCollected.WithLabelValues(cat, string(mode)).Add(float64(len(signals)))
	return signals
}

// RunAll executes every category serially in catalog order. Serial execution
// is deliberate: the load-then-overwrite persistence pattern is only safe
// with one invocation at a time per category.
func RunAll(ctx context.Context, dataDir string, timeout time.Duration, live bool) ([]Result, error) {
	var results []Result
	for _, def := range catalog.All() {
		r := New(def, dataDir, timeout)
		res, err := r.Run(ctx, live)
		if err != nil {
			return results, fmt.Errorf("running %s: %w", def.Category, err)
		}
		results = append(results, res)
	}
	return results, nil
}
