package runner

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/signal"
	"github.com/saf-hub/sentinel/internal/store"
)

type stubStrategy struct {
	mode  signal.Mode
	cands []signal.Candidate
	err   error
	calls int
}

func (s *stubStrategy) Fetch(_ context.Context, _ int) ([]signal.Candidate, error) {
	s.calls++
	return s.cands, s.err
}

func (s *stubStrategy) Mode() signal.Mode { return s.mode }

func cand(title string) signal.Candidate {
	return signal.Candidate{Source: "stub", Title: title, DiscoveredAt: time.Now()}
}

func testRunner(t *testing.T, def catalog.Definition, live, synthetic *stubStrategy) *Runner {
	t.Helper()
	return &Runner{
		Def:       def,
		Store:     store.New(def.Category, t.TempDir()),
		Synthetic: synthetic,
		Live:      live,
		Logger:    log.New(io.Discard, "", 0),
	}
}

func TestRunSyntheticByDefault(t *testing.T) {
	live := &stubStrategy{mode: signal.ModeLive, cands: []signal.Candidate{cand("live")}}
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{cand("synthetic")}}
	r := testRunner(t, catalog.Regulatory(), live, synth)

	res, err := r.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if live.calls != 0 {
		t.Fatalf("live strategy invoked %d times without live mode", live.calls)
	}
	if res.Mode != signal.ModeSynthetic || res.Fallback {
		t.Fatalf("mode = %q fallback = %v, want synthetic / false", res.Mode, res.Fallback)
	}
	if len(res.Signals) != 1 || res.Signals[0].Mode != signal.ModeSynthetic {
		t.Fatalf("unexpected signals: %+v", res.Signals)
	}
}

func TestRunLiveSuccessSkipsFallback(t *testing.T) {
	live := &stubStrategy{mode: signal.ModeLive, cands: []signal.Candidate{cand("a"), cand("b")}}
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{cand("s")}}
	r := testRunner(t, catalog.Regulatory(), live, synth)

	res, err := r.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if synth.calls != 0 {
		t.Fatalf("synthetic invoked %d times despite live success", synth.calls)
	}
	if res.Mode != signal.ModeLive || res.Fallback {
		t.Fatalf("mode = %q fallback = %v, want live / false", res.Mode, res.Fallback)
	}
	for _, sg := range res.Signals {
		if sg.Mode != signal.ModeLive {
			t.Fatalf("signal tagged %q, want live", sg.Mode)
		}
	}
}

func TestRunFallsBackExactlyOnce(t *testing.T) {
	// An empty live harvest must degrade to synthetic and still produce a
	// non-empty result; the live strategy is not retried.
	live := &stubStrategy{mode: signal.ModeLive}
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{cand("s1"), cand("s2")}}
	r := testRunner(t, catalog.Regulatory(), live, synth)

	res, err := r.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if live.calls != 1 || synth.calls != 1 {
		t.Fatalf("calls live=%d synth=%d, want 1/1", live.calls, synth.calls)
	}
	if !res.Fallback || res.Mode != signal.ModeSynthetic {
		t.Fatalf("fallback = %v mode = %q", res.Fallback, res.Mode)
	}
	if len(res.Signals) == 0 {
		t.Fatal("degraded run produced no signals")
	}
}

func TestRunConfigurationError(t *testing.T) {
	live := &stubStrategy{mode: signal.ModeLive}
	synth := &stubStrategy{mode: signal.ModeSynthetic}
	r := testRunner(t, catalog.Regulatory(), live, synth)

	_, err := r.Run(context.Background(), true)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
	if cfgErr.Category != signal.CategoryRegulatory {
		t.Fatalf("category = %q", cfgErr.Category)
	}
}

func TestRunDropsMalformedCandidates(t *testing.T) {
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{
		cand("good"),
		{Source: "stub"},            // no title
		{Title: "orphaned update"},  // no source
	}}
	r := testRunner(t, catalog.Regulatory(), &stubStrategy{mode: signal.ModeLive}, synth)

	res, err := r.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Signals) != 1 || res.Signals[0].Title != "good" {
		t.Fatalf("unexpected signals: %+v", res.Signals)
	}
}

func TestRunPersistsSummary(t *testing.T) {
	def := catalog.Community()
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{
		{Source: "stub", Title: "t", DiscoveredAt: time.Now(), Payload: map[string]any{"sentiment": "Very Positive"}},
	}}
	r := testRunner(t, def, &stubStrategy{mode: signal.ModeLive}, synth)

	res, err := r.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Summary == nil {
		t.Fatal("community run produced no summary")
	}
	if res.Summary["overall"] != "Very Positive" {
		t.Fatalf("overall = %v", res.Summary["overall"])
	}

	reloaded := r.Store.Load()
	if reloaded.Summary == nil {
		t.Fatal("summary not persisted")
	}
}

func TestRunEnforcesCapacity(t *testing.T) {
	def := catalog.Regulatory()
	def.Capacity = 3
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{
		cand("a"), cand("b"), cand("c"), cand("d"), cand("e"),
	}}
	r := testRunner(t, def, &stubStrategy{mode: signal.ModeLive}, synth)

	res, err := r.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Retained != 3 {
		t.Fatalf("retained %d, want 3", res.Retained)
	}
}

func TestRunAllCoversEveryCategory(t *testing.T) {
	dir := t.TempDir()
	results, err := RunAll(context.Background(), dir, time.Second, false)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != len(catalog.All()) {
		t.Fatalf("got %d results, want %d", len(results), len(catalog.All()))
	}
	for _, res := range results {
		if len(res.Signals) == 0 {
			t.Fatalf("%s produced no signals", res.Category)
		}
		st := store.New(res.Category, dir)
		if st.IsNotExist() {
			t.Fatalf("%s store not written", res.Category)
		}
		if got := len(st.Load().Signals); got != res.Retained {
			t.Fatalf("%s: retained %d on disk, result says %d", res.Category, got, res.Retained)
		}
	}
}

func TestRunPersistenceFailureSurfaces(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are advisory for root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(dir, 0o755)

	def := catalog.Regulatory()
	synth := &stubStrategy{mode: signal.ModeSynthetic, cands: []signal.Candidate{cand("x")}}
	r := &Runner{
		Def:       def,
		Store:     store.New(def.Category, dir),
		Synthetic: synth,
		Live:      &stubStrategy{mode: signal.ModeLive},
		Logger:    log.New(io.Discard, "", 0),
	}
	if _, err := r.Run(context.Background(), false); err == nil {
		t.Fatal("expected persistence failure")
	}
}
