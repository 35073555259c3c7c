package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

func sigAt(ts time.Time, title string) signal.Signal {
	return signal.Signal{
		Timestamp: ts.UTC(),
		Category:  signal.CategoryRegulatory,
		Source:    "test",
		Title:     title,
		Mode:      signal.ModeSynthetic,
	}
}

func sorted(signals []signal.Signal) bool {
	for i := 1; i < len(signals); i++ {
		if signals[i].Timestamp.After(signals[i-1].Timestamp) {
			return false
		}
	}
	return true
}

func TestMergeSortsDescendingAndTruncates(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	var existing, incoming []signal.Signal
	for i := 0; i < 4; i++ {
		existing = append(existing, sigAt(base.Add(time.Duration(i)*time.Hour), fmt.Sprintf("old-%d", i)))
	}
	for i := 0; i < 4; i++ {
		incoming = append(incoming, sigAt(base.Add(time.Duration(i+2)*time.Hour), fmt.Sprintf("new-%d", i)))
	}

	merged := Merge(existing, incoming, 5)
	if len(merged) != 5 {
		t.Fatalf("len = %d, want 5", len(merged))
	}
	if !sorted(merged) {
		t.Fatal("merge result not sorted by timestamp descending")
	}
	if merged[0].Title != "new-3" {
		t.Fatalf("newest = %q, want new-3", merged[0].Title)
	}
}

func TestMergeIsStableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := []signal.Signal{sigAt(ts, "first"), sigAt(ts, "second")}
	incoming := []signal.Signal{sigAt(ts, "third")}

	merged := Merge(existing, incoming, 10)
	want := []string{"first", "second", "third"}
	for i, title := range want {
		if merged[i].Title != title {
			t.Fatalf("merged[%d] = %q, want %q", i, merged[i].Title, title)
		}
	}
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	s := New(signal.CategoryRegulatory, t.TempDir())
	env := s.Load()
	if len(env.Signals) != 0 || env.Summary != nil {
		t.Fatalf("expected empty envelope, got %+v", env)
	}
}

func TestLoadCorruptFileYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := New(signal.CategoryRegulatory, dir)
	if err := os.WriteFile(s.Path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seeding corrupt file: %v", err)
	}
	env := s.Load()
	if len(env.Signals) != 0 {
		t.Fatalf("corrupt store yielded %d signals", len(env.Signals))
	}
}

func TestMergeAndPersistRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(signal.CategoryCommunity, dir)

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	incoming := []signal.Signal{sigAt(base, "a"), sigAt(base.Add(time.Hour), "b")}
	summary := map[string]any{"overall": "Positive"}

	env, err := s.MergeAndPersist(incoming, 30, summary)
	if err != nil {
		t.Fatalf("MergeAndPersist: %v", err)
	}
	if len(env.Signals) != 2 {
		t.Fatalf("persisted %d signals, want 2", len(env.Signals))
	}

	reloaded := s.Load()
	if len(reloaded.Signals) != len(env.Signals) {
		t.Fatalf("round trip: %d signals, want %d", len(reloaded.Signals), len(env.Signals))
	}
	for i := range env.Signals {
		if !reloaded.Signals[i].Timestamp.Equal(env.Signals[i].Timestamp) ||
			reloaded.Signals[i].Title != env.Signals[i].Title {
			t.Fatalf("round trip mismatch at %d: %+v vs %+v", i, reloaded.Signals[i], env.Signals[i])
		}
	}
	if reloaded.Summary["overall"] != "Positive" {
		t.Fatalf("summary lost in round trip: %+v", reloaded.Summary)
	}
	if reloaded.LastUpdated.IsZero() {
		t.Fatal("last_updated not persisted")
	}
}

func TestCapacityEnforcedAcrossRuns(t *testing.T) {
	// Pre-populate 28 records, add 5: the store must hold exactly 30 and
	// the 3 oldest of the original 28 must be gone.
	dir := t.TempDir()
	s := New(signal.CategoryFunding, dir)
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	var seed []signal.Signal
	for i := 0; i < 28; i++ {
		seed = append(seed, sigAt(base.Add(time.Duration(i)*time.Hour), fmt.Sprintf("seed-%d", i)))
	}
	if _, err := s.MergeAndPersist(seed, 30, nil); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	var fresh []signal.Signal
	for i := 0; i < 5; i++ {
		fresh = append(fresh, sigAt(base.Add(time.Duration(100+i)*time.Hour), fmt.Sprintf("fresh-%d", i)))
	}
	env, err := s.MergeAndPersist(fresh, 30, nil)
	if err != nil {
		t.Fatalf("merging: %v", err)
	}

	if len(env.Signals) != 30 {
		t.Fatalf("retained %d signals, want 30", len(env.Signals))
	}
	if !sorted(env.Signals) {
		t.Fatal("retained sequence not sorted")
	}
	titles := map[string]bool{}
	for _, sg := range env.Signals {
		titles[sg.Title] = true
	}
	for _, dropped := range []string{"seed-0", "seed-1", "seed-2"} {
		if titles[dropped] {
			t.Fatalf("%s should have been truncated", dropped)
		}
	}
	if !titles["seed-3"] || !titles["fresh-4"] {
		t.Fatal("expected survivors missing")
	}
}

func TestRepeatedRunsKeepMostRecentK(t *testing.T) {
	// Idempotent truncation law: after every run the store holds exactly
	// the K most-recent-by-timestamp records seen so far.
	dir := t.TempDir()
	s := New(signal.CategoryFeedstockPrice, dir)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	const k = 10

	var all []signal.Signal
	for run := 0; run < 5; run++ {
		var batch []signal.Signal
		for i := 0; i < 4; i++ {
			ts := base.Add(time.Duration(run*4+i) * time.Hour)
			batch = append(batch, sigAt(ts, fmt.Sprintf("r%d-%d", run, i)))
		}
		all = append(all, batch...)

		env, err := s.MergeAndPersist(batch, k, nil)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}

		wantLen := len(all)
		if wantLen > k {
			wantLen = k
		}
		if len(env.Signals) != wantLen {
			t.Fatalf("run %d: retained %d, want %d", run, len(env.Signals), wantLen)
		}
		// Newest overall record must always be present.
		if env.Signals[0].Title != all[len(all)-1].Title {
			t.Fatalf("run %d: newest = %q, want %q", run, env.Signals[0].Title, all[len(all)-1].Title)
		}
	}
}

func TestPersistReplacesWholesale(t *testing.T) {
	dir := t.TempDir()
	s := New(signal.CategoryMarketAccess, dir)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	for run := 0; run < 4; run++ {
		batch := []signal.Signal{sigAt(base.Add(time.Duration(run)*time.Hour), fmt.Sprintf("run-%d", run))}
		if _, err := s.MergeAndPersist(batch, 2, nil); err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("store file not valid JSON: %v", err)
	}
	if len(env.Signals) != 2 {
		t.Fatalf("file grew past capacity: %d signals", len(env.Signals))
	}

	// No temp files left behind by the atomic replace.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(s.Path) {
			t.Fatalf("stray file in data dir: %s", e.Name())
		}
	}
}

func TestPersistFailureSurfaces(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are advisory for root")
	}
	dir := t.TempDir()
	sub := filepath.Join(dir, "ro")
	if err := os.MkdirAll(sub, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	s := New(signal.CategoryFunding, sub)
	if _, err := s.MergeAndPersist([]signal.Signal{sigAt(time.Now(), "x")}, 10, nil); err == nil {
		t.Fatal("expected persistence failure on read-only directory")
	}
}
