package catalog

import (
	"testing"

	"github.com/saf-hub/sentinel/internal/signal"
)

func TestDefinitionsAreComplete(t *testing.T) {
	defs := All()
	if len(defs) != len(signal.Categories()) {
		t.Fatalf("%d definitions for %d categories", len(defs), len(signal.Categories()))
	}
	seen := map[signal.Category]bool{}
	for _, def := range defs {
		if seen[def.Category] {
			t.Fatalf("duplicate definition for %s", def.Category)
		}
		seen[def.Category] = true

		if def.Capacity <= 0 {
			t.Errorf("%s: capacity %d", def.Category, def.Capacity)
		}
		if len(def.Entries) == 0 {
			t.Errorf("%s: empty synthetic catalog", def.Category)
		}
		if len(def.Keywords) == 0 {
			t.Errorf("%s: empty keyword set", def.Category)
		}
		if def.MinCount < 1 || def.MaxCount < def.MinCount {
			t.Errorf("%s: bad count range %d..%d", def.Category, def.MinCount, def.MaxCount)
		}
		for i, entry := range def.Entries {
			if entry.Source == "" || entry.Title == "" {
				t.Errorf("%s entry %d: missing source or title", def.Category, i)
			}
		}
	}
}

func TestGet(t *testing.T) {
	def, err := Get(signal.CategoryFunding)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if def.Category != signal.CategoryFunding {
		t.Fatalf("category = %s", def.Category)
	}
	if _, err := Get(signal.Category("weather")); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestSentimentSummary(t *testing.T) {
	mk := func(level string) signal.Signal {
		return signal.Signal{Payload: map[string]any{"sentiment": level}}
	}

	sum := sentimentSummary([]signal.Signal{mk("Very Positive"), mk("Positive")})
	if sum["overall"] != "Very Positive" {
		t.Fatalf("overall = %v", sum["overall"])
	}
	if sum["signal_count"] != 2 {
		t.Fatalf("signal_count = %v", sum["signal_count"])
	}

	sum = sentimentSummary([]signal.Signal{mk("Negative"), mk("Concerned")})
	if sum["overall"] != "Concerned" {
		t.Fatalf("overall = %v", sum["overall"])
	}

	sum = sentimentSummary(nil)
	if sum["overall"] != "Neutral" {
		t.Fatalf("empty summary overall = %v", sum["overall"])
	}
}
