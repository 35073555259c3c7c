package fetch

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/signal"
)

// Synthetic samples without replacement from the category's fixed catalog.
// Shapes are deterministic; values (timestamps, scores, randomized payload
// fields) are not, so tests assert ranges rather than exact values.
type Synthetic struct {
	Def  catalog.Definition
	Rand *rand.Rand
	Now  func() time.Time
}

// NewSynthetic builds a synthetic strategy with a time-seeded source.
func NewSynthetic(def catalog.Definition) *Synthetic {
	return &Synthetic{
		Def:  def,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:  time.Now,
	}
}

func (s *Synthetic) Mode() signal.Mode { return signal.ModeSynthetic }

// Fetch samples catalog entries: exactly limit of them when limit > 0
// (capped at the catalog size), otherwise a randomized batch of MinCount to
// MaxCount. Each candidate gets a timestamp jittered into the look-back
// window and, when the entry or the definition carries one, a relevance
// score.
func (s *Synthetic) Fetch(_ context.Context, limit int) ([]signal.Candidate, error) {
	if len(s.Def.Entries) == 0 {
		return nil, nil
	}

	n := s.batchSize(limit)
	picks := s.Rand.Perm(len(s.Def.Entries))[:n]

	now := s.Now()
	candidates := make([]signal.Candidate, 0, n)
	for _, idx := range picks {
		entry := s.Def.Entries[idx]

		payload := make(map[string]any, len(entry.Payload))
		for k, v := range entry.Payload {
			payload[k] = v
		}
		if s.Def.Randomize != nil {
			payload = s.Def.Randomize(s.Rand, payload)
		}

		cand := signal.Candidate{
			Source:       entry.Source,
			Title:        entry.Title,
			DiscoveredAt: s.jitter(now),
			Payload:      payload,
		}
		switch {
		case entry.Score != nil:
			cand.Relevance = signal.Score(*entry.Score)
		case s.Def.ScoreMax > s.Def.ScoreMin:
			score := s.Def.ScoreMin + math.Floor(s.Rand.Float64()*(s.Def.ScoreMax-s.Def.ScoreMin+1))
			cand.Relevance = signal.Score(score)
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

func (s *Synthetic) batchSize(limit int) int {
	if limit > 0 {
		if limit > len(s.Def.Entries) {
			return len(s.Def.Entries)
		}
		return limit
	}
	lo, hi := s.Def.MinCount, s.Def.MaxCount
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	n := lo + s.Rand.Intn(hi-lo+1)
	if n > len(s.Def.Entries) {
		n = len(s.Def.Entries)
	}
	return n
}

// jitter places a synthetic discovery time uniformly within the look-back
// window. Historical spread is required for realistic ordering; the current
// instant alone would collapse every run onto one timestamp.
func (s *Synthetic) jitter(now time.Time) time.Time {
	if s.Def.LookBack <= 0 {
		return now
	}
	back := time.Duration(s.Rand.Int63n(int64(s.Def.LookBack)))
	return now.Add(-back)
}
