package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gorhill/cronexpr"
)

// Scheduler runs all categories on a cron cadence. Ticks execute serially;
// a tick that overruns its slot simply delays the next one, which keeps the
// one-invocation-per-category constraint intact.
type Scheduler struct {
	Expr    *cronexpr.Expression
	DataDir string
	Timeout time.Duration
	Live    bool
	Logger  *log.Logger
}

// NewScheduler parses spec ("@hourly", "@daily" or a standard cron
// expression) and returns a scheduler over dataDir.
func NewScheduler(spec, dataDir string, timeout time.Duration, live bool) (*Scheduler, error) {
	expr, err := cronexpr.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}
	return &Scheduler{
		Expr:    expr,
		DataDir: dataDir,
		Timeout: timeout,
		Live:    live,
		Logger:  log.New(log.Writer(), "[WATCH] ", log.LstdFlags),
	}, nil
}

// Start blocks until ctx is cancelled, firing a full collection pass at each
// scheduled instant. Configuration errors abort the loop; everything else
// already degraded inside the run.
func (s *Scheduler) Start(ctx context.Context) error {
	for {
		next := s.Expr.Next(time.Now())
		if next.IsZero() {
			return fmt.Errorf("schedule yields no future run time")
		}
		s.Logger.Printf("next collection pass at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		results, err := RunAll(ctx, s.DataDir, s.Timeout, s.Live)
		if err != nil {
			return err
		}
		for _, res := range results {
			s.Logger.Printf("%s: %d signals (%s, fallback=%v), %d retained",
				res.Category, len(res.Signals), res.Mode, res.Fallback, res.Retained)
		}
	}
}
