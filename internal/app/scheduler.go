package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires the orchestrator at fixed daily wall-clock times plus a
// periodic interval job, all in UTC.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers one cron entry per "HH:MM" daily time and one
// interval entry. The per-entry chain drops a tick that fires while the
// same entry is still running; cross-entry overlap is prevented by the
// orchestrator's own run guard, which every entry funnels through.
func NewScheduler(orchestrator *Orchestrator, dailyTimes []string, interval time.Duration) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	job := func() {
		orchestrator.RunOnce(context.Background())
	}

	for _, t := range dailyTimes {
		spec, err := dailyTimeToSpec(t)
		if err != nil {
			return nil, err
		}
		if _, err := c.AddFunc(spec, job); err != nil {
			return nil, fmt.Errorf("schedule daily job at %s: %w", t, err)
		}
		slog.Info("daily job scheduled", "time", t)
	}

	if interval > 0 {
		spec := fmt.Sprintf("@every %s", interval)
		if _, err := c.AddFunc(spec, job); err != nil {
			return nil, fmt.Errorf("schedule interval job: %w", err)
		}
		slog.Info("interval job scheduled", "every", interval)
	}

	return &Scheduler{cron: c}, nil
}

// Start begins dispatching jobs until the context is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

// dailyTimeToSpec converts "HH:MM" into a standard 5-field cron spec.
func dailyTimeToSpec(t string) (string, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid daily time %q, want HH:MM", t)
	}
	return fmt.Sprintf("%s %s * * *", parts[1], parts[0]), nil
}
