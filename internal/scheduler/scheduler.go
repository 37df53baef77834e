// Package scheduler drives alarm engines: one immediate evaluation per
// engine at startup, then a fixed-interval tick for each.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Runner is one alarm engine's operational surface.
type Runner interface {
	Name() string
	Ready() bool
	RunCycle(ctx context.Context)
}

// Scheduler owns the periodic evaluation ticks for a set of engines.
type Scheduler struct {
	engines  []Runner
	interval time.Duration
	logger   *slog.Logger
	cron     *cron.Cron
}

// New creates a scheduler ticking every interval.
func New(engines []Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		engines:  engines,
		interval: interval,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start runs every engine once immediately, then begins the periodic ticks.
// ctx bounds the startup cycles and all ticked cycles.
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.engines) == 0 {
		return errors.New("no enabled alarm engines to schedule")
	}

	spec := fmt.Sprintf("@every %s", s.interval)
	for _, e := range s.engines {
		if _, err := s.cron.AddFunc(spec, func() { e.RunCycle(ctx) }); err != nil {
			return fmt.Errorf("schedule alarm %s: %w", e.Name(), err)
		}
	}

	s.logger.Info("scheduler starting", "engines", len(s.engines), "interval", s.interval)

	for _, e := range s.engines {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		e.RunCycle(ctx)
	}

	s.cron.Start()
	return nil
}

// Stop halts the ticks and waits for any in-flight cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// CheckReadiness returns nil once every engine has completed at least one
// evaluation cycle.
func (s *Scheduler) CheckReadiness(_ context.Context) error {
	for _, e := range s.engines {
		if !e.Ready() {
			return fmt.Errorf("alarm %s has not completed an evaluation cycle yet", e.Name())
		}
	}
	return nil
}
