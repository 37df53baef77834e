// Package engine evaluates hourly weather forecasts against severity bands
// and decides which recipients get notified, at which tier, honoring
// per-recipient cooldowns and the startup/daily status ping schedule.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-alarm-service/internal/domain"
	"github.com/couchcryptid/weather-alarm-service/internal/observability"
)

// ForecastSource fetches the hourly forecast window for a device. A fetch
// failure aborts the current cycle; the engine waits for the next tick.
type ForecastSource interface {
	FetchHourly(ctx context.Context, deviceID string) ([]domain.ForecastSample, error)
}

// Notifier hands one notification to the delivery gateway.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// Engine ties one alarm definition to its cooldown and ping state. All state
// is owned by the engine instance; engines for different weather parameters
// never share stores.
type Engine struct {
	cfg      domain.AlarmConfig
	metric   domain.MetricSpec
	source   ForecastSource
	notifier Notifier

	cooldowns *domain.CooldownStore
	pings     *domain.StatusPingTracker

	logger  *slog.Logger
	metrics *observability.Metrics

	// mu serializes cycles in case a slow fetch overlaps the next tick.
	mu    sync.Mutex
	ready atomic.Bool
}

// New creates an engine from a validated alarm definition. A *ConfigError
// means the alarm must be disabled; the caller skips it and keeps going.
func New(cfg domain.AlarmConfig, metric domain.MetricSpec, source ForecastSource, notifier Notifier, logger *slog.Logger, metrics *observability.Metrics) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:       cfg,
		metric:    metric,
		source:    source,
		notifier:  notifier,
		cooldowns: domain.NewCooldownStore(),
		pings:     domain.NewStatusPingTracker(),
		logger:    logger.With("alarm", cfg.Name),
		metrics:   metrics,
	}, nil
}

// Name returns the alarm's configured name.
func (e *Engine) Name() string {
	return e.cfg.Name
}

// Ready reports whether the engine has completed at least one cycle.
func (e *Engine) Ready() bool {
	return e.ready.Load()
}

// RunCycle performs one full evaluation: status pings, forecast fetch, band
// matching over the window, and cooldown-gated dispatch. It never returns an
// error; every failure mode is non-fatal to the process and resolves on a
// later tick.
func (e *Engine) RunCycle(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	now := clock.Now()
	e.logger.Info("evaluation cycle started", "device_id", e.cfg.DeviceID)

	// Pings are driven by wall-clock time only, so they go out even when the
	// forecast fetch below fails.
	e.sendStatusPings(ctx, now)

	samples, err := e.source.FetchHourly(ctx, e.cfg.DeviceID)
	if err != nil {
		e.logger.Error("forecast fetch failed, aborting cycle", "error", err)
		e.metrics.FetchErrors.Inc()
		return
	}

	hits := e.scanWindow(samples)
	e.dispatchAlarms(ctx, hits, now)

	e.ready.Store(true)
	e.metrics.CyclesTotal.WithLabelValues(e.cfg.Name).Inc()
	e.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	e.logger.Info("evaluation cycle finished", "samples", len(samples), "bands_hit", len(hits))
}

// occurrence is the representative sample for one band within a cycle: the
// earliest sample in the window that matched the band.
type occurrence struct {
	value     float64
	timestamp time.Time
}

// scanWindow resolves each sample to a band in chronological order. Samples
// with no value for the watched metric are skipped. Later samples matching a
// band that already has a representative do not overwrite it.
func (e *Engine) scanWindow(samples []domain.ForecastSample) map[int]occurrence {
	hits := make(map[int]occurrence)
	for _, s := range samples {
		value, ok := e.metric.Extract(s)
		if !ok {
			e.logger.Debug("sample has no value for metric", "field", e.metric.Field, "timestamp", s.Timestamp)
			e.metrics.SamplesMissing.Inc()
			continue
		}
		e.metrics.SamplesEvaluated.Inc()

		idx, matched := e.cfg.Bands.Match(value)
		if !matched {
			continue
		}
		if _, seen := hits[idx]; seen {
			continue
		}
		e.logger.Info("threshold crossed",
			"metric", e.metric.Description,
			"value", value,
			"unit", e.metric.Unit,
			"message", e.cfg.Bands[idx].Message,
			"forecast_time", s.Timestamp,
		)
		hits[idx] = occurrence{value: value, timestamp: s.Timestamp}
	}
	return hits
}

// dispatchAlarms sends one notification per eligible (band, recipient) pair.
// A dispatch failure is logged and the cooldown is not recorded, so the next
// qualifying cycle retries; it never stops the remaining pairs.
func (e *Engine) dispatchAlarms(ctx context.Context, hits map[int]occurrence, now time.Time) {
	for idx := range e.cfg.Bands {
		occ, ok := hits[idx]
		if !ok {
			continue
		}
		band := e.cfg.Bands[idx]

		for _, r := range e.cfg.Recipients {
			if !e.cooldowns.IsEligible(r.Target, idx, band.Cooldown, now) {
				e.logger.Debug("cooldown active", "recipient", r.Target, "message", band.Message)
				e.metrics.CooldownSuppressed.Inc()
				continue
			}

			if err := e.notifier.Send(ctx, e.alarmNotification(r, band, occ, now)); err != nil {
				e.logger.Warn("notification dispatch failed", "recipient", r.Target, "error", err)
				e.metrics.DispatchErrors.Inc()
				continue
			}

			e.cooldowns.Record(r.Target, idx, now)
			e.metrics.NotificationsSent.WithLabelValues(domain.KindAlarm).Inc()
			e.logger.Info("alarm notification sent", "recipient", r.Target, "message", band.Message)
		}
	}
}

// sendStatusPings dispatches startup and daily pings that are due. The ping
// state is recorded by the tracker query itself, so a failed send is not
// retried until the next startup or the next day.
func (e *Engine) sendStatusPings(ctx context.Context, now time.Time) {
	for _, r := range e.cfg.Recipients {
		if !e.pings.ShouldSendStartup(r, now) && !e.pings.ShouldSendDaily(r, now) {
			continue
		}

		if err := e.notifier.Send(ctx, e.statusNotification(r, now)); err != nil {
			e.logger.Warn("status ping dispatch failed", "recipient", r.Target, "error", err)
			e.metrics.DispatchErrors.Inc()
			continue
		}

		e.metrics.NotificationsSent.WithLabelValues(domain.KindStatus).Inc()
		e.logger.Info("status ping sent", "recipient", r.Target)
	}
}
