package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-alarm-service/internal/adapter/forecast"
	"github.com/couchcryptid/weather-alarm-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/weather-alarm-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-alarm-service/internal/config"
	"github.com/couchcryptid/weather-alarm-service/internal/engine"
	"github.com/couchcryptid/weather-alarm-service/internal/observability"
	"github.com/couchcryptid/weather-alarm-service/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	specs, err := config.LoadAlarms(cfg.AlarmConfigFile)
	if err != nil {
		logger.Error("failed to load alarm definitions", "error", err)
		os.Exit(1)
	}

	source := forecast.NewClient(cfg, logger)
	notifier := kafkaadapter.NewNotifier(cfg, logger)

	// An invalid definition disables that alarm only; the rest keep running.
	engines := make([]scheduler.Runner, 0, len(specs))
	for _, spec := range specs {
		alarm, err := spec.Build()
		if err != nil {
			logger.Error("alarm disabled by invalid config", "alarm", spec.Name, "error", err)
			continue
		}
		eng, err := engine.New(alarm.Config, alarm.Metric, source, notifier, logger, metrics)
		if err != nil {
			logger.Error("alarm disabled by invalid config", "alarm", spec.Name, "error", err)
			continue
		}
		engines = append(engines, eng)
		logger.Info("alarm enabled",
			"alarm", alarm.Config.Name,
			"parameter", spec.Parameter,
			"bands", len(alarm.Config.Bands),
			"recipients", len(alarm.Config.Recipients),
		)
	}
	if len(engines) == 0 {
		logger.Error("no enabled alarms")
		os.Exit(1)
	}
	metrics.EnginesRunning.Set(float64(len(engines)))

	sched := scheduler.New(engines, cfg.CheckInterval, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, sched, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the evaluation scheduler (immediate run, then periodic ticks).
	go func() {
		if err := sched.Start(ctx); err != nil {
			logger.Error("scheduler error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	sched.Stop()
	if err := notifier.Close(); err != nil {
		logger.Error("kafka notifier close error", "error", err)
	}

	logger.Info("shutdown complete")
}
