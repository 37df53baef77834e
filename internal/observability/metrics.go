package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// alarm engines.
type Metrics struct {
	CyclesTotal   *prometheus.CounterVec // labels: alarm
	CycleDuration prometheus.Histogram

	SamplesEvaluated prometheus.Counter
	SamplesMissing   prometheus.Counter
	FetchErrors      prometheus.Counter

	NotificationsSent  *prometheus.CounterVec // labels: kind={alarm,status}
	DispatchErrors     prometheus.Counter
	CooldownSuppressed prometheus.Counter

	EnginesRunning prometheus.Gauge
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CyclesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "cycles_total",
			Help:      "Completed evaluation cycles per alarm.",
		}, []string{"alarm"}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_alarm",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a complete evaluation cycle including the forecast fetch.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		SamplesEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "samples_evaluated_total",
			Help:      "Forecast samples checked against severity bands.",
		}),
		SamplesMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "samples_missing_total",
			Help:      "Forecast samples skipped because the metric was absent.",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "forecast_fetch_errors_total",
			Help:      "Forecast fetches that failed and aborted the cycle.",
		}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "notifications_sent_total",
			Help:      "Notifications handed to the gateway, by kind.",
		}, []string{"kind"}),
		DispatchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "notification_errors_total",
			Help:      "Notification dispatches that failed.",
		}),
		CooldownSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_alarm",
			Name:      "cooldown_suppressed_total",
			Help:      "Notifications suppressed by an active cooldown.",
		}),
		EnginesRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_alarm",
			Name:      "engines_running",
			Help:      "Number of enabled alarm engines.",
		}),
	}

	prometheus.MustRegister(
		m.CyclesTotal,
		m.CycleDuration,
		m.SamplesEvaluated,
		m.SamplesMissing,
		m.FetchErrors,
		m.NotificationsSent,
		m.DispatchErrors,
		m.CooldownSuppressed,
		m.EnginesRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default registry
// to avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CyclesTotal:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "cycles_total"}, []string{"alarm"}),
		CycleDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_alarm", Name: "cycle_duration_seconds"}),
		SamplesEvaluated:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "samples_evaluated_total"}),
		SamplesMissing:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "samples_missing_total"}),
		FetchErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "forecast_fetch_errors_total"}),
		NotificationsSent:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "notifications_sent_total"}, []string{"kind"}),
		DispatchErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "notification_errors_total"}),
		CooldownSuppressed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_alarm", Name: "cooldown_suppressed_total"}),
		EnginesRunning:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_alarm", Name: "engines_running"}),
	}
}
