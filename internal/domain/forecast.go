package domain

import (
	"fmt"
	"time"
)

// ForecastSample is one timestamped hourly data point from the weather
// provider. Fields holds every numeric field the provider reported for that
// hour; a metric absent from the map means the provider had no value.
type ForecastSample struct {
	Timestamp time.Time
	Fields    map[string]float64
}

// MetricSpec selects one scalar weather metric out of a forecast sample and
// carries the strings used when formatting notifications. It replaces
// per-metric subclassing with a plain capability record.
type MetricSpec struct {
	Field       string // forecast field name, e.g. "wind_speed"
	Unit        string // display unit, e.g. "m/s"
	Description string // human description for logs, e.g. "Wind speed"
	Title       string // notification title suffix, e.g. "Wind Warning"
}

// Extract reads the metric's field out of a sample. ok is false when the
// provider reported no value for that hour.
func (m MetricSpec) Extract(s ForecastSample) (float64, bool) {
	v, ok := s.Fields[m.Field]
	return v, ok
}

// Metric specs for the supported weather parameters.
var metricSpecs = map[string]MetricSpec{
	"wind_speed": {
		Field:       "wind_speed",
		Unit:        "m/s",
		Description: "Wind speed",
		Title:       "Wind Warning",
	},
	"precipitation": {
		Field:       "precipitation",
		Unit:        "mm/h",
		Description: "Precipitation",
		Title:       "Rain Warning",
	},
	"temperature": {
		Field:       "temperature",
		Unit:        "°C",
		Description: "Temperature",
		Title:       "Temperature Warning",
	},
}

// MetricByName looks up the MetricSpec for a configured parameter name.
func MetricByName(name string) (MetricSpec, error) {
	m, ok := metricSpecs[name]
	if !ok {
		return MetricSpec{}, fmt.Errorf("unknown weather parameter %q", name)
	}
	return m, nil
}
