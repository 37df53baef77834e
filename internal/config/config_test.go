package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "alarms.yaml", cfg.AlarmConfigFile)
	assert.Equal(t, "http://localhost:8123", cfg.ForecastBaseURL)
	assert.Empty(t, cfg.ForecastToken)
	assert.Equal(t, 10*time.Second, cfg.ForecastTimeout)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "weather-notifications", cfg.KafkaNotifyTopic)
	assert.Equal(t, 6*time.Hour, cfg.CheckInterval)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("ALARM_CONFIG_FILE", "/etc/alarmd/alarms.yaml")
	t.Setenv("FORECAST_BASE_URL", "https://weather.example.com")
	t.Setenv("FORECAST_TOKEN", "secret-token")
	t.Setenv("FORECAST_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_NOTIFY_TOPIC", "custom-notify")
	t.Setenv("CHECK_INTERVAL", "1h")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/etc/alarmd/alarms.yaml", cfg.AlarmConfigFile)
	assert.Equal(t, "https://weather.example.com", cfg.ForecastBaseURL)
	assert.Equal(t, "secret-token", cfg.ForecastToken)
	assert.Equal(t, 30*time.Second, cfg.ForecastTimeout)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-notify", cfg.KafkaNotifyTopic)
	assert.Equal(t, time.Hour, cfg.CheckInterval)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidForecastTimeout(t *testing.T) {
	t.Setenv("FORECAST_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORECAST_TIMEOUT")
}

func TestLoad_NegativeCheckInterval(t *testing.T) {
	t.Setenv("CHECK_INTERVAL", "-6h")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK_INTERVAL")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}
