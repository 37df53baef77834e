package config

import (
	"errors"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
// Alarm definitions live in a separate YAML file (see LoadAlarms).
type Config struct {
	AlarmConfigFile string

	ForecastBaseURL string
	ForecastToken   string
	ForecastTimeout time.Duration

	KafkaBrokers     []string
	KafkaNotifyTopic string

	CheckInterval   time.Duration
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	forecastTimeoutStr := sharedcfg.EnvOrDefault("FORECAST_TIMEOUT", "10s")
	forecastTimeout, err := time.ParseDuration(forecastTimeoutStr)
	if err != nil || forecastTimeout <= 0 {
		return nil, errors.New("invalid FORECAST_TIMEOUT")
	}

	checkIntervalStr := sharedcfg.EnvOrDefault("CHECK_INTERVAL", "6h")
	checkInterval, err := time.ParseDuration(checkIntervalStr)
	if err != nil || checkInterval <= 0 {
		return nil, errors.New("invalid CHECK_INTERVAL")
	}

	cfg := &Config{
		AlarmConfigFile: sharedcfg.EnvOrDefault("ALARM_CONFIG_FILE", "alarms.yaml"),

		ForecastBaseURL: sharedcfg.EnvOrDefault("FORECAST_BASE_URL", "http://localhost:8123"),
		ForecastToken:   sharedcfg.EnvOrDefault("FORECAST_TOKEN", ""),
		ForecastTimeout: forecastTimeout,

		KafkaBrokers:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaNotifyTopic: sharedcfg.EnvOrDefault("KAFKA_NOTIFY_TOPIC", "weather-notifications"),

		CheckInterval:   checkInterval,
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.AlarmConfigFile == "" {
		return nil, errors.New("ALARM_CONFIG_FILE is required")
	}
	if cfg.ForecastBaseURL == "" {
		return nil, errors.New("FORECAST_BASE_URL is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaNotifyTopic == "" {
		return nil, errors.New("KAFKA_NOTIFY_TOPIC is required")
	}

	return cfg, nil
}
