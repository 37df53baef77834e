package config

import (
	"fmt"
	"os"
	"time"

	"github.com/couchcryptid/weather-alarm-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// defaultCooldown applies to bands that omit msg_cooldown.
const defaultCooldown = 24 * time.Hour

// AlarmSpec is one raw alarm definition as read from the YAML file. Call
// Build to turn it into a validated alarm; a Build failure disables that
// alarm only, never the whole file.
type AlarmSpec struct {
	DeviceID   string          `yaml:"device_id"`
	Name       string          `yaml:"name"`
	Parameter  string          `yaml:"parameter"`
	Recipients []recipientSpec `yaml:"recipients"`
	Limits     []limitSpec     `yaml:"limits"`
}

type recipientSpec struct {
	Target         string `yaml:"target"`
	StartupMessage bool   `yaml:"startup_message"`
	TimeOfDay      string `yaml:"time_of_day"`
	Timezone       string `yaml:"timezone"`
}

type limitSpec struct {
	Gt          float64 `yaml:"gt"`
	Lt          float64 `yaml:"lt"`
	Message     string  `yaml:"message"`
	MsgCooldown *int    `yaml:"msg_cooldown"` // seconds; nil = default
}

type alarmsFile struct {
	Alarms []AlarmSpec `yaml:"alarms"`
}

// Alarm is a validated alarm definition ready to be wired into an engine.
type Alarm struct {
	Config domain.AlarmConfig
	Metric domain.MetricSpec
}

// LoadAlarms reads the alarm definitions file. Only file-level problems
// (missing file, malformed YAML, empty list) are errors here; per-alarm
// validation happens in Build.
func LoadAlarms(path string) ([]AlarmSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alarm config: %w", err)
	}

	var file alarmsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse alarm config: %w", err)
	}
	if len(file.Alarms) == 0 {
		return nil, fmt.Errorf("alarm config %s defines no alarms", path)
	}

	return file.Alarms, nil
}

// Build converts the raw spec into a validated Alarm.
func (s AlarmSpec) Build() (Alarm, error) {
	metric, err := domain.MetricByName(s.Parameter)
	if err != nil {
		return Alarm{}, &domain.ConfigError{Alarm: s.Name, Field: "parameter", Msg: err.Error()}
	}

	recipients := make([]domain.Recipient, 0, len(s.Recipients))
	for i, r := range s.Recipients {
		recipient, err := r.build()
		if err != nil {
			return Alarm{}, &domain.ConfigError{
				Alarm: s.Name,
				Field: fmt.Sprintf("recipients[%d]", i),
				Msg:   err.Error(),
			}
		}
		recipients = append(recipients, recipient)
	}

	bands := make(domain.BandSet, 0, len(s.Limits))
	for _, l := range s.Limits {
		cooldown := defaultCooldown
		if l.MsgCooldown != nil {
			cooldown = time.Duration(*l.MsgCooldown) * time.Second
		}
		bands = append(bands, domain.Band{
			Gt:       l.Gt,
			Lt:       l.Lt,
			Message:  l.Message,
			Cooldown: cooldown,
		})
	}

	cfg := domain.AlarmConfig{
		DeviceID:   s.DeviceID,
		Name:       s.Name,
		Bands:      bands,
		Recipients: recipients,
	}
	if err := cfg.Validate(); err != nil {
		return Alarm{}, err
	}

	return Alarm{Config: cfg, Metric: metric}, nil
}

func (r recipientSpec) build() (domain.Recipient, error) {
	recipient := domain.Recipient{
		Target:         r.Target,
		StartupMessage: r.StartupMessage,
	}

	if r.TimeOfDay != "" {
		at, err := domain.ParseTimeOfDay(r.TimeOfDay)
		if err != nil {
			return domain.Recipient{}, err
		}
		recipient.DailyPingAt = &at
	}

	if r.Timezone != "" {
		loc, err := time.LoadLocation(r.Timezone)
		if err != nil {
			return domain.Recipient{}, fmt.Errorf("load timezone %q: %w", r.Timezone, err)
		}
		recipient.Location = loc
	}

	return recipient, nil
}
