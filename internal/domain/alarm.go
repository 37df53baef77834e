package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time within a day, e.g. 08:00.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" in 24-hour notation.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: want HH:MM", s)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: want HH:MM", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Recipient is one notification destination subscribed to an alarm. The
// target is an opaque identifier resolved by the downstream delivery service.
type Recipient struct {
	Target         string
	StartupMessage bool

	// DailyPingAt enables a once-a-day status ping at the given local time.
	// Nil disables the daily ping for this recipient.
	DailyPingAt *TimeOfDay

	// Location is the recipient's local timezone for the daily ping.
	// Nil falls back to the process-local timezone.
	Location *time.Location
}

func (r Recipient) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

// AlarmConfig is the immutable definition of one alarm instance, validated
// once at load time.
type AlarmConfig struct {
	DeviceID   string
	Name       string
	Bands      BandSet
	Recipients []Recipient
}

// Validate checks the config. Any error disables the whole alarm.
func (c AlarmConfig) Validate() error {
	if c.DeviceID == "" {
		return &ConfigError{Alarm: c.Name, Field: "device_id", Msg: "required"}
	}
	if c.Name == "" {
		return &ConfigError{Alarm: c.DeviceID, Field: "name", Msg: "required"}
	}
	if len(c.Recipients) == 0 {
		return &ConfigError{Alarm: c.Name, Field: "recipients", Msg: "at least one recipient is required"}
	}
	for i, r := range c.Recipients {
		if r.Target == "" {
			return &ConfigError{
				Alarm: c.Name,
				Field: fmt.Sprintf("recipients[%d].target", i),
				Msg:   "required",
			}
		}
	}
	if err := c.Bands.Validate(); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.Alarm = c.Name
			return cfgErr
		}
		return err
	}
	return nil
}
