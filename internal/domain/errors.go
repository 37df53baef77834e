package domain

import "fmt"

// ConfigError reports an invalid alarm definition. It is raised once at
// construction; the affected alarm is disabled rather than partially run.
type ConfigError struct {
	Alarm string
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Alarm == "" {
		return fmt.Sprintf("invalid alarm config: %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid alarm config %q: %s: %s", e.Alarm, e.Field, e.Msg)
}
