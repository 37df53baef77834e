package engine

import (
	"fmt"
	"time"

	"github.com/couchcryptid/weather-alarm-service/internal/domain"
)

// forecastTimeLayout matches the format recipients see in alarm bodies.
const forecastTimeLayout = "2006-01-02 15:04"

func (e *Engine) alarmNotification(r domain.Recipient, band domain.Band, occ occurrence, now time.Time) domain.Notification {
	body := fmt.Sprintf("%s (%.1f %s)", band.Message, occ.value, e.metric.Unit)
	if !occ.timestamp.IsZero() {
		body += "\nForecast time: " + occ.timestamp.Format(forecastTimeLayout)
	}
	return domain.Notification{
		Target:   r.Target,
		Title:    fmt.Sprintf("%s - %s", e.cfg.Name, e.metric.Title),
		Body:     body,
		Kind:     domain.KindAlarm,
		Alarm:    e.cfg.Name,
		DeviceID: e.cfg.DeviceID,
		SentAt:   now,
	}
}

func (e *Engine) statusNotification(r domain.Recipient, now time.Time) domain.Notification {
	return domain.Notification{
		Target:   r.Target,
		Title:    fmt.Sprintf("%s - Status", e.cfg.Name),
		Body:     fmt.Sprintf("%s monitoring active for device %s.", e.metric.Description, e.cfg.DeviceID),
		Kind:     domain.KindStatus,
		Alarm:    e.cfg.Name,
		DeviceID: e.cfg.DeviceID,
		SentAt:   now,
	}
}
