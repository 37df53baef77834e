package domain

import "time"

// Notification kinds, carried as a Kafka header so downstream delivery can
// route alarms and status pings differently.
const (
	KindAlarm  = "alarm"
	KindStatus = "status"
)

// Notification is one message destined for a recipient. The engine hands it
// to the notification gateway fire-and-forget; physical delivery is owned by
// a downstream service.
type Notification struct {
	Target   string    `json:"target"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Kind     string    `json:"kind"`
	Alarm    string    `json:"alarm"`
	DeviceID string    `json:"device_id"`
	SentAt   time.Time `json:"sent_at"`
}
