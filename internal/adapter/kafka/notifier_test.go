package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/couchcryptid/weather-alarm-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	sentAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	n := domain.Notification{
		Target:   "mobile_app_pixel_9_pro",
		Title:    "Vind - Wind Warning",
		Body:     "STORM VARNING! (45.0 m/s)\nForecast time: 2026-03-01 15:00",
		Kind:     domain.KindAlarm,
		Alarm:    "Vind",
		DeviceID: "smhi_home",
		SentAt:   sentAt,
	}

	msg, err := serializeToMessage(n)
	require.NoError(t, err)

	assert.Equal(t, []byte("mobile_app_pixel_9_pro"), msg.Key, "messages are keyed by recipient target")

	var decoded domain.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, n, decoded)

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "kind", msg.Headers[0].Key)
	assert.Equal(t, []byte(domain.KindAlarm), msg.Headers[0].Value)
	assert.Equal(t, "sent_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-03-01T12:00:00Z"), msg.Headers[1].Value)
}

func TestSerializeToMessage_StatusKind(t *testing.T) {
	msg, err := serializeToMessage(domain.Notification{
		Target: "phone-1",
		Kind:   domain.KindStatus,
		SentAt: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte(domain.KindStatus), msg.Headers[0].Value)
}
