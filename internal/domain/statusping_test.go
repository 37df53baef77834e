package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeOfDay(hour, minute int) *TimeOfDay {
	return &TimeOfDay{Hour: hour, Minute: minute}
}

func TestStatusPingTracker_StartupSentExactlyOnce(t *testing.T) {
	tracker := NewStatusPingTracker()
	r := Recipient{Target: "phone-1", StartupMessage: true}
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	assert.True(t, tracker.ShouldSendStartup(r, now))
	assert.False(t, tracker.ShouldSendStartup(r, now))
	assert.False(t, tracker.ShouldSendStartup(r, now.Add(48*time.Hour)))
}

func TestStatusPingTracker_StartupDisabled(t *testing.T) {
	tracker := NewStatusPingTracker()
	r := Recipient{Target: "phone-1"}
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	assert.False(t, tracker.ShouldSendStartup(r, now))
}

func TestStatusPingTracker_DailyFiresOnceAtConfiguredTime(t *testing.T) {
	tracker := NewStatusPingTracker()
	r := Recipient{Target: "phone-1", DailyPingAt: timeOfDay(8, 0), Location: time.UTC}

	morning := time.Date(2026, time.March, 1, 7, 30, 0, 0, time.UTC)
	assert.False(t, tracker.ShouldSendDaily(r, morning), "before configured time")

	due := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	assert.True(t, tracker.ShouldSendDaily(r, due))
	assert.False(t, tracker.ShouldSendDaily(r, due), "second query same cycle")
	assert.False(t, tracker.ShouldSendDaily(r, due.Add(6*time.Hour)), "later cycle same day")

	nextDay := due.Add(24 * time.Hour)
	assert.True(t, tracker.ShouldSendDaily(r, nextDay))
}

func TestStatusPingTracker_DailyDisabledWithoutTimeOfDay(t *testing.T) {
	tracker := NewStatusPingTracker()
	r := Recipient{Target: "phone-1"}
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, tracker.ShouldSendDaily(r, now))
}

func TestStatusPingTracker_DailyUsesRecipientTimezone(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	tracker := NewStatusPingTracker()
	r := Recipient{Target: "phone-1", DailyPingAt: timeOfDay(8, 0), Location: stockholm}

	// 06:30 UTC in March is 07:30 in Stockholm (CET, UTC+1): not due yet.
	assert.False(t, tracker.ShouldSendDaily(r, time.Date(2026, time.March, 1, 6, 30, 0, 0, time.UTC)))
	// 07:30 UTC is 08:30 local: due.
	assert.True(t, tracker.ShouldSendDaily(r, time.Date(2026, time.March, 1, 7, 30, 0, 0, time.UTC)))
}

func TestStatusPingTracker_StartupCountsAsDailyPing(t *testing.T) {
	tracker := NewStatusPingTracker()
	r := Recipient{Target: "phone-1", StartupMessage: true, DailyPingAt: timeOfDay(8, 0), Location: time.UTC}

	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, tracker.ShouldSendStartup(r, now))
	assert.False(t, tracker.ShouldSendDaily(r, now), "startup ping covers today's status")
	assert.True(t, tracker.ShouldSendDaily(r, now.Add(24*time.Hour)))
}

func TestStatusPingTracker_RecipientsAreIndependent(t *testing.T) {
	tracker := NewStatusPingTracker()
	a := Recipient{Target: "phone-1", StartupMessage: true}
	b := Recipient{Target: "phone-2", StartupMessage: true}
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	assert.True(t, tracker.ShouldSendStartup(a, now))
	assert.True(t, tracker.ShouldSendStartup(b, now))
}

func TestParseTimeOfDay(t *testing.T) {
	at, err := ParseTimeOfDay("08:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 5}, at)
	assert.Equal(t, "08:05", at.String())

	for _, bad := range []string{"", "8", "24:00", "12:60", "ab:cd", "12:00:00"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
