package domain

import "time"

// pingState tracks status-ping history for one recipient.
type pingState struct {
	startupSent  bool
	lastSentDate string // calendar date in the recipient's timezone, "2006-01-02"
}

// StatusPingTracker decides when a recipient is due a non-alarm status ping.
// Like the CooldownStore it is owned by a single engine and holds no lock.
type StatusPingTracker struct {
	state map[string]*pingState
}

// NewStatusPingTracker creates a tracker with no pings sent yet.
func NewStatusPingTracker() *StatusPingTracker {
	return &StatusPingTracker{state: make(map[string]*pingState)}
}

func (t *StatusPingTracker) get(target string) *pingState {
	st, ok := t.state[target]
	if !ok {
		st = &pingState{}
		t.state[target] = st
	}
	return st
}

// ShouldSendStartup returns true exactly once per process start for a
// recipient that opted into the startup message. It marks the current date
// as pinged so the daily ping does not fire again the same day.
func (t *StatusPingTracker) ShouldSendStartup(r Recipient, now time.Time) bool {
	if !r.StartupMessage {
		return false
	}
	st := t.get(r.Target)
	if st.startupSent {
		return false
	}
	st.startupSent = true
	st.lastSentDate = localDate(now, r)
	return true
}

// ShouldSendDaily returns true when the recipient's configured time of day
// has been reached for the current calendar date (in the recipient's local
// time) and no status ping has been sent for that date yet. A true return
// immediately records the date, so a second query in the same cycle is false.
func (t *StatusPingTracker) ShouldSendDaily(r Recipient, now time.Time) bool {
	if r.DailyPingAt == nil {
		return false
	}
	local := now.In(r.location())
	due := time.Date(local.Year(), local.Month(), local.Day(),
		r.DailyPingAt.Hour, r.DailyPingAt.Minute, 0, 0, r.location())
	if local.Before(due) {
		return false
	}
	st := t.get(r.Target)
	today := localDate(now, r)
	if st.lastSentDate == today {
		return false
	}
	st.lastSentDate = today
	return true
}

func localDate(now time.Time, r Recipient) string {
	return now.In(r.location()).Format(time.DateOnly)
}
