package domain

import "time"

// cooldownKey identifies one (recipient, band) pair.
type cooldownKey struct {
	target string
	band   int
}

// CooldownStore tracks when each (recipient, band) pair was last notified.
// State lives for the lifetime of the process; a restart makes every pair
// eligible again. Each engine owns exactly one store and serializes access
// to it, so the store itself carries no lock.
type CooldownStore struct {
	lastSent map[cooldownKey]time.Time
}

// NewCooldownStore creates an empty store.
func NewCooldownStore() *CooldownStore {
	return &CooldownStore{lastSent: make(map[cooldownKey]time.Time)}
}

// IsEligible reports whether a notification may be sent to target for the
// given band: true when the pair has never been notified, or when at least
// cooldown has elapsed since the last send.
func (s *CooldownStore) IsEligible(target string, band int, cooldown time.Duration, now time.Time) bool {
	last, ok := s.lastSent[cooldownKey{target: target, band: band}]
	if !ok {
		return true
	}
	return now.Sub(last) >= cooldown
}

// Record stamps the pair with now. Call it exactly once per successful
// dispatch, never speculatively: a failed dispatch must leave the pair
// eligible so the next cycle retries naturally.
func (s *CooldownStore) Record(target string, band int, now time.Time) {
	s.lastSent[cooldownKey{target: target, band: band}] = now
}
