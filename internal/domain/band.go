package domain

import (
	"fmt"
	"time"
)

// Band is one severity tier: a half-open value range [Gt, Lt) with the
// notification message and cooldown for that tier.
type Band struct {
	Gt       float64
	Lt       float64
	Message  string
	Cooldown time.Duration
}

// Contains reports whether v falls inside the band's [Gt, Lt) range.
func (b Band) Contains(v float64) bool {
	return v >= b.Gt && v < b.Lt
}

// BandSet is an ordered list of severity bands. Order is significant: when
// ranges overlap due to misconfiguration, the first matching band wins.
type BandSet []Band

// Validate checks every band's range. A band with Gt >= Lt returns a
// *ConfigError naming the offending index.
func (s BandSet) Validate() error {
	if len(s) == 0 {
		return &ConfigError{Field: "limits", Msg: "at least one band is required"}
	}
	for i, b := range s {
		if b.Gt >= b.Lt {
			return &ConfigError{
				Field: fmt.Sprintf("limits[%d]", i),
				Msg:   fmt.Sprintf("gt (%g) must be less than lt (%g)", b.Gt, b.Lt),
			}
		}
		if b.Cooldown < 0 {
			return &ConfigError{
				Field: fmt.Sprintf("limits[%d]", i),
				Msg:   "msg_cooldown must not be negative",
			}
		}
	}
	return nil
}

// Match returns the index of the first band whose range contains v, in
// declaration order. Gaps between bands are legal; a value in a gap matches
// nothing and ok is false.
func (s BandSet) Match(v float64) (int, bool) {
	for i, b := range s {
		if b.Contains(v) {
			return i, true
		}
	}
	return 0, false
}
