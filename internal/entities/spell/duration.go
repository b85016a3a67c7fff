package spell

import "time"

// DurationDescriptor is a named duration from spell config. Instantaneous
// spells resolve to no duration; every other descriptor maps to a fixed
// second count.
type DurationDescriptor string

// Duration descriptors
const (
	DurationInstantaneous DurationDescriptor = "instantaneous"
	DurationOneRound      DurationDescriptor = "1_round"
	DurationOneMinute     DurationDescriptor = "1_minute"
	DurationTenMinutes    DurationDescriptor = "10_minutes"
	DurationOneHour       DurationDescriptor = "1_hour"
	DurationEightHours    DurationDescriptor = "8_hours"
	DurationOneDay        DurationDescriptor = "24_hours"
)

var durationSeconds = map[DurationDescriptor]int{
	DurationOneRound:   6,
	DurationOneMinute:  60,
	DurationTenMinutes: 600,
	DurationOneHour:    3600,
	DurationEightHours: 28800,
	DurationOneDay:     86400,
}

// Resolve returns the concrete duration, or ok=false for instantaneous
// (or unrecognized) descriptors.
func (d DurationDescriptor) Resolve() (time.Duration, bool) {
	secs, ok := durationSeconds[d]
	if !ok {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// Instantaneous reports whether the descriptor names no lasting duration
func (d DurationDescriptor) Instantaneous() bool {
	_, ok := durationSeconds[d]
	return !ok
}
