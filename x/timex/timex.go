package timex

import "time"

// NowMs returns a monotonic-ish millisecond timestamp for the tick loop.
func NowMs() int64 { return time.Now().UnixMilli() }

// Since returns now-then in milliseconds, clamped at zero so a clock that
// steps backwards never produces a negative elapsed time.
func Since(now, then int64) int64 {
	if now < then {
		return 0
	}
	return now - then
}

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}
