// Package humanize provides the shared, seeded randomization helpers used
// by the bass and drum generators. Callers construct one Rand per
// generation call; an instance is never shared across concurrent calls.
package humanize

import "math/rand"

// PPQ is the tick resolution assumed for micro-timing offsets.
const PPQ = 96

// maxTimingMs bounds micro-timing jitter to roughly what a relaxed
// player drifts by.
const maxTimingMs = 12.0

// NewRand builds an independent seeded generator for one call.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// VelocityJitter offsets a velocity by a uniform value in [-amount, +amount],
// clamped to the valid 1..127 range.
func VelocityJitter(r *rand.Rand, velocity, amount int) int {
	if amount <= 0 {
		return ClampVelocity(velocity)
	}
	return ClampVelocity(velocity + r.Intn(2*amount+1) - amount)
}

// TimingJitterTicks returns a micro-timing offset in MIDI ticks. The
// millisecond window is fixed, so the tick range scales with BPM: faster
// tempos cover more ticks per millisecond.
func TimingJitterTicks(r *rand.Rand, bpm float64) int {
	if bpm <= 0 {
		return 0
	}
	maxTicks := int(maxTimingMs * bpm * PPQ / 60000.0)
	if maxTicks <= 0 {
		return 0
	}
	return r.Intn(2*maxTicks+1) - maxTicks
}

// GhostVelocity scales a velocity down to ghost-note level.
func GhostVelocity(velocity int) int {
	return ClampVelocity(int(float64(velocity) * 0.25))
}

// ClampVelocity bounds a velocity to 1..127.
func ClampVelocity(v int) int {
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return v
}
