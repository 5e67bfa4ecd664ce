package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocityJitter(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 200; i++ {
		v := VelocityJitter(r, 100, 8)
		assert.GreaterOrEqual(t, v, 92)
		assert.LessOrEqual(t, v, 108)
	}

	// Jitter near the range edges still clamps to 1..127.
	for i := 0; i < 200; i++ {
		assert.GreaterOrEqual(t, VelocityJitter(r, 2, 8), 1)
		assert.LessOrEqual(t, VelocityJitter(r, 126, 8), 127)
	}

	assert.Equal(t, 100, VelocityJitter(r, 100, 0), "zero amount passes the velocity through")
}

func TestVelocityJitterSeeded(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, VelocityJitter(a, 90, 6), VelocityJitter(b, 90, 6))
	}
}

func TestTimingJitterTicks(t *testing.T) {
	r := NewRand(9)

	// 12ms at 124 BPM and 96 PPQ is 2 ticks.
	for i := 0; i < 200; i++ {
		ticks := TimingJitterTicks(r, 124)
		assert.GreaterOrEqual(t, ticks, -2)
		assert.LessOrEqual(t, ticks, 2)
	}

	assert.Equal(t, 0, TimingJitterTicks(r, 0))
	assert.Equal(t, 0, TimingJitterTicks(r, -120))

	// Below about 32 BPM the window rounds to under one tick.
	assert.Equal(t, 0, TimingJitterTicks(r, 30))
}

func TestGhostVelocity(t *testing.T) {
	assert.Equal(t, 25, GhostVelocity(100))
	assert.Equal(t, 16, GhostVelocity(64))
	assert.Equal(t, 1, GhostVelocity(3), "never drops below the audible floor")
}

func TestClampVelocity(t *testing.T) {
	assert.Equal(t, 1, ClampVelocity(0))
	assert.Equal(t, 1, ClampVelocity(-40))
	assert.Equal(t, 127, ClampVelocity(300))
	assert.Equal(t, 64, ClampVelocity(64))
}
