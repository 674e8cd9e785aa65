package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_IdleNeverFires(t *testing.T) {
	timer := New(10)
	for i := 0; i < 50; i++ {
		_, changed := timer.Tick()
		assert.False(t, changed, "tick %d", i)
	}
	assert.False(t, timer.Active())
}

func TestTimer_PulseEdges(t *testing.T) {
	timer := New(10)
	timer.Pulse()

	active, changed := timer.Tick()
	assert.True(t, changed)
	assert.True(t, active)

	for i := 2; i <= 10; i++ {
		active, changed = timer.Tick()
		assert.False(t, changed, "tick %d", i)
		assert.True(t, active, "tick %d", i)
	}

	active, changed = timer.Tick()
	assert.True(t, changed)
	assert.False(t, active)

	for i := 0; i < 20; i++ {
		_, changed = timer.Tick()
		assert.False(t, changed)
	}
}

func TestTimer_RetriggerExtendsWindow(t *testing.T) {
	timer := New(5)
	timer.Pulse()

	var edges []bool
	record := func() {
		if active, changed := timer.Tick(); changed {
			edges = append(edges, active)
		}
	}

	for i := 0; i < 3; i++ {
		record()
	}
	timer.Pulse()
	assert.Equal(t, uint(5), timer.Remaining())

	for i := 0; i < 5; i++ {
		record()
	}
	assert.Equal(t, []bool{true}, edges)

	record()
	assert.Equal(t, []bool{true, false}, edges)
}

func TestTimer_ZeroWidth(t *testing.T) {
	timer := New(0)
	timer.Pulse()
	active, changed := timer.Tick()
	assert.False(t, active)
	assert.False(t, changed)
}

func TestTimer_PulseAfterExpiry(t *testing.T) {
	timer := New(2)
	timer.Pulse()
	for i := 0; i < 3; i++ {
		timer.Tick()
	}
	assert.False(t, timer.Active())

	timer.Pulse()
	active, changed := timer.Tick()
	assert.True(t, active)
	assert.True(t, changed)
}
