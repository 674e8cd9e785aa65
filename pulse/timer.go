// Package pulse provides a retriggerable one-shot countdown that reports
// its active state only on the tick where it changes.
package pulse

// Timer counts down a window of Width ticks after each Pulse.
// The zero value is an idle timer with a zero-width window.
type Timer struct {
	width     uint
	remaining uint
	active    bool
}

func New(width uint) *Timer {
	return &Timer{width: width}
}

// Pulse (re)starts the window. Calling it while active only extends the
// window; no edge is reported for the restart.
func (t *Timer) Pulse() {
	t.remaining = t.width
}

// Tick advances the timer by one tick. active is true while the window had
// ticks left at the start of this tick; changed is true only when active
// differs from the previous tick.
func (t *Timer) Tick() (active bool, changed bool) {
	active = t.remaining > 0
	if t.remaining > 0 {
		t.remaining--
	}
	changed = active != t.active
	t.active = active
	return active, changed
}

// Active reports the state seen by the last Tick.
func (t *Timer) Active() bool { return t.active }

func (t *Timer) Remaining() uint { return t.remaining }

func (t *Timer) Width() uint { return t.width }
