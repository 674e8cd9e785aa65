// Package signal schedules the aspect of a three-lamp traffic signal head.
//
// A TrafficLight runs its own fixed cycle (Tick) and can be pushed forward in
// time (ForceSpeedupBy) when a pedestrian calls. Alternatively a head can
// follow another one with SyncWith; a follower must not be ticked.
package signal

// TrafficLight is a cyclic Green, Yellow, Red scheduler. remaining is the
// number of ticks left in the current aspect and is never zero between calls.
type TrafficLight struct {
	durations Durations
	aspect    Phase
	remaining uint
}

// New returns a light showing start with that phase's full duration left.
func New(d Durations, start Phase) (*TrafficLight, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &TrafficLight{
		durations: d,
		aspect:    start,
		remaining: d.Of(start),
	}, nil
}

func (l *TrafficLight) Aspect() Phase { return l.aspect }

func (l *TrafficLight) Remaining() uint { return l.remaining }

func (l *TrafficLight) Durations() Durations { return l.durations }

func (l *TrafficLight) Lamps() (red, yellow, green bool) {
	return l.aspect.Lamps()
}

// Tick consumes one tick. Running out of time moves to the next phase on
// the same tick.
func (l *TrafficLight) Tick() {
	if l.remaining > 0 {
		l.remaining--
	}
	if l.remaining == 0 {
		l.advance()
	}
}

func (l *TrafficLight) advance() {
	l.aspect = l.aspect.Next()
	l.remaining = l.durations.Of(l.aspect)
}

// ForceSpeedupBy skips amount ticks at once. Every phase boundary crossed on
// the way is entered in order, so Yellow is never skipped.
func (l *TrafficLight) ForceSpeedupBy(amount uint) {
	for amount > 0 {
		if l.remaining > amount {
			l.remaining -= amount
			return
		}
		amount -= l.remaining
		l.advance()
	}
}

// SyncWith sets the aspect from master so that the two heads never show
// green together. The follower turns yellow while master's red has no more
// than the follower's yellow time left. If master is pushed out of red early
// a green follower still clears through a full yellow before turning red,
// and the follower never leaves the Green, Yellow, Red order.
func (l *TrafficLight) SyncWith(master *TrafficLight) {
	want, left := l.followerAspect(master)
	switch {
	case l.aspect == Green && want == Red:
		l.aspect = Yellow
		l.remaining = l.durations.Yellow
	case l.aspect == Yellow && want != Yellow && l.remaining > 1:
		l.remaining--
	case l.aspect == Yellow && want == Green:
		l.aspect = Red
		l.remaining = 1
	case l.aspect == Red && want == Yellow:
		l.remaining = left
	default:
		l.aspect = want
		l.remaining = left
	}
}

// followerAspect is the antiphase aspect for master and the number of
// master ticks until it changes.
func (l *TrafficLight) followerAspect(master *TrafficLight) (Phase, uint) {
	switch master.aspect {
	case Green:
		return Red, master.remaining + master.durations.Yellow
	case Yellow:
		return Red, master.remaining
	}
	if master.remaining > l.durations.Yellow {
		return Green, master.remaining - l.durations.Yellow
	}
	return Yellow, master.remaining
}
