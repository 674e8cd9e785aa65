package signal

// Phase is the aspect shown by a signal head.
type Phase uint8

const (
	Green Phase = iota
	Yellow
	Red
)

// Next returns the phase that follows p in the Green, Yellow, Red cycle.
func (p Phase) Next() Phase {
	switch p {
	case Green:
		return Yellow
	case Yellow:
		return Red
	default:
		return Green
	}
}

func (p Phase) String() string {
	switch p {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Lamps maps p onto the red, yellow and green lamps. Exactly one is lit.
func (p Phase) Lamps() (red, yellow, green bool) {
	return p == Red, p == Yellow, p == Green
}
