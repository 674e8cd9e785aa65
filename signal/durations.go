package signal

import (
	"errors"
	"fmt"
)

var ErrZeroDuration = errors.New("phase duration must be positive")

// Durations holds the hold time of each phase, in ticks.
type Durations struct {
	Green  uint
	Yellow uint
	Red    uint
}

func (d Durations) Of(p Phase) uint {
	switch p {
	case Green:
		return d.Green
	case Yellow:
		return d.Yellow
	default:
		return d.Red
	}
}

// Cycle is the number of ticks for one full Green, Yellow, Red sequence.
func (d Durations) Cycle() uint {
	return d.Green + d.Yellow + d.Red
}

func (d Durations) Validate() error {
	for _, p := range []Phase{Green, Yellow, Red} {
		if d.Of(p) == 0 {
			return fmt.Errorf("%s: %w", p, ErrZeroDuration)
		}
	}
	return nil
}
