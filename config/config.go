// Package config holds the compile-time timing and threshold constants of the
// intersection. Every duration is in ticks of TickPeriod.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeyede/intersection/signal"
)

const (
	TickPeriod = 50 * time.Millisecond

	GreenTicks  = 70
	YellowTicks = 30
	RedTicks    = 100

	// SpeedupTicks is skipped on every pedestrian call.
	SpeedupTicks = 50

	// Street light is lit below this ambient level.
	AmbientLowThreshold = 150
	// Gate opens above this proximity level.
	ProximityThreshold = 100

	// Sensor levels are 10 bit.
	SensorFullScale = 1023

	// Servo duty is expressed in ServoDutyTop steps of a ServoFrequencyHz period
	// (10us per step at 50 Hz): closed is a 1.0 ms pulse, open 2.5 ms.
	ServoFrequencyHz = 50
	ServoDutyTop     = 2000
	ServoClosedDuty  = 100
	ServoOpenDuty    = 250

	GateOpenTicks   = 100
	GateMotionTicks = 20
)

var (
	ErrUnbalancedCycle = errors.New("red must equal green plus yellow")
	ErrMotionWindow    = errors.New("gate motion window must be shorter than the open window")
	ErrServoDuty       = errors.New("servo duty out of range")
)

// Durations is the phase plan shared by both signal heads.
func Durations() signal.Durations {
	return signal.Durations{Green: GreenTicks, Yellow: YellowTicks, Red: RedTicks}
}

// Validate checks the relations the controller relies on. Two heads started
// half a cycle apart only stay conflict free when one head's red covers the
// other's green and yellow.
func Validate(d signal.Durations) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.Red != d.Green+d.Yellow {
		return fmt.Errorf("%w: green=%d yellow=%d red=%d", ErrUnbalancedCycle, d.Green, d.Yellow, d.Red)
	}
	if GateMotionTicks >= GateOpenTicks {
		return ErrMotionWindow
	}
	for _, duty := range []int{ServoClosedDuty, ServoOpenDuty} {
		if duty < 0 || duty > ServoDutyTop {
			return fmt.Errorf("%w: %d", ErrServoDuty, duty)
		}
	}
	return nil
}
