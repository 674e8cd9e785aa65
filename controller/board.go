package controller

// Head identifies one of the two signal heads.
type Head int

const (
	Main Head = iota
	Cross
)

func (h Head) String() string {
	if h == Main {
		return "main"
	}
	return "cross"
}

// Readings is one tick's sensor samples. Levels must already be clamped to
// the sensor range by the adapter; the controller does not check them.
type Readings struct {
	Ambient    int
	Proximity  int
	Pedestrian bool
}

type Sensors interface {
	Sample() (Readings, error)
}

// Actuators receives every output of a tick. Implementations must not block.
type Actuators interface {
	SetStreetLight(on bool) error
	SetSignal(h Head, red, yellow, green bool) error
	SetServoDuty(duty int) error
	SetServoEnabled(on bool) error
}

// Board is a sensor and actuator pair, usually one piece of hardware.
type Board interface {
	Sensors
	Actuators
}
