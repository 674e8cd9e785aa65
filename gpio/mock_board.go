//go:build windows
// +build windows

package gpio

import (
	"log"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
)

const mockFullScale = 5 * physic.Volt

// mockSensor always reads v.
type mockSensor struct {
	name string
	v    physic.ElectricPotential
}

func (s *mockSensor) Read() (analog.Sample, error) {
	return analog.Sample{V: s.v}, nil
}

// NewBoard returns a Board over in-memory pins: daylight, nothing at the gate
// and the button released.
func NewBoard() (*Board, error) {
	log.Println("Initializing Mock GPIO Board for Windows")
	pin := func(name string) gpio.PinIO { return &gpiotest.Pin{N: name} }
	pins := Pins{
		StreetLight: pin("street"),
		Main:        [3]gpio.PinIO{pin("main-red"), pin("main-yellow"), pin("main-green")},
		Cross:       [3]gpio.PinIO{pin("cross-red"), pin("cross-yellow"), pin("cross-green")},
		Button:      pin("button"),
		Servo:       pin("servo"),
	}
	b, err := newBoard(pins,
		&mockSensor{name: "ambient", v: 4 * physic.Volt},
		&mockSensor{name: "proximity"},
		mockFullScale)
	if err != nil {
		return nil, err
	}
	b.closers = []func() error{func() error {
		log.Println("Mock: Cleanup called")
		return nil
	}}
	return b, nil
}
