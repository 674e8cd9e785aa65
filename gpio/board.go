// Package gpio drives the intersection hardware through periph.io pins.
package gpio

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/joeyede/intersection/config"
	"github.com/joeyede/intersection/controller"
)

var _ controller.Board = (*Board)(nil)

type sampler interface {
	Read() (analog.Sample, error)
}

// Pins lists every digital line of the board.
type Pins struct {
	StreetLight gpio.PinIO
	Main        [3]gpio.PinIO // red, yellow, green
	Cross       [3]gpio.PinIO
	Button      gpio.PinIO
	Servo       gpio.PinIO
}

func (p Pins) outputs() []gpio.PinIO {
	out := []gpio.PinIO{p.StreetLight}
	out = append(out, p.Main[:]...)
	out = append(out, p.Cross[:]...)
	return append(out, p.Servo)
}

// Board implements controller.Board. Lamp writes are skipped when the level
// is unchanged, so the controller may rewrite every output each tick.
type Board struct {
	pins      Pins
	ambient   sampler
	proximity sampler
	fullScale physic.ElectricPotential

	levels map[gpio.PinIO]gpio.Level

	servoDuty int
	servoOn   bool

	closers []func() error
}

func newBoard(pins Pins, ambient, proximity sampler, fullScale physic.ElectricPotential) (*Board, error) {
	b := &Board{
		pins:      pins,
		ambient:   ambient,
		proximity: proximity,
		fullScale: fullScale,
		levels:    make(map[gpio.PinIO]gpio.Level),
		servoDuty: config.ServoClosedDuty,
	}

	// Initialize all outputs to LOW
	for _, pin := range pins.outputs() {
		if err := pin.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("%s: %w", pin.Name(), err)
		}
		b.levels[pin] = gpio.Low
	}
	if err := pins.Button.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("%s: %w", pins.Button.Name(), err)
	}
	return b, nil
}

func (b *Board) Sample() (controller.Readings, error) {
	ambient, err := b.ambient.Read()
	if err != nil {
		return controller.Readings{}, fmt.Errorf("ambient: %w", err)
	}
	proximity, err := b.proximity.Read()
	if err != nil {
		return controller.Readings{}, fmt.Errorf("proximity: %w", err)
	}
	return controller.Readings{
		Ambient:    sensorLevel(ambient, b.fullScale),
		Proximity:  sensorLevel(proximity, b.fullScale),
		Pedestrian: b.pins.Button.Read() == gpio.High,
	}, nil
}

func (b *Board) SetStreetLight(on bool) error {
	return b.out(b.pins.StreetLight, on)
}

func (b *Board) SetSignal(h controller.Head, red, yellow, green bool) error {
	pins := b.pins.Main
	if h == controller.Cross {
		pins = b.pins.Cross
	}
	for i, on := range []bool{red, yellow, green} {
		if err := b.out(pins[i], on); err != nil {
			return err
		}
	}
	return nil
}

// SetServoDuty takes effect at once when the servo is powered, otherwise on
// the next SetServoEnabled(true).
func (b *Board) SetServoDuty(duty int) error {
	b.servoDuty = duty
	if !b.servoOn {
		return nil
	}
	return b.pins.Servo.PWM(servoDuty(duty), config.ServoFrequencyHz*physic.Hertz)
}

// SetServoEnabled starts the PWM train, or holds the line low so the servo
// stops drawing holding current.
func (b *Board) SetServoEnabled(on bool) error {
	b.servoOn = on
	if on {
		log.Printf("Servo on, duty %d", b.servoDuty)
		return b.pins.Servo.PWM(servoDuty(b.servoDuty), config.ServoFrequencyHz*physic.Hertz)
	}
	log.Printf("Servo off")
	b.levels[b.pins.Servo] = gpio.Low
	return b.pins.Servo.Out(gpio.Low)
}

func (b *Board) out(pin gpio.PinIO, on bool) error {
	l := level(on)
	if cur, ok := b.levels[pin]; ok && cur == l {
		return nil
	}
	if err := pin.Out(l); err != nil {
		return fmt.Errorf("%s: %w", pin.Name(), err)
	}
	b.levels[pin] = l
	return nil
}

// Cleanup drives every output low and releases the ADC.
func (b *Board) Cleanup() error {
	b.servoOn = false
	for _, pin := range b.pins.outputs() {
		if err := pin.Out(gpio.Low); err != nil {
			return err
		}
	}
	for _, closer := range b.closers {
		if err := closer(); err != nil {
			return err
		}
	}
	return nil
}
