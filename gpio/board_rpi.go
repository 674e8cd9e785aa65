//go:build !windows

package gpio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/rpi"
)

// ADS1115 input range used for the light and proximity dividers.
const adcFullScale = 5 * physic.Volt

// NewBoard opens the Raspberry Pi header and the ADS1115 on the default I2C bus.
func NewBoard() (*Board, error) {
	// Initialize host
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	pins := Pins{
		StreetLight: rpi.P1_16, // GPIO23
		Main:        [3]gpio.PinIO{rpi.P1_29, rpi.P1_31, rpi.P1_33}, // GPIO5, GPIO6, GPIO13
		Cross:       [3]gpio.PinIO{rpi.P1_35, rpi.P1_37, rpi.P1_40}, // GPIO19, GPIO26, GPIO21
		Button:      rpi.P1_11, // GPIO17
		Servo:       rpi.P1_12, // GPIO18, hardware PWM0
	}

	bus, err := i2creg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open i2c: %w", err)
	}
	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("ads1115: %w", err)
	}
	ambient, err := adc.PinForChannel(ads1x15.Channel0, adcFullScale, 20*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("ambient channel: %w", err)
	}
	proximity, err := adc.PinForChannel(ads1x15.Channel1, adcFullScale, 20*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("proximity channel: %w", err)
	}

	b, err := newBoard(pins, ambient, proximity, adcFullScale)
	if err != nil {
		bus.Close()
		return nil, err
	}
	b.closers = []func() error{ambient.Halt, proximity.Halt, adc.Halt, bus.Close}
	return b, nil
}
