package gpio

import (
	"golang.org/x/exp/constraints"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/joeyede/intersection/config"
)

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sensorLevel maps a sample onto 0..SensorFullScale, where fullScale volts
// reads as the top of the range. Anything outside is clamped.
func sensorLevel(s analog.Sample, fullScale physic.ElectricPotential) int {
	if fullScale <= 0 {
		return 0
	}
	lvl := int64(s.V) * config.SensorFullScale / int64(fullScale)
	return int(clamp(lvl, 0, config.SensorFullScale))
}

// servoDuty converts a duty in ServoDutyTop steps to a periph duty.
func servoDuty(duty int) gpio.Duty {
	d := int64(clamp(duty, 0, config.ServoDutyTop))
	return gpio.Duty(d * int64(gpio.DutyMax) / config.ServoDutyTop)
}

func level(on bool) gpio.Level {
	if on {
		return gpio.High
	}
	return gpio.Low
}
