package controller

import (
	"errors"
	"fmt"
)

type lamps struct{ red, yellow, green bool }

// fakeBoard feeds scripted readings and records every actuator write.
type fakeBoard struct {
	readings  Readings
	sampleErr error
	dutyErr   error
	tick      int
	streetOn  bool
	signals   map[Head]lamps
	servoDuty int
	servoOn   bool
	servoLog  []string
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{signals: map[Head]lamps{}}
}

func (b *fakeBoard) Sample() (Readings, error) {
	if b.sampleErr != nil {
		return Readings{}, b.sampleErr
	}
	b.tick++
	return b.readings, nil
}

func (b *fakeBoard) SetStreetLight(on bool) error {
	b.streetOn = on
	return nil
}

func (b *fakeBoard) SetSignal(h Head, red, yellow, green bool) error {
	b.signals[h] = lamps{red, yellow, green}
	return nil
}

func (b *fakeBoard) SetServoDuty(duty int) error {
	if b.dutyErr != nil {
		return b.dutyErr
	}
	b.servoDuty = duty
	b.servoLog = append(b.servoLog, fmt.Sprintf("%d:duty=%d", b.tick, duty))
	return nil
}

func (b *fakeBoard) SetServoEnabled(on bool) error {
	b.servoOn = on
	state := "disable"
	if on {
		state = "enable"
	}
	b.servoLog = append(b.servoLog, fmt.Sprintf("%d:%s", b.tick, state))
	return nil
}

var errBus = errors.New("bus fault")
