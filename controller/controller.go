// Package controller runs the intersection: two signal heads, the pedestrian
// call and the proximity gate, advanced once per tick.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joeyede/intersection/config"
	"github.com/joeyede/intersection/pulse"
	"github.com/joeyede/intersection/signal"
)

// Mode selects how the cross head is scheduled.
type Mode int

const (
	// Independent runs both heads on their own clock, half a cycle apart.
	Independent Mode = iota
	// Follower derives the cross head from the main head every tick.
	Follower
)

func (m Mode) String() string {
	if m == Follower {
		return "follower"
	}
	return "independent"
}

type Config struct {
	Mode                Mode
	Durations           signal.Durations
	SpeedupTicks        uint
	AmbientLowThreshold int
	ProximityThreshold  int
	GateOpenTicks       uint
	GateMotionTicks     uint
	ServoOpenDuty       int
	ServoClosedDuty     int
}

func DefaultConfig() Config {
	return Config{
		Mode:                Independent,
		Durations:           config.Durations(),
		SpeedupTicks:        config.SpeedupTicks,
		AmbientLowThreshold: config.AmbientLowThreshold,
		ProximityThreshold:  config.ProximityThreshold,
		GateOpenTicks:       config.GateOpenTicks,
		GateMotionTicks:     config.GateMotionTicks,
		ServoOpenDuty:       config.ServoOpenDuty,
		ServoClosedDuty:     config.ServoClosedDuty,
	}
}

type Controller struct {
	cfg     Config
	sensors Sensors
	act     Actuators

	main  *signal.TrafficLight
	cross *signal.TrafficLight

	gate   *pulse.Timer
	motion *pulse.Timer

	wasPressed bool
}

// New builds the controller and writes the initial outputs: both heads in
// their start aspect, gate closed and servo unpowered.
func New(cfg Config, s Sensors, a Actuators) (*Controller, error) {
	mainHead, err := signal.New(cfg.Durations, signal.Green)
	if err != nil {
		return nil, fmt.Errorf("main head: %w", err)
	}
	crossHead, err := signal.New(cfg.Durations, signal.Red)
	if err != nil {
		return nil, fmt.Errorf("cross head: %w", err)
	}

	c := &Controller{
		cfg:     cfg,
		sensors: s,
		act:     a,
		main:    mainHead,
		cross:   crossHead,
		gate:    pulse.New(cfg.GateOpenTicks),
		motion:  pulse.New(cfg.GateMotionTicks),
	}
	if cfg.Mode == Follower {
		c.cross.SyncWith(c.main)
	}

	errs := c.writeSignals()
	errs = append(errs,
		a.SetStreetLight(false),
		a.SetServoDuty(cfg.ServoClosedDuty),
		a.SetServoEnabled(false),
	)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("initial outputs: %w", err)
	}
	return c, nil
}

// Tick runs one control period. A failed sensor sample skips the tick;
// actuator failures are collected and do not stop the remaining steps.
func (c *Controller) Tick() error {
	r, err := c.sensors.Sample()
	if err != nil {
		return fmt.Errorf("sample sensors: %w", err)
	}

	errs := []error{c.act.SetStreetLight(r.Ambient < c.cfg.AmbientLowThreshold)}

	if r.Pedestrian && !c.wasPressed {
		log.Printf("Pedestrian call, skipping %d ticks", c.cfg.SpeedupTicks)
		c.main.ForceSpeedupBy(c.cfg.SpeedupTicks)
		if c.cfg.Mode == Independent {
			c.cross.ForceSpeedupBy(c.cfg.SpeedupTicks)
		}
	}
	c.wasPressed = r.Pedestrian

	if r.Proximity > c.cfg.ProximityThreshold {
		c.gate.Pulse()
	}

	c.main.Tick()
	if c.cfg.Mode == Follower {
		c.cross.SyncWith(c.main)
	} else {
		c.cross.Tick()
	}
	errs = append(errs, c.writeSignals()...)

	if open, changed := c.gate.Tick(); changed {
		c.motion.Pulse()
		duty := c.cfg.ServoClosedDuty
		if open {
			duty = c.cfg.ServoOpenDuty
		}
		log.Printf("Gate open=%t, servo duty %d", open, duty)
		errs = append(errs, c.act.SetServoDuty(duty))
	}

	if moving, changed := c.motion.Tick(); changed {
		errs = append(errs, c.act.SetServoEnabled(moving))
	}

	return errors.Join(errs...)
}

func (c *Controller) writeSignals() []error {
	var errs []error
	for _, h := range []Head{Main, Cross} {
		red, yellow, green := c.light(h).Lamps()
		if err := c.act.SetSignal(h, red, yellow, green); err != nil {
			errs = append(errs, fmt.Errorf("%s head: %w", h, err))
		}
	}
	return errs
}

func (c *Controller) light(h Head) *signal.TrafficLight {
	if h == Main {
		return c.main
	}
	return c.cross
}

// Aspect reports what head h currently shows.
func (c *Controller) Aspect(h Head) signal.Phase {
	return c.light(h).Aspect()
}

func (c *Controller) GateOpen() bool { return c.gate.Active() }

// Run calls Tick for every value received on ticks until ctx is done or
// ticks is closed. Tick errors are logged and the loop carries on.
func (c *Controller) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := c.Tick(); err != nil {
				log.Printf("Tick failed: %v", err)
			}
		}
	}
}
