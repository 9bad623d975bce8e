package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/josemoura212/sound-inactivity/pkg/audio"
	"github.com/josemoura212/sound-inactivity/pkg/config"
	"github.com/josemoura212/sound-inactivity/pkg/engine"
	"github.com/josemoura212/sound-inactivity/pkg/idle"
)

// defaultTimeoutMinutes applies when the timeout command carries no value.
const defaultTimeoutMinutes = 5

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config *config.Config
	Logger *logrus.Logger
	Engine *engine.Engine

	// platformErr is set when the current platform has no idle-time or
	// audio backend; the monitor and the timeout command both surface it.
	platformErr error
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, logger *logrus.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	sampler, err := idle.NewSampler()
	if err != nil {
		deps.platformErr = err
		return deps
	}

	deps.Engine = engine.New(sampler, audio.NewSession, logger, cfg.PollInterval)
	return deps
}

// Application wires the monitor engine to the process lifecycle.
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// StartMonitor launches the background monitor. Failures are logged and
// never abort application startup.
func (a *Application) StartMonitor() {
	if a.deps.platformErr != nil {
		a.deps.Logger.WithError(a.deps.platformErr).Error("sound inactivity monitoring unavailable")
		return
	}

	go func() {
		if err := a.deps.Engine.Start(); err != nil {
			a.deps.Logger.WithError(err).Error("failed to start sound inactivity monitor")
		}
	}()
}

// SetTimeoutMinutes applies the inactivity timeout command. A nil value
// selects the default of five minutes; zero is rejected.
func (a *Application) SetTimeoutMinutes(minutes *uint64) error {
	if a.deps.platformErr != nil {
		return fmt.Errorf("sound inactivity monitoring is not supported on this platform: %w", a.deps.platformErr)
	}

	m := uint64(defaultTimeoutMinutes)
	if minutes != nil {
		m = *minutes
	}

	if m == 0 {
		return errors.New("the inactivity timeout must be greater than zero")
	}

	return a.deps.Engine.SetThreshold(minutesToDuration(m))
}

// Stop gracefully stops the monitor.
func (a *Application) Stop() {
	if a.deps.Engine != nil {
		a.deps.Engine.Stop()
	}
}

// minutesToDuration converts whole minutes to a duration, saturating
// instead of overflowing for absurdly large values.
func minutesToDuration(minutes uint64) time.Duration {
	const maxSecs = uint64(math.MaxInt64 / int64(time.Second))

	secs := minutes * 60
	if secs/60 != minutes || secs > maxSecs {
		secs = maxSecs
	}

	return time.Duration(secs) * time.Second
}
