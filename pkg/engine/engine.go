// Package engine implements the inactivity-triggered audio mute and
// restore loop.
package engine

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

const (
	// DefaultThreshold applies until SetThreshold is called.
	DefaultThreshold = 5 * time.Minute

	// DefaultPollInterval is the pause between ticks of the monitor loop.
	DefaultPollInterval = 5 * time.Second

	// quietLevel is the volume applied while audio is lowered.
	quietLevel = 0.0

	// volumeEpsilon is the tolerance below which a volume already counts
	// as quiet, skipping the redundant platform call.
	volumeEpsilon = 0.02
)

// ErrInvalidThreshold is returned by SetThreshold for zero or negative durations.
var ErrInvalidThreshold = errors.New("inactivity threshold must be greater than zero")

// errMissingAdapters is the permanent Start outcome when the engine was
// built without its platform adapters.
var errMissingAdapters = errors.New("engine has no platform adapters")

// SessionFactory acquires the platform audio session for the monitor
// loop. It is invoked on the loop's own locked OS thread.
type SessionFactory func() (interfaces.AudioSession, error)

// snapshot records the endpoint state captured when audio is lowered, so
// the exact state can be restored when input resumes.
type snapshot struct {
	volume float64
	muted  bool
}

// Engine drives the default audio endpoint between a normal and a
// lowered state based on system input idle time. One Engine exists per
// process; Start, Stop and SetThreshold are safe to call from any
// goroutine, concurrently with the running loop.
type Engine struct {
	sampler  interfaces.IdleSampler
	sessions SessionFactory
	log      logrus.FieldLogger
	poll     time.Duration

	// Whole seconds; the loop reads this once per tick. Sub-second
	// staleness of an update is acceptable, bounded by the poll interval.
	thresholdSecs atomic.Int64

	startOnce sync.Once
	startErr  error
	started   atomic.Bool

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates an Engine. A non-positive poll interval selects
// DefaultPollInterval.
func New(sampler interfaces.IdleSampler, sessions SessionFactory, log logrus.FieldLogger, poll time.Duration) *Engine {
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	e := &Engine{
		sampler:  sampler,
		sessions: sessions,
		log:      log,
		poll:     poll,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	e.thresholdSecs.Store(int64(DefaultThreshold / time.Second))
	return e
}

// Start spawns the monitor loop. It is idempotent: only the first call
// spawns, and every call (including concurrent ones) returns the outcome
// of that first attempt. A loop that later dies from a platform error is
// not restarted; the failure is logged and the monitor stays down.
func (e *Engine) Start() error {
	e.startOnce.Do(func() {
		if e.sampler == nil || e.sessions == nil {
			e.startErr = errMissingAdapters
			return
		}

		e.log.WithField("threshold", e.Threshold()).Info("starting sound inactivity monitor")
		e.started.Store(true)
		go e.run()
	})
	return e.startErr
}

// Stop asks the monitor loop to exit and waits for it to wind down.
// Stopping an engine that never started, or stopping twice, is safe.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
	if e.started.Load() {
		<-e.done
	}
}

// SetThreshold updates the inactivity threshold. The duration is floored
// to whole seconds with a minimum of one second; the running loop picks
// up the new value on its next tick. Zero and negative durations are
// rejected and leave the stored threshold unchanged.
func (e *Engine) SetThreshold(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidThreshold
	}

	secs := int64(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	e.thresholdSecs.Store(secs)
	e.log.WithField("threshold_seconds", secs).Debug("inactivity threshold updated")
	return nil
}

// Threshold returns the currently configured inactivity threshold.
func (e *Engine) Threshold() time.Duration {
	return time.Duration(e.thresholdSecs.Load()) * time.Second
}

func (e *Engine) run() {
	defer close(e.done)

	// The COM apartment on Windows is bound to the OS thread that
	// initialized it; the session must be acquired, used and released on
	// this one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	session, err := e.sessions()
	if err != nil {
		e.log.WithError(err).Error("audio session setup failed; monitor not running")
		return
	}
	defer func() {
		if err := session.Close(); err != nil {
			e.log.WithError(err).Warn("closing audio session")
		}
	}()

	if err := e.loop(session.Controller()); err != nil {
		e.log.WithError(err).Error("sound inactivity monitor stopped")
	}
}

// loop is the poll loop: read threshold, read idle time, apply the
// transition rule, sleep. Any platform error is terminal.
func (e *Engine) loop(ctl interfaces.AudioController) error {
	lowered := false
	var prior snapshot

	defer func() {
		// Never leave the machine silenced when the loop winds down.
		if lowered {
			if err := restore(ctl, prior); err != nil {
				e.log.WithError(err).Warn("restoring audio state on exit")
			}
		}
	}()

	for {
		threshold := e.Threshold()

		idle, err := e.sampler.IdleTime()
		if err != nil {
			return fmt.Errorf("read idle time: %w", err)
		}

		switch {
		case idle >= threshold && !lowered:
			prior, err = lower(ctl)
			if err != nil {
				return fmt.Errorf("lower audio: %w", err)
			}
			lowered = true
			e.log.WithFields(logrus.Fields{
				"idle":   idle,
				"volume": prior.volume,
				"muted":  prior.muted,
			}).Info("input idle, audio lowered")

		case idle < threshold && lowered:
			if err := restore(ctl, prior); err != nil {
				return fmt.Errorf("restore audio: %w", err)
			}
			lowered = false
			e.log.WithField("volume", prior.volume).Info("input resumed, audio restored")
		}

		select {
		case <-e.stop:
			return nil
		case <-time.After(e.poll):
		}
	}
}

// lower snapshots the endpoint state, then silences it. The endpoint is
// muted before the volume drops so no audible blip escapes in between.
func lower(ctl interfaces.AudioController) (snapshot, error) {
	volume, err := ctl.Volume()
	if err != nil {
		return snapshot{}, fmt.Errorf("read volume: %w", err)
	}

	muted, err := ctl.Muted()
	if err != nil {
		return snapshot{}, fmt.Errorf("read mute state: %w", err)
	}

	prior := snapshot{volume: volume, muted: muted}

	if !muted {
		if err := ctl.SetMute(true); err != nil {
			return prior, fmt.Errorf("mute: %w", err)
		}
	}

	if math.Abs(volume-quietLevel) > volumeEpsilon {
		if err := ctl.SetVolume(quietLevel); err != nil {
			return prior, fmt.Errorf("set quiet volume: %w", err)
		}
	}

	return prior, nil
}

// restore returns the endpoint to the snapshot state. A mute flag the
// user had set before the engine intervened is left alone.
func restore(ctl interfaces.AudioController, prior snapshot) error {
	if err := ctl.SetVolume(prior.volume); err != nil {
		return fmt.Errorf("restore volume: %w", err)
	}

	if !prior.muted {
		if err := ctl.SetMute(false); err != nil {
			return fmt.Errorf("unmute: %w", err)
		}
	}

	return nil
}
