// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "time"

// IdleSampler reports how long the system has gone without keyboard or
// mouse input.
type IdleSampler interface {
	// IdleTime returns the elapsed time since the last user input event.
	// The result is never negative.
	IdleTime() (time.Duration, error)
}

// AudioController adjusts the system's default audio render endpoint.
// Volume levels are scalar values in [0, 1].
type AudioController interface {
	Volume() (float64, error)
	SetVolume(level float64) error
	Muted() (bool, error)
	SetMute(muted bool) error
}

// AudioSession owns the platform resources behind an AudioController.
// On Windows this includes the COM apartment; Close must be called on the
// same goroutine that created the session, on every exit path.
type AudioSession interface {
	Controller() AudioController
	Close() error
}
