// Package audio wraps the platform's default audio render endpoint behind
// a small volume and mute control surface.
package audio

import (
	"errors"
	"math"

	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// ErrUnsupported is returned when no audio control backend exists for the
// current platform.
var ErrUnsupported = errors.New("audio endpoint control is not supported on this platform")

// NewSession acquires the platform audio resources and resolves the
// current default render endpoint. The endpoint is resolved once; a
// default-device change mid-run is not tracked. On Windows the session
// initializes a COM apartment, so NewSession and Close must run on the
// same locked OS thread.
func NewSession() (interfaces.AudioSession, error) {
	return newPlatformSession()
}

// clampLevel bounds a scalar volume level to [0, 1].
func clampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}

// levelToPercent converts a [0, 1] scalar to a whole percentage.
func levelToPercent(level float64) int {
	return int(math.Round(clampLevel(level) * 100))
}

// percentToLevel converts a percentage to a [0, 1] scalar.
func percentToLevel(percent int) float64 {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return float64(percent) / 100
}
