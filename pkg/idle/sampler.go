// Package idle provides system-wide input idle time sampling.
package idle

import (
	"errors"
	"time"

	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// ErrUnsupported is returned when no idle time source exists for the
// current platform.
var ErrUnsupported = errors.New("idle time sampling is not supported on this platform")

// NewSampler creates a platform-appropriate idle sampler.
// It returns:
// - WindowsSampler on Windows (GetLastInputInfo)
// - X11Sampler on Linux (MIT-SCREEN-SAVER extension)
// - DarwinSampler on macOS (ioreg HIDIdleTime)
// and ErrUnsupported everywhere else.
func NewSampler() (interfaces.IdleSampler, error) {
	return newPlatformSampler()
}

// millisBetween converts a pair of millisecond tick readings into an idle
// duration. Tick counters can wrap or reset below the recorded last-input
// time; the subtraction saturates at zero instead of going negative.
func millisBetween(current, lastInput uint64) time.Duration {
	if current < lastInput {
		return 0
	}
	return time.Duration(current-lastInput) * time.Millisecond
}
