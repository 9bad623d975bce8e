//go:build windows
// +build windows

package idle

import (
	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// newPlatformSampler creates a Windows-specific idle sampler.
func newPlatformSampler() (interfaces.IdleSampler, error) {
	return NewWindowsSampler(), nil
}
