//go:build darwin
// +build darwin

package idle

import (
	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// newPlatformSampler creates a Darwin-specific idle sampler.
func newPlatformSampler() (interfaces.IdleSampler, error) {
	return NewDarwinSampler(), nil
}
