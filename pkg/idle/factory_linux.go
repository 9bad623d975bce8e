//go:build linux
// +build linux

package idle

import (
	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// newPlatformSampler creates a Linux-specific idle sampler.
func newPlatformSampler() (interfaces.IdleSampler, error) {
	sampler, err := NewX11Sampler()
	if err != nil {
		return nil, err
	}
	return sampler, nil
}
