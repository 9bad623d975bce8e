//go:build !windows && !linux && !darwin
// +build !windows,!linux,!darwin

package idle

import (
	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// newPlatformSampler fails on platforms without an idle time source.
func newPlatformSampler() (interfaces.IdleSampler, error) {
	return nil, ErrUnsupported
}
