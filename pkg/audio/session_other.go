//go:build !windows && !linux && !darwin
// +build !windows,!linux,!darwin

package audio

import (
	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// newPlatformSession fails on platforms without an audio control backend.
func newPlatformSession() (interfaces.AudioSession, error) {
	return nil, ErrUnsupported
}
