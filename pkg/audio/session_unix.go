//go:build linux || darwin
// +build linux darwin

package audio

import (
	"fmt"

	volume "github.com/itchyny/volume-go"

	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// mixerController drives the default output device through the system
// mixer (amixer/pactl on Linux, osascript on macOS). The mixer exposes
// whole percentages; levels are converted to the [0, 1] scalar contract.
type mixerController struct{}

func (mixerController) Volume() (float64, error) {
	percent, err := volume.GetVolume()
	if err != nil {
		return 0, fmt.Errorf("get volume: %w", err)
	}
	return percentToLevel(percent), nil
}

func (mixerController) SetVolume(level float64) error {
	if err := volume.SetVolume(levelToPercent(level)); err != nil {
		return fmt.Errorf("set volume: %w", err)
	}
	return nil
}

func (mixerController) Muted() (bool, error) {
	muted, err := volume.GetMuted()
	if err != nil {
		return false, fmt.Errorf("get mute state: %w", err)
	}
	return muted, nil
}

func (mixerController) SetMute(muted bool) error {
	if muted {
		if err := volume.Mute(); err != nil {
			return fmt.Errorf("mute: %w", err)
		}
		return nil
	}
	if err := volume.Unmute(); err != nil {
		return fmt.Errorf("unmute: %w", err)
	}
	return nil
}

// mixerSession has no resources of its own; the mixer tools are invoked
// per call.
type mixerSession struct {
	controller mixerController
}

// newPlatformSession probes the mixer once so a machine without a usable
// output device fails at startup instead of on the first transition.
func newPlatformSession() (interfaces.AudioSession, error) {
	var c mixerController
	if _, err := c.Volume(); err != nil {
		return nil, fmt.Errorf("probe default output device: %w", err)
	}
	return &mixerSession{controller: c}, nil
}

func (s *mixerSession) Controller() interfaces.AudioController {
	return s.controller
}

func (s *mixerSession) Close() error {
	return nil
}
