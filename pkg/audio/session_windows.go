//go:build windows
// +build windows

package audio

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"

	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// comSession owns the COM apartment and the chain of Core Audio objects
// behind the default render endpoint. All fields are released in reverse
// acquisition order by Close, including on partially acquired sessions.
type comSession struct {
	enumerator *wca.IMMDeviceEnumerator
	device     *wca.IMMDevice
	endpoint   *wca.IAudioEndpointVolume
}

// newPlatformSession initializes COM and activates the endpoint volume
// interface of the default render device.
func newPlatformSession() (interfaces.AudioSession, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return nil, fmt.Errorf("initialize COM: %w", err)
	}

	s := &comSession{}
	if err := s.acquire(); err != nil {
		// Close releases whatever acquire managed to obtain.
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

func (s *comSession) acquire() error {
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &s.enumerator); err != nil {
		return fmt.Errorf("create device enumerator: %w", err)
	}

	if err := s.enumerator.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &s.device); err != nil {
		return fmt.Errorf("get default render endpoint: %w", err)
	}

	if err := s.device.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &s.endpoint); err != nil {
		return fmt.Errorf("activate endpoint volume control: %w", err)
	}

	return nil
}

// Controller returns the endpoint volume controller for this session.
func (s *comSession) Controller() interfaces.AudioController {
	return &endpointController{endpoint: s.endpoint}
}

// Close releases the Core Audio objects and uninitializes COM. It must be
// called on the thread that created the session.
func (s *comSession) Close() error {
	if s.endpoint != nil {
		s.endpoint.Release()
		s.endpoint = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.enumerator != nil {
		s.enumerator.Release()
		s.enumerator = nil
	}
	ole.CoUninitialize()
	return nil
}

// endpointController drives IAudioEndpointVolume on the default render
// device.
type endpointController struct {
	endpoint *wca.IAudioEndpointVolume
}

func (c *endpointController) Volume() (float64, error) {
	var level float32
	if err := c.endpoint.GetMasterVolumeLevelScalar(&level); err != nil {
		return 0, fmt.Errorf("get master volume: %w", err)
	}
	return float64(level), nil
}

func (c *endpointController) SetVolume(level float64) error {
	if err := c.endpoint.SetMasterVolumeLevelScalar(float32(clampLevel(level)), nil); err != nil {
		return fmt.Errorf("set master volume: %w", err)
	}
	return nil
}

func (c *endpointController) Muted() (bool, error) {
	var muted bool
	if err := c.endpoint.GetMute(&muted); err != nil {
		return false, fmt.Errorf("get mute state: %w", err)
	}
	return muted, nil
}

func (c *endpointController) SetMute(muted bool) error {
	if err := c.endpoint.SetMute(muted, nil); err != nil {
		return fmt.Errorf("set mute state: %w", err)
	}
	return nil
}
