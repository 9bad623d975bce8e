// Package testutil provides thread-safe mock implementations for testing.
package testutil

import (
	"sync"
	"time"
)

// MockIdleSampler is a thread-safe mock implementation of interfaces.IdleSampler
type MockIdleSampler struct {
	mu   sync.Mutex
	idle time.Duration
	err  error
}

// NewMockIdleSampler creates a new mock idle sampler
func NewMockIdleSampler() *MockIdleSampler {
	return &MockIdleSampler{}
}

// IdleTime implements the IdleSampler interface
func (m *MockIdleSampler) IdleTime() (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return 0, m.err
	}
	return m.idle, nil
}

// SetIdleTime sets the idle duration returned by IdleTime
func (m *MockIdleSampler) SetIdleTime(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idle = d
}

// SetError sets the error to return on IdleTime calls
func (m *MockIdleSampler) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// MockAudioController is a thread-safe mock implementation of
// interfaces.AudioController. It tracks write calls so tests can assert
// that no redundant platform calls happen.
type MockAudioController struct {
	mu     sync.Mutex
	volume float64
	muted  bool

	volumeErr    error
	mutedErr     error
	setVolumeErr error
	setMuteErr   error

	setVolumeCalls int
	setMuteCalls   int
}

// NewMockAudioController creates a mock controller with the given state
func NewMockAudioController(volume float64, muted bool) *MockAudioController {
	return &MockAudioController{volume: volume, muted: muted}
}

// Volume implements the AudioController interface
func (m *MockAudioController) Volume() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.volumeErr != nil {
		return 0, m.volumeErr
	}
	return m.volume, nil
}

// SetVolume implements the AudioController interface
func (m *MockAudioController) SetVolume(level float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setVolumeCalls++
	if m.setVolumeErr != nil {
		return m.setVolumeErr
	}
	m.volume = level
	return nil
}

// Muted implements the AudioController interface
func (m *MockAudioController) Muted() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mutedErr != nil {
		return false, m.mutedErr
	}
	return m.muted, nil
}

// SetMute implements the AudioController interface
func (m *MockAudioController) SetMute(muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setMuteCalls++
	if m.setMuteErr != nil {
		return m.setMuteErr
	}
	m.muted = muted
	return nil
}

// State returns the current volume and mute flag
func (m *MockAudioController) State() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, m.muted
}

// SetState replaces the current volume and mute flag
func (m *MockAudioController) SetState(volume float64, muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = volume
	m.muted = muted
}

// SetVolumeCalls returns how many times SetVolume was invoked
func (m *MockAudioController) SetVolumeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setVolumeCalls
}

// SetMuteCalls returns how many times SetMute was invoked
func (m *MockAudioController) SetMuteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setMuteCalls
}

// SetVolumeError sets the error to return on Volume calls
func (m *MockAudioController) SetVolumeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeErr = err
}

// SetMutedError sets the error to return on Muted calls
func (m *MockAudioController) SetMutedError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutedErr = err
}

// SetSetVolumeError sets the error to return on SetVolume calls
func (m *MockAudioController) SetSetVolumeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setVolumeErr = err
}

// SetSetMuteError sets the error to return on SetMute calls
func (m *MockAudioController) SetSetMuteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setMuteErr = err
}
