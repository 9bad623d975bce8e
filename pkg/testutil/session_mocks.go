package testutil

import (
	"sync"

	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
)

// MockAudioSession is a thread-safe mock implementation of interfaces.AudioSession
type MockAudioSession struct {
	mu         sync.Mutex
	controller *MockAudioController
	closeCalls int
}

// NewMockAudioSession creates a session around the given controller
func NewMockAudioSession(controller *MockAudioController) *MockAudioSession {
	return &MockAudioSession{controller: controller}
}

// Controller implements the AudioSession interface
func (m *MockAudioSession) Controller() interfaces.AudioController {
	return m.controller
}

// Close implements the AudioSession interface
func (m *MockAudioSession) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	return nil
}

// CloseCalls returns how many times Close was invoked
func (m *MockAudioSession) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalls
}
