package main

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/josemoura212/sound-inactivity/pkg/config"
	"github.com/josemoura212/sound-inactivity/pkg/engine"
	"github.com/josemoura212/sound-inactivity/pkg/interfaces"
	"github.com/josemoura212/sound-inactivity/pkg/testutil"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testApplication() (*Application, *testutil.MockAudioController) {
	ctl := testutil.NewMockAudioController(0.5, false)
	session := testutil.NewMockAudioSession(ctl)
	factory := func() (interfaces.AudioSession, error) {
		return session, nil
	}

	logger := testLogger()
	deps := &Dependencies{
		Config: config.DefaultConfig(),
		Logger: logger,
		Engine: engine.New(testutil.NewMockIdleSampler(), factory, logger, time.Millisecond),
	}
	return NewApplication(deps), ctl
}

func TestApplication_SetTimeoutMinutes(t *testing.T) {
	minutes := func(m uint64) *uint64 { return &m }

	tests := []struct {
		name              string
		minutes           *uint64
		expectErr         bool
		expectedThreshold time.Duration
	}{
		{
			name:              "Absent value selects five minutes",
			minutes:           nil,
			expectedThreshold: 5 * time.Minute,
		},
		{
			name:              "Explicit minutes",
			minutes:           minutes(12),
			expectedThreshold: 12 * time.Minute,
		},
		{
			name:              "One minute",
			minutes:           minutes(1),
			expectedThreshold: time.Minute,
		},
		{
			name:      "Zero rejected",
			minutes:   minutes(0),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testApplication()

			err := app.SetTimeoutMinutes(tt.minutes)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("SetTimeoutMinutes returned unexpected error: %v", err)
			}
			if got := app.deps.Engine.Threshold(); got != tt.expectedThreshold {
				t.Errorf("threshold = %v, want %v", got, tt.expectedThreshold)
			}
		})
	}
}

func TestApplication_SetTimeoutMinutes_ZeroKeepsThreshold(t *testing.T) {
	app, _ := testApplication()

	twelve := uint64(12)
	if err := app.SetTimeoutMinutes(&twelve); err != nil {
		t.Fatalf("SetTimeoutMinutes: %v", err)
	}

	zero := uint64(0)
	if err := app.SetTimeoutMinutes(&zero); err == nil {
		t.Fatal("expected error for zero timeout")
	}

	if got := app.deps.Engine.Threshold(); got != 12*time.Minute {
		t.Errorf("rejected command changed threshold to %v", got)
	}
}

func TestApplication_SetTimeoutMinutes_UnsupportedPlatform(t *testing.T) {
	platformErr := errors.New("no idle source")
	deps := &Dependencies{
		Config:      config.DefaultConfig(),
		Logger:      testLogger(),
		platformErr: platformErr,
	}
	app := NewApplication(deps)

	err := app.SetTimeoutMinutes(nil)
	if !errors.Is(err, platformErr) {
		t.Errorf("expected wrapped platform error, got %v", err)
	}
}

func TestApplication_StartMonitor_UnsupportedPlatformDoesNotPanic(t *testing.T) {
	deps := &Dependencies{
		Config:      config.DefaultConfig(),
		Logger:      testLogger(),
		platformErr: errors.New("no idle source"),
	}
	app := NewApplication(deps)

	app.StartMonitor()
	app.Stop()
}

func TestMinutesToDuration(t *testing.T) {
	tests := []struct {
		name     string
		minutes  uint64
		expected time.Duration
	}{
		{
			name:     "Five minutes",
			minutes:  5,
			expected: 5 * time.Minute,
		},
		{
			name:     "One minute",
			minutes:  1,
			expected: time.Minute,
		},
		{
			name:     "Multiplication overflow saturates",
			minutes:  math.MaxUint64,
			expected: time.Duration(math.MaxInt64/int64(time.Second)) * time.Second,
		},
		{
			name:     "Seconds overflow saturates",
			minutes:  math.MaxUint64 / 60,
			expected: time.Duration(math.MaxInt64/int64(time.Second)) * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minutesToDuration(tt.minutes); got != tt.expected {
				t.Errorf("minutesToDuration(%d) = %v, want %v", tt.minutes, got, tt.expected)
			}
			if got := minutesToDuration(tt.minutes); got <= 0 {
				t.Errorf("minutesToDuration(%d) = %v, must be positive", tt.minutes, got)
			}
		})
	}
}
