//go:build darwin
// +build darwin

package idle

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DarwinSampler reads system idle time from the IOHIDSystem registry
// entry via ioreg.
type DarwinSampler struct {
	cmdExecutor func(name string, args ...string) ([]byte, error)
}

// NewDarwinSampler creates a Darwin (macOS) idle sampler.
func NewDarwinSampler() *DarwinSampler {
	return &DarwinSampler{
		cmdExecutor: defaultDarwinCmdExecutor,
	}
}

func defaultDarwinCmdExecutor(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}

// IdleTime returns the elapsed time since the last input event.
func (s *DarwinSampler) IdleTime() (time.Duration, error) {
	output, err := s.cmdExecutor("ioreg", "-c", "IOHIDSystem", "-d", "4")
	if err != nil {
		return 0, fmt.Errorf("execute ioreg: %w", err)
	}

	idleNanos, err := s.parseHIDIdleTime(output)
	if err != nil {
		return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
	}

	return time.Duration(idleNanos), nil
}

// parseHIDIdleTime extracts the HIDIdleTime value (nanoseconds) from
// ioreg output. Format: "HIDIdleTime" = 123456789
func (s *DarwinSampler) parseHIDIdleTime(output []byte) (int64, error) {
	lines := bytes.Split(output, []byte("\n"))
	for _, line := range lines {
		lineStr := string(bytes.TrimSpace(line))
		if !strings.Contains(lineStr, "HIDIdleTime") {
			continue
		}

		parts := strings.Split(lineStr, "=")
		if len(parts) != 2 {
			continue
		}

		valueStr := strings.TrimSpace(parts[1])
		valueStr = strings.Trim(valueStr, "\"")
		valueStr = strings.TrimSpace(valueStr)

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse idle time value: %w", err)
		}

		return value, nil
	}

	return 0, fmt.Errorf("HIDIdleTime not found in ioreg output")
}
