//go:build windows
// +build windows

package idle

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount64   = kernel32.NewProc("GetTickCount64")
)

// lastInputInfo mirrors the Win32 LASTINPUTINFO structure.
type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

// WindowsSampler reads system idle time from GetLastInputInfo, which
// tracks keyboard, mouse, touch and pen input.
type WindowsSampler struct{}

// NewWindowsSampler creates a Windows idle sampler.
func NewWindowsSampler() *WindowsSampler {
	return &WindowsSampler{}
}

// IdleTime returns the elapsed time since the last input event.
func (s *WindowsSampler) IdleTime() (time.Duration, error) {
	var info lastInputInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, callErr := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return 0, fmt.Errorf("GetLastInputInfo: %w", callErr)
	}

	// GetTickCount64 avoids the 49.7 day rollover of the 32-bit counter,
	// but dwTime is still 32-bit; millisBetween clamps the difference.
	ticks, _, _ := procGetTickCount64.Call()

	return millisBetween(uint64(ticks), uint64(info.dwTime)), nil
}
