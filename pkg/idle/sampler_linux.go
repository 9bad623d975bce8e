//go:build linux
// +build linux

package idle

import (
	"fmt"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"
)

// X11Sampler queries the MIT-SCREEN-SAVER extension for the time since
// the last input event on any device the X server knows about.
type X11Sampler struct {
	conn *xgb.Conn
	root xproto.Window
}

// NewX11Sampler connects to the X server and initializes the screensaver
// extension. The connection is held for the lifetime of the sampler.
func NewX11Sampler() (*X11Sampler, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	if err := screensaver.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize MIT-SCREEN-SAVER extension: %w", err)
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root

	return &X11Sampler{conn: conn, root: root}, nil
}

// IdleTime returns the elapsed time since the last input event.
func (s *X11Sampler) IdleTime() (time.Duration, error) {
	info, err := screensaver.QueryInfo(s.conn, xproto.Drawable(s.root)).Reply()
	if err != nil {
		return 0, fmt.Errorf("query screensaver idle info: %w", err)
	}

	return time.Duration(info.MsSinceUserInput) * time.Millisecond, nil
}

// Close releases the X server connection.
func (s *X11Sampler) Close() error {
	s.conn.Close()
	return nil
}
