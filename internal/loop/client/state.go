package client

import (
	"time"

	"github.com/tomz197/pixelshooter/internal/input"
)

// Overlay is what the client draws on top of the session's own screen.
type Overlay int

const (
	OverlayNone        Overlay = iota
	OverlayLeaderboard         // Top scores, reachable from menu, pause and game over
	OverlayShutdown            // Server is shutting down
)

// ClientState holds per-connection state that is not part of the game
// session: input, overlays, notices and connection lifetime.
type ClientState struct {
	Input         input.Frame
	Overlay       Overlay
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	notice        string        // Transient message, e.g. another player's record
	noticeUntil   time.Time
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running: true,
	}
}

// setNotice shows msg until now+d.
func (s *ClientState) setNotice(msg string, now time.Time, d time.Duration) {
	s.notice = msg
	s.noticeUntil = now.Add(d)
}

// activeNotice returns the notice if it has not expired.
func (s *ClientState) activeNotice(now time.Time) string {
	if now.Before(s.noticeUntil) {
		return s.notice
	}
	return ""
}
