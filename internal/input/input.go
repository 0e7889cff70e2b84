// Package input turns raw terminal bytes into held keys and one-shot
// actions for the frame loop.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/pixelshooter/internal/game"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals send no key-up events, so holding relies on auto-repeat.
const keyHoldDuration = 120 * time.Millisecond

// Action is a discrete command triggered once per key press.
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	ActionEscape
	ActionConfirm
	ActionMenu
	ActionRestart
	ActionSound
	ActionLeaderboard
)

// Frame is the input for one frame.
type Frame struct {
	Keys        game.Keys
	FirePressed bool // Fire went from released to held this frame
	Actions     []Action
}

// Has reports whether the frame carries the action.
func (f Frame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// keyState tracks the last time each held key was seen.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
	boost time.Time
}

// Stream delivers input bytes via a channel and tracks key state across
// frames.
type Stream struct {
	ch     chan byte
	state  keyState
	firing bool
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel closes when r returns an error.
func StartStream(r io.Reader) *Stream {
	s := newStream()
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Read drains all available bytes without blocking and returns the frame
// input. A closed reader yields ActionQuit.
func (s *Stream) Read(now time.Time) Frame {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	f := s.Feed(buf, now)
	if s.closed {
		f.Actions = append(f.Actions, ActionQuit)
	}
	return f
}

// Feed parses buf as the bytes received at now and returns the frame.
func (s *Stream) Feed(buf []byte, now time.Time) Frame {
	var f Frame

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		if a, ok := applyByte(&s.state, b, now); ok {
			f.Actions = append(f.Actions, a)
		}
	}

	held := func(t time.Time) bool { return !t.IsZero() && now.Sub(t) < keyHoldDuration }
	f.Keys = game.Keys{
		Up:    held(s.state.up),
		Down:  held(s.state.down),
		Left:  held(s.state.left),
		Right: held(s.state.right),
		Fire:  held(s.state.fire),
		Boost: held(s.state.boost),
	}
	f.FirePressed = f.Keys.Fire && !s.firing
	s.firing = f.Keys.Fire
	return f
}

// applyByte updates held-key timestamps for b, or returns the action b
// triggers. Uppercase movement letters mean shift is held, which boosts
// the fire rate.
func applyByte(state *keyState, b byte, now time.Time) (Action, bool) {
	switch b {
	case 'a', 'h':
		state.left = now
	case 'd', 'l':
		state.right = now
	case 'w', 'k':
		state.up = now
	case 's', 'j':
		state.down = now
	case 'A', 'H':
		state.left, state.boost = now, now
	case 'D', 'L':
		state.right, state.boost = now, now
	case 'W', 'K':
		state.up, state.boost = now, now
	case 'S', 'J':
		state.down, state.boost = now, now
	case ' ':
		state.fire = now
	case 'q', 'Q', '\x03':
		return ActionQuit, true
	case 'p', 'P':
		return ActionPause, true
	case '\x1b':
		return ActionEscape, true
	case '\n', '\r':
		return ActionConfirm, true
	case 'm', 'M':
		return ActionMenu, true
	case 'r', 'R':
		return ActionRestart, true
	case 't', 'T':
		return ActionSound, true
	case 'b', 'B':
		return ActionLeaderboard, true
	}
	return 0, false
}
