package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/pixelshooter/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player voices cues through the speaker. A Player without a device is
// silent; every method is still safe to call.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	device  bool
	enabled bool
	volume  float64
	logger  *log.Logger
}

// NewPlayer opens the audio device. On failure it returns a silent Player
// together with the error so callers can log and carry on.
func NewPlayer(enabled bool, logger *log.Logger) (*Player, error) {
	p := Silent()
	p.enabled = enabled
	p.logger = logger

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return p, fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(p.mixer)
	p.device = true
	return p, nil
}

// Silent returns a Player that never touches the audio device.
func Silent() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: 1,
	}
}

// Play voices each cue. Does nothing while disabled or without a device.
func (p *Player) Play(cues ...game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, cue := range cues {
		if p.logger != nil {
			p.logger.Debug("cue", "sound", cue)
		}
		if !p.device || !p.enabled {
			continue
		}
		s := Synthesize(cue, sampleRate, p.volume)
		if s == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Enabled reports whether cues are voiced.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetEnabled turns sound on or off. Turning it off cuts playing cues.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = on
	if !on && p.device {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Toggle flips the enabled state and returns the new one.
func (p *Player) Toggle() bool {
	on := !p.Enabled()
	p.SetEnabled(on)
	return on
}

// Close stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.device {
		return
	}
	speaker.Clear()
	p.device = false
}
