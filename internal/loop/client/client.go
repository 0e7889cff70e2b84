// Package client runs one terminal connection: it reads keys, steps a game
// session and renders it with the half-block canvas.
package client

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	appconfig "github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/draw"
	"github.com/tomz197/pixelshooter/internal/game"
	"github.com/tomz197/pixelshooter/internal/input"
	"github.com/tomz197/pixelshooter/internal/loop/config"
	"github.com/tomz197/pixelshooter/internal/loop/server"
	"github.com/tomz197/pixelshooter/internal/scene"
	"github.com/tomz197/pixelshooter/internal/sound"
	"github.com/tomz197/pixelshooter/internal/store"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	session      *game.Session
	state        *ClientState
	canvas       *draw.Canvas
	painter      *scene.CanvasPainter
	screen       *draw.Screen // Composes canvas and text into one write per frame
	writer       io.Writer
	inputStream  *input.Stream
	sound        *sound.Player
	settings     store.KV
	logger       *log.Logger
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Tuning       *appconfig.Tuning // nil uses the defaults
	Rand         *rand.Rand        // nil seeds randomly
	Sound        *sound.Player     // nil is silent
	Settings     store.KV          // Where the sound toggle is saved; nil skips saving
	Logger       *log.Logger       // nil discards
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	username := sanitizeUsername(opts.Username)
	player := opts.Sound
	if player == nil {
		player = sound.Silent()
	}

	handle := gs.RegisterClient(username)

	var sessionLogger *log.Logger
	if opts.Logger != nil {
		sessionLogger = opts.Logger.With("user", username)
	}
	session := game.NewSession(game.Options{
		Tuning:     opts.Tuning,
		Rand:       opts.Rand,
		Recorder:   gs.Recorder(handle.ID),
		PlayerName: username,
		Logger:     sessionLogger,
	})
	snap := session.Snapshot()

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, snap.Width, snap.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		session:      session,
		state:        NewClientState(),
		canvas:       canvas,
		painter:      scene.NewCanvasPainter(canvas),
		screen:       draw.NewScreen(w, canvas),
		writer:       w,
		inputStream:  input.StartStream(r),
		sound:        player,
		settings:     opts.Settings,
		logger:       opts.Logger,
		lastInput:    time.Now(),
		username:     username,
		termSizeFunc: termSizeFunc,
	}
}

// sanitizeUsername trims the name to the display limit. Empty names get a
// placeholder.
func sanitizeUsername(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return config.DefaultUsername
	}
	if len(runes) > config.MaxUsernameLength {
		runes = runes[:config.MaxUsernameLength]
	}
	return string(runes)
}

// Session returns the client's game session.
func (c *Client) Session() *game.Session {
	return c.session
}

// Run starts the client loop. Blocks until the client quits, the server
// shuts it down or ctx is cancelled. An unfinished run is recorded.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	defer c.server.UnregisterClient(c.handle.ID)
	defer c.abandonRun()

	lastTime := time.Now()

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput(frameStart)
		c.processServerEvents(frameStart)
		c.updateScreen()
		c.update(frameStart)

		if err := c.drawFrame(frameStart); err != nil {
			return fmt.Errorf("failed to draw frame: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// abandonRun records a run cut short by a disconnect.
func (c *Client) abandonRun() {
	c.session.Pause()
	if c.session.ShowMenu() && c.logger != nil {
		c.logger.Info("run abandoned", "user", c.username)
	}
}

// processInput reads the frame's keys and tracks inactivity.
func (c *Client) processInput(now time.Time) {
	f := c.inputStream.Read(now)
	c.state.Input = f

	if len(f.Actions) > 0 || f.Keys != (game.Keys{}) {
		c.lastInput = now
		c.state.isInactive = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.state.Running = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityWarnUser {
		if !c.state.isInactive {
			c.session.Pause()
		}
		c.state.isInactive = true
	}

	if f.Has(input.ActionQuit) {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents(now time.Time) {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventNewRecord:
				c.state.setNotice(fmt.Sprintf("NEW RECORD BY %s: %d", event.Username, event.Score), now, config.NoticeDuration)
			case server.EventServerShutdown:
				c.session.Pause()
				c.state.Overlay = OverlayShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution
// and the playfield's aspect ratio, and computes the centering offset for
// the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)

	// A cell holds two pixels vertically.
	if fit := int(math.Round(float64(renderHeight*2) * config.PlayfieldAspect)); renderWidth > fit {
		renderWidth = fit
	}
	if fit := int(math.Round(float64(renderWidth) / config.PlayfieldAspect / 2)); renderHeight > fit {
		renderHeight = fit
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// update applies the frame's actions and advances the session.
func (c *Client) update(now time.Time) {
	if c.state.Overlay == OverlayShutdown {
		c.updateShutdownState()
		return
	}
	if c.state.isInactive {
		return
	}

	c.handleActions(c.state.Input)
	c.session.Step(now, c.state.Input.Keys)

	cues := c.session.DrainEvents()
	c.sound.Play(cues...)
	for _, cue := range cues {
		if cue == game.CueLevelUp {
			level := c.session.Snapshot().Level
			c.state.setNotice(fmt.Sprintf("LEVEL %d", level), now, config.NoticeDuration)
		}
	}
}

// handleActions applies the frame's one-shot keys. Overlays close when
// the session changes state.
func (c *Client) handleActions(f input.Frame) {
	if f.Has(input.ActionSound) {
		c.toggleSound()
	}
	if f.Has(input.ActionLeaderboard) && c.session.State() != game.StatePlaying {
		if c.state.Overlay == OverlayLeaderboard {
			c.state.Overlay = OverlayNone
		} else {
			c.state.Overlay = OverlayLeaderboard
		}
	}

	if input.Apply(c.session, f) {
		c.state.Overlay = OverlayNone
	}
}

// toggleSound flips sound and saves the preference.
func (c *Client) toggleSound() {
	on := c.sound.Toggle()
	if c.settings == nil {
		return
	}
	if err := store.SaveSettings(c.settings, store.Settings{Sound: on}); err != nil && c.logger != nil {
		c.logger.Warn("failed to save settings", "err", err)
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
