// Package desktop runs the shooter in a native window through ebiten.
package desktop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/pixelshooter/internal/config"
	"github.com/tomz197/pixelshooter/internal/game"
	"github.com/tomz197/pixelshooter/internal/input"
	"github.com/tomz197/pixelshooter/internal/logging"
	"github.com/tomz197/pixelshooter/internal/sound"
	"github.com/tomz197/pixelshooter/internal/store"
)

const noticeDuration = 3 * time.Second

// Options configures the window game.
type Options struct {
	PlayerName string
	Tuning     *config.Tuning
	KV         store.KV // Scores and settings; nil keeps them in memory
	Sound      *sound.Player
	Logger     *log.Logger
}

// Game implements ebiten.Game around one session.
type Game struct {
	session *game.Session
	scores  *store.Scores
	kv      store.KV
	sound   *sound.Player
	logger  *log.Logger
	face    text.Face

	width, height int
	leaderboard   bool
	notice        string
	noticeUntil   time.Time
}

// New builds the game on the title screen.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	kv := opts.KV
	if kv == nil {
		kv = store.NewMemoryKV()
	}
	player := opts.Sound
	if player == nil {
		player = sound.Silent()
	}

	scores := store.NewScores(kv, logger)
	session := game.NewSession(game.Options{
		Tuning:     opts.Tuning,
		Recorder:   scores,
		PlayerName: opts.PlayerName,
		Logger:     logger,
	})
	snap := session.Snapshot()

	return &Game{
		session: session,
		scores:  scores,
		kv:      kv,
		sound:   player,
		logger:  logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
		width:   int(snap.Width),
		height:  int(snap.Height),
	}
}

// Session exposes the running session.
func (g *Game) Session() *game.Session {
	return g.session
}

// Update reads the keyboard and advances the simulation.
func (g *Game) Update() error {
	f := input.Frame{Keys: keysFrom(ebiten.IsKeyPressed)}
	f.FirePressed, f.Actions = actionsFrom(inpututil.IsKeyJustPressed)
	return g.update(f, time.Now())
}

func (g *Game) update(f input.Frame, now time.Time) error {
	if f.Has(input.ActionQuit) {
		g.abandonRun()
		return ebiten.Termination
	}

	if f.Has(input.ActionSound) {
		g.toggleSound()
	}
	if f.Has(input.ActionLeaderboard) && g.session.State() != game.StatePlaying {
		g.leaderboard = !g.leaderboard
	}
	if input.Apply(g.session, f) {
		g.leaderboard = false
	}

	g.session.Step(now, f.Keys)

	cues := g.session.DrainEvents()
	g.sound.Play(cues...)
	for _, cue := range cues {
		if cue == game.CueLevelUp {
			g.notice = fmt.Sprintf("LEVEL %d", g.session.Snapshot().Level)
			g.noticeUntil = now.Add(noticeDuration)
		}
	}
	return nil
}

// abandonRun ends a run in progress so its score is still recorded.
func (g *Game) abandonRun() {
	g.session.Pause()
	g.session.ShowMenu()
}

func (g *Game) toggleSound() {
	on := g.sound.Toggle()
	if err := store.SaveSettings(g.kv, store.Settings{Sound: on}); err != nil {
		g.logger.Warn("Failed to save settings", "err", err)
	}
}

func (g *Game) activeNotice(now time.Time) string {
	if now.Before(g.noticeUntil) {
		return g.notice
	}
	return ""
}

// Draw renders the playfield and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.draw(screen, time.Now())
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close records a run still in progress.
func (g *Game) Close() {
	g.abandonRun()
}

var _ ebiten.Game = (*Game)(nil)
