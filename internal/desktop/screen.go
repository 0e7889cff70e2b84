package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/pixelshooter/internal/draw"
	"github.com/tomz197/pixelshooter/internal/game"
	"github.com/tomz197/pixelshooter/internal/scene"
)

const leaderboardRows = 10

var (
	hudColor    = nrgba(draw.RGB(0, 255, 0), 1)
	dimColor    = nrgba(draw.Gray, 1)
	titleColor  = nrgba(draw.Cyan, 1)
	alertColor  = nrgba(draw.Red, 1)
	recordColor = nrgba(draw.Gold, 1)
	white       = nrgba(draw.White, 1)
	shade       = color.NRGBA{A: 170}
	barBack     = nrgba(draw.RGB(0x33, 0x33, 0x33), 1)
)

func (g *Game) draw(screen *ebiten.Image, now time.Time) {
	snap := g.session.Snapshot()
	scene.Draw(painter{dst: screen, face: g.face}, snap, scene.Options{Background: true, Grid: true})

	if snap.State != game.StateMenu {
		g.drawHUD(screen, snap)
	}

	w, h := float64(g.width), float64(g.height)
	if snap.State != game.StatePlaying {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shade, false)
	}

	switch {
	case g.leaderboard:
		g.drawLeaderboard(screen, snap)
	case snap.State == game.StateMenu:
		g.drawStartScreen(screen, snap, now)
	case snap.State == game.StatePaused:
		g.drawPausedScreen(screen)
	case snap.State == game.StateGameOver:
		g.drawGameOverScreen(screen, snap, now)
	}

	if notice := g.activeNotice(now); notice != "" {
		g.text(screen, notice, w/2, 110, recordColor, text.AlignCenter, 3)
	}
}

func (g *Game) text(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align, scale float64) {
	drawText(dst, g.face, s, x, y, clr, align, scale)
}

func (g *Game) centered(dst *ebiten.Image, s string, y float64, clr color.Color, scale float64) {
	g.text(dst, s, float64(g.width)/2, y, clr, text.AlignCenter, scale)
}

// gauge draws a filled bar of frac in [0,1].
func gauge(dst *ebiten.Image, x, y, w, h, frac float64, clr color.Color) {
	frac = max(0, min(1, frac))
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), barBack, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w*frac), float32(h), clr, false)
}

func (g *Game) drawHUD(dst *ebiten.Image, snap game.Snapshot) {
	w, h := float64(g.width), float64(g.height)

	g.text(dst, fmt.Sprintf("SCORE: %d", snap.Score), 10, 20, hudColor, text.AlignStart, 2)
	g.text(dst, fmt.Sprintf("LEVEL: %d", snap.Level), w-10, 20, hudColor, text.AlignEnd, 2)
	g.text(dst, fmt.Sprintf("LIVES: %d", snap.Player.Lives), 10, 48, hudColor, text.AlignStart, 2)
	g.text(dst, fmt.Sprintf("KILLS: %d", snap.Kills), w-10, 48, hudColor, text.AlignEnd, 2)

	health := snap.HealthPercent()
	healthColor := nrgba(scene.HealthColor(float64(health)/100), 1)
	g.text(dst, "HP", 10, 76, healthColor, text.AlignStart, 2)
	gauge(dst, 40, 68, 160, 16, float64(health)/100, healthColor)

	for i, e := range snap.Effects {
		y := 84 + float64(i)*26
		clr := nrgba(draw.ParseHex(e.Kind.Color()), 1)
		g.text(dst, fmt.Sprintf("%s %.0fs", e.Kind.Label(), e.Remaining.Seconds()), w-130, y, clr, text.AlignEnd, 2)
		gauge(dst, w-120, y-7, 110, 14, e.Fraction, clr)
	}

	g.text(dst, snap.Player.Weapon.Name, 10, h-16, dimColor, text.AlignStart, 2)
	g.text(dst, fmt.Sprintf("HI: %d", snap.HighScore), w-10, h-16, dimColor, text.AlignEnd, 2)
}

func (g *Game) drawStartScreen(dst *ebiten.Image, snap game.Snapshot, now time.Time) {
	h := float64(g.height)

	g.centered(dst, "PIXEL SHOOTER", h/2-170, titleColor, 6)
	g.centered(dst, fmt.Sprintf("HIGH SCORE: %d", snap.HighScore), h/2-90, recordColor, 2)

	controls := []string{
		"WASD / Arrows    Move",
		"SPACE            Shoot",
		"SHIFT            Fire faster",
		"P / ESC          Pause",
		"Q                Quit",
	}
	for i, line := range controls {
		g.centered(dst, line, h/2-40+float64(i)*24, hudColor, 2)
	}

	if now.UnixMilli()/600%2 == 0 {
		g.centered(dst, "Press SPACE to Start", h/2+110, white, 3)
	}
	g.centered(dst, fmt.Sprintf("B  Leaderboard    T  Sound: %s", onOff(g.sound.Enabled())), h/2+160, dimColor, 2)
}

func (g *Game) drawPausedScreen(dst *ebiten.Image) {
	h := float64(g.height)

	g.centered(dst, "PAUSED", h/2-80, white, 5)
	lines := []string{
		"P / ESC / ENTER   Resume",
		"R                 Restart",
		"M                 Menu",
		"B                 Leaderboard",
		fmt.Sprintf("T                 Sound %s", onOff(g.sound.Enabled())),
	}
	for i, line := range lines {
		g.centered(dst, line, h/2-10+float64(i)*24, hudColor, 2)
	}
}

func (g *Game) drawGameOverScreen(dst *ebiten.Image, snap game.Snapshot, now time.Time) {
	h := float64(g.height)

	g.centered(dst, "GAME OVER", h/2-110, alertColor, 6)
	g.centered(dst, fmt.Sprintf("Final score: %d", snap.Score), h/2-30, white, 3)
	g.centered(dst, fmt.Sprintf("Level %d  .  %d kills", snap.Level, snap.Kills), h/2+10, hudColor, 2)
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		g.centered(dst, "NEW HIGH SCORE!", h/2+50, recordColor, 3)
	}
	if now.UnixMilli()/600%2 == 0 {
		g.centered(dst, "Press ENTER to Play Again", h/2+100, white, 2)
	}
	g.centered(dst, "M  Menu    B  Leaderboard    Q  Quit", h/2+140, dimColor, 2)
}

func (g *Game) drawLeaderboard(dst *ebiten.Image, snap game.Snapshot) {
	entries := g.scores.Leaderboard()
	top := float64(g.height)/2 - 170

	g.centered(dst, "TOP SCORES", top, recordColor, 4)
	for i := 0; i < leaderboardRows; i++ {
		line := fmt.Sprintf("%2d. %-16s %8s", i+1, "---", "")
		clr := hudColor
		if i < len(entries) {
			line = fmt.Sprintf("%2d. %-16s %8d", i+1, entries[i].Name, entries[i].Score)
			if entries[i].Name == snap.Name {
				clr = titleColor
			}
		}
		g.centered(dst, line, top+60+float64(i)*26, clr, 2)
	}
	g.centered(dst, "B  Back", top+60+leaderboardRows*26+20, dimColor, 2)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
