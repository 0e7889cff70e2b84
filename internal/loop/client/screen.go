package client

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/pixelshooter/internal/draw"
	"github.com/tomz197/pixelshooter/internal/game"
	"github.com/tomz197/pixelshooter/internal/loop/config"
	"github.com/tomz197/pixelshooter/internal/scene"
)

// Title art (figlet "small" font)
var titleArt = []string{
	` ___ _____  _____ _        ___ _  _  ___   ___ _____ ___ ___ `,
	`| _ \_ _\ \/ / __| |      / __| || |/ _ \ / _ \_   _| __| _ \`,
	`|  _/| | >  <| _|| |__    \__ \ __ | (_) | (_) || | | _||   /`,
	`|_| |___/_/\_\___|____|   |___/_||_|\___/ \___/ |_| |___|_|_\`,
}

var gameOverArt = []string{
	`  ___   _   __  __ ___    _____   _____ ___ `,
	` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
	`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
	` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
}

var (
	hudColor    = draw.RGB(0, 255, 0)
	dimColor    = draw.Gray
	titleColor  = draw.Cyan
	alertColor  = draw.Red
	recordColor = draw.Gold
)

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	snap := c.session.Snapshot()

	c.canvas.Clear()
	scene.Draw(c.painter, snap, scene.Options{})

	// Changed cells, then the border when the terminal exceeds the max
	// render resolution
	c.screen.DrawCanvas()
	c.painter.FlushGlyphs(c.screen)

	// Draw UI overlay
	c.drawUI(snap, now)

	return c.screen.Flush()
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI(snap game.Snapshot, now time.Time) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerY := termHeight / 2

	if c.state.Overlay == OverlayShutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY, now)
		return
	}

	if snap.State != game.StateMenu {
		c.drawHUD(termWidth, termHeight, snap)
	}

	if c.state.Overlay == OverlayLeaderboard {
		c.drawLeaderboard(centerY)
		return
	}

	switch snap.State {
	case game.StateMenu:
		c.drawStartScreen(centerY, snap, now)
	case game.StatePaused:
		c.drawPausedScreen(centerY)
	case game.StateGameOver:
		c.drawGameOverScreen(centerY, snap, now)
	}

	if notice := c.state.activeNotice(now); notice != "" {
		c.centered(3, recordColor, notice)
	}
}

// text writes s at a canvas cell. Text that does not fit is dropped.
func (c *Client) text(col, row int, color draw.Color, s string) {
	c.screen.Text(col, row, color, s)
}

// centered writes s horizontally centered on row.
func (c *Client) centered(row int, color draw.Color, s string) {
	n := utf8.RuneCountInString(s)
	c.text((c.canvas.TerminalWidth()-n)/2+1, row, color, s)
}

// drawArt draws art centered from row, or the fallback text when the
// canvas is too narrow. Returns the number of rows used.
func (c *Client) drawArt(row int, color draw.Color, art []string, fallback string) int {
	width := 0
	for _, line := range art {
		width = max(width, len(line))
	}
	if width > c.canvas.TerminalWidth() {
		c.centered(row, color, fallback)
		return 1
	}
	col := (c.canvas.TerminalWidth()-width)/2 + 1
	for i, line := range art {
		c.text(col, row+i, color, line)
	}
	return len(art)
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerY int, snap game.Snapshot, now time.Time) {
	row := centerY - 8
	row += c.drawArt(row, titleColor, titleArt, "PIXEL SHOOTER") + 1

	c.centered(row, dimColor, "~ Larry Pixel Shooter ~")
	row += 2
	c.centered(row, recordColor, fmt.Sprintf("HIGH SCORE: %d", snap.HighScore))
	row += 2

	c.centered(row, hudColor, "Controls")
	controlLines := []string{
		"WASD / Arrows  . . . . Move",
		"SPACE  . . . . . . .  Shoot",
		"Shift+move  . .  Fire faster",
		"P / ESC  . . . . . .  Pause",
		"Q  . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.centered(row+1+i, hudColor, line)
	}
	row += len(controlLines) + 2

	// Blinking start prompt
	if now.UnixMilli()/600%2 == 0 {
		c.centered(row, draw.White, ">>  Press SPACE to Start  <<")
	} else {
		c.centered(row, draw.White, strings.Repeat(" ", 28))
	}
	c.centered(row+2, dimColor, fmt.Sprintf("B  Leaderboard    T  Sound: %-3s", onOff(c.sound.Enabled())))
}

// drawHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawHUD(termWidth, termHeight int, snap game.Snapshot) {
	c.text(2, 1, hudColor, fmt.Sprintf("SCORE: %-8d", snap.Score))

	levelText := fmt.Sprintf("LEVEL: %-3d", snap.Level)
	c.text(termWidth-len(levelText), 1, hudColor, levelText)

	c.text(2, 2, hudColor, fmt.Sprintf("LIVES: %-2d", snap.Player.Lives))

	health := snap.HealthPercent()
	c.text(2, 3, scene.HealthColor(float64(health)/100), fmt.Sprintf("HP: %s %3d%%", bar(health, 100, 10), health))

	killsText := fmt.Sprintf("KILLS: %-5d", snap.Kills)
	c.text(termWidth-len(killsText), 2, hudColor, killsText)

	// Active effects, right side below the counters
	for i, e := range snap.Effects {
		line := fmt.Sprintf("%-11s %s %3.0fs", e.Kind.Label(), bar(int(e.Fraction*100), 100, 6), e.Remaining.Seconds())
		c.text(termWidth-utf8.RuneCountInString(line), 4+i, draw.ParseHex(e.Kind.Color()), line)
	}

	// Weapon (bottom left)
	c.text(2, termHeight, dimColor, snap.Player.Weapon.Name)

	// High score and players online (bottom right)
	hiText := fmt.Sprintf("HI: %-8d", snap.HighScore)
	if players := c.server.Players(); players > 1 {
		hiText = fmt.Sprintf("Players: %-4d %s", players, hiText)
	}
	c.text(termWidth-len(hiText), termHeight, dimColor, hiText)
}

// bar renders value/total as a block gauge of the given width.
func bar(value, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := max(0, min(width, (value*width+total/2)/total))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// drawPausedScreen draws the pause menu.
func (c *Client) drawPausedScreen(centerY int) {
	c.centered(centerY-3, draw.White, "PAUSED")
	lines := []string{
		"P / ESC / ENTER . . Resume",
		"R  . . . . . . . . Restart",
		"M  . . . . . . . . . Menu",
		"B  . . . . . . Leaderboard",
		fmt.Sprintf("T  . . . . . . . Sound %-3s", onOff(c.sound.Enabled())),
	}
	for i, line := range lines {
		c.centered(centerY-1+i, hudColor, line)
	}
}

// drawGameOverScreen draws the final stats.
func (c *Client) drawGameOverScreen(centerY int, snap game.Snapshot, now time.Time) {
	row := centerY - 6
	row += c.drawArt(row, alertColor, gameOverArt, "GAME OVER") + 1

	c.centered(row, draw.White, fmt.Sprintf("Final score: %d", snap.Score))
	c.centered(row+1, hudColor, fmt.Sprintf("Level %d  .  %d kills", snap.Level, snap.Kills))
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		c.centered(row+3, recordColor, "NEW HIGH SCORE!")
	}

	if now.UnixMilli()/600%2 == 0 {
		c.centered(row+5, draw.White, ">>  Press ENTER to Play Again  <<")
	} else {
		c.centered(row+5, draw.White, strings.Repeat(" ", 33))
	}
	c.centered(row+7, dimColor, "M  Menu    B  Leaderboard    Q  Quit")
}

// drawLeaderboard draws the top scores.
func (c *Client) drawLeaderboard(centerY int) {
	entries := c.server.Leaderboard()
	row := centerY - config.LeaderboardRows/2 - 2

	c.centered(row, recordColor, "TOP SCORES")
	for i := 0; i < config.LeaderboardRows; i++ {
		line := fmt.Sprintf("%2d. %-16s %8s", i+1, "---", "")
		if i < len(entries) {
			line = fmt.Sprintf("%2d. %-16s %8d", i+1, entries[i].Name, entries[i].Score)
		}
		color := hudColor
		if i < len(entries) && entries[i].Name == c.username {
			color = titleColor
		}
		c.centered(row+2+i, color, line)
	}
	c.centered(row+config.LeaderboardRows+3, dimColor, "B  Back")
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int, now time.Time) {
	c.centered(centerY-2, alertColor, "INACTIVITY WARNING")

	remaining := int(config.InactivityDisconnectUser - now.Sub(c.lastInput).Seconds())
	c.centered(centerY, draw.White, fmt.Sprintf("Disconnecting in %3d seconds.", max(remaining, 0)))
	c.centered(centerY+2, dimColor, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.centered(centerY-3, alertColor, "SERVER SHUTTING DOWN")
	c.centered(centerY-1, draw.White, "The server is restarting for maintenance.")
	c.centered(centerY, draw.White, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.centered(centerY+2, hudColor, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	c.centered(centerY+4, dimColor, "Press Q to disconnect now")
}
