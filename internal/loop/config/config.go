// Package config holds the frame loop and session-hosting constants shared
// by the terminal and SSH frontends.
package config

import "time"

// Max render resolution in terminal cells. Larger terminals get a centered
// playfield with a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// PlayfieldAspect is width over height of the playfield in half-block
// pixels (one cell is one pixel wide and two tall), matching 800x600.
const PlayfieldAspect = 4.0 / 3.0

// Player
const (
	MaxUsernameLength = 16 // Maximum display length for player usernames
	DefaultUsername   = "PLAYER"
)

// Leaderboard overlay rows
const LeaderboardRows = 10

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Notices from other sessions (new records) stay on screen this long.
const NoticeDuration = 4 * time.Second

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
