package game

// Cue is a gameplay moment a frontend may voice or log.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueEnemyExplode
	CuePlayerHit
	CueLifeLost
	CueHealth
	CuePowerup
	CueShield
	CueLevelUp
	CueStart
	CuePause
	CueResume
	CueGameOver
)

var cueNames = [...]string{
	CueShoot:        "shoot",
	CueHit:          "hit",
	CueEnemyExplode: "enemyExplode",
	CuePlayerHit:    "playerHit",
	CueLifeLost:     "lifeLost",
	CueHealth:       "health",
	CuePowerup:      "powerup",
	CueShield:       "shield",
	CueLevelUp:      "levelUp",
	CueStart:        "start",
	CuePause:        "pause",
	CueResume:       "resume",
	CueGameOver:     "gameOver",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// maxPendingCues bounds the queue when no frontend drains it.
const maxPendingCues = 256

func (s *Session) emit(c Cue) {
	if len(s.events) >= maxPendingCues {
		copy(s.events, s.events[1:])
		s.events = s.events[:len(s.events)-1]
	}
	s.events = append(s.events, c)
}

// DrainEvents returns the cues raised since the previous call, oldest first.
func (s *Session) DrainEvents() []Cue {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
