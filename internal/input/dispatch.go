package input

import "github.com/tomz197/pixelshooter/internal/game"

// Apply maps the frame's one-shot keys onto a session transition for the
// session's current state and reports whether the state changed.
// Quit, sound and leaderboard actions are left to the frontend.
//
//	menu      ENTER or SPACE starts
//	playing   P or ESC pauses, R restarts, a SPACE press shoots at once
//	paused    P, ESC or ENTER resumes, M returns to the menu, R restarts
//	gameOver  ENTER or R plays again, M returns to the menu
func Apply(s *game.Session, f Frame) bool {
	before := s.State()

	switch before {
	case game.StateMenu:
		if f.Has(ActionConfirm) || f.FirePressed {
			s.Start()
		}
	case game.StatePlaying:
		switch {
		case f.Has(ActionPause), f.Has(ActionEscape):
			s.Pause()
		case f.Has(ActionRestart):
			s.Restart()
		case f.FirePressed:
			s.Shoot()
		}
	case game.StatePaused:
		switch {
		case f.Has(ActionPause), f.Has(ActionEscape), f.Has(ActionConfirm):
			s.Resume()
		case f.Has(ActionMenu):
			s.ShowMenu()
		case f.Has(ActionRestart):
			s.Restart()
		}
	case game.StateGameOver:
		switch {
		case f.Has(ActionConfirm), f.Has(ActionRestart):
			s.Start()
		case f.Has(ActionMenu):
			s.ShowMenu()
		}
	}

	return s.State() != before
}
