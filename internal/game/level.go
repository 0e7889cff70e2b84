package game

// LevelFor derives the level from a score: score/threshold + 1.
func LevelFor(score, threshold int) int {
	if threshold <= 0 || score < 0 {
		return 1
	}
	return score/threshold + 1
}

// updateLevel recomputes the level and applies the speed bonus once for
// every bonus level crossed since the last tick.
func (s *Session) updateLevel() {
	next := LevelFor(s.score, s.tuning.LevelUpScore)
	if next <= s.level {
		return
	}
	for l := s.level + 1; l <= next; l++ {
		if l%s.tuning.SpeedBonusEvery == 0 {
			s.player.Speed += s.tuning.SpeedBonus
		}
	}
	s.level = next
	s.emit(CueLevelUp)
	s.logf("level up", "level", s.level, "speed", s.player.Speed)
}
