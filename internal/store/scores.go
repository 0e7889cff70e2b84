package store

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/tomz197/pixelshooter/internal/game"
)

const (
	highScoreKey   = "highScore"
	leaderboardKey = "leaderboard"

	// LeaderboardSize is how many entries the board keeps.
	LeaderboardSize = 10
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `yaml:"name" json:"name"`
	Score int    `yaml:"score" json:"score"`
	Level int    `yaml:"level,omitempty" json:"level,omitempty"`
	Kills int    `yaml:"kills,omitempty" json:"kills,omitempty"`
}

// defaultBoard seeds an empty leaderboard.
var defaultBoard = []Entry{
	{Name: "PixelMaster", Score: 25430},
	{Name: "NFTHunter", Score: 18920},
	{Name: "LarryFan", Score: 15670},
	{Name: "BasementKing", Score: 12340},
	{Name: "RetroGamer", Score: 10150},
}

// Scores is the high score and leaderboard on top of a KV. It implements
// game.Recorder and is safe to share between sessions.
type Scores struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
	high   int
	board  []Entry
}

var _ game.Recorder = (*Scores)(nil)

// NewScores loads the stored high score and leaderboard. Unreadable
// values are logged and replaced by defaults.
func NewScores(kv KV, logger *log.Logger) *Scores {
	s := &Scores{kv: kv, logger: logger}

	high, err := s.loadHighScore()
	if err != nil {
		s.warn("high score unreadable, starting from 0", err)
	}
	s.high = high

	board, err := s.loadBoard()
	if err != nil {
		s.warn("leaderboard unreadable, using defaults", err)
		board = slices.Clone(defaultBoard)
	}
	s.board = board

	return s
}

func (s *Scores) loadHighScore() (int, error) {
	data, err := s.kv.Load(highScoreKey)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	high, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse high score: %w", err)
	}
	return max(high, 0), nil
}

func (s *Scores) loadBoard() ([]Entry, error) {
	data, err := s.kv.Load(leaderboardKey)
	if errors.Is(err, ErrNotFound) {
		return slices.Clone(defaultBoard), nil
	}
	if err != nil {
		return nil, err
	}
	var board []Entry
	if err := yaml.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard: %w", err)
	}
	return board, nil
}

// HighScore returns the best score recorded so far.
func (s *Scores) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.high
}

// RecordGame stores a finished run: the high score when beaten and a
// leaderboard entry when the run scored at all.
func (s *Scores) RecordGame(r game.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Score > s.high {
		s.high = r.Score
		if err := s.kv.Save(highScoreKey, []byte(strconv.Itoa(s.high))); err != nil {
			s.warn("failed to save high score", err)
		}
	}

	if r.Score <= 0 {
		return
	}
	name := r.Name
	if name == "" {
		name = "YOU"
	}
	s.board = append(s.board, Entry{Name: name, Score: r.Score, Level: r.Level, Kills: r.Kills})
	slices.SortStableFunc(s.board, func(a, b Entry) int { return b.Score - a.Score })
	if len(s.board) > LeaderboardSize {
		s.board = s.board[:LeaderboardSize]
	}

	data, err := yaml.Marshal(s.board)
	if err != nil {
		s.warn("failed to encode leaderboard", err)
		return
	}
	if err := s.kv.Save(leaderboardKey, data); err != nil {
		s.warn("failed to save leaderboard", err)
	}
}

// Leaderboard returns a copy of the board, best first.
func (s *Scores) Leaderboard() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.board)
}

func (s *Scores) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "err", err)
	}
}
