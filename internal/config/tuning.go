package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay parameter of the simulation.
// Speeds are in logical units per reference frame (1/60s); the simulation
// rescales them to its tick length.
type Tuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	TickRate        int `yaml:"tickRate"`        // Simulation ticks per second
	MaxTicksPerStep int `yaml:"maxTicksPerStep"` // Catch-up cap after a stall

	Player PlayerTuning `yaml:"player"`
	Weapon WeaponTuning `yaml:"weapon"`
	Fire   FireTuning   `yaml:"fire"`
	Enemy  EnemyTuning  `yaml:"enemy"`
	Power  PowerTuning  `yaml:"powerup"`

	LevelUpScore      int     `yaml:"levelUpScore"`
	SpeedBonusEvery   int     `yaml:"speedBonusEvery"` // Levels between player speed bonuses
	SpeedBonus        float64 `yaml:"speedBonus"`
	ExplosionFade     float64 `yaml:"explosionFade"` // Opacity lost per reference frame
	ScoreBoostFactor  int     `yaml:"scoreBoostFactor"`
	PlayerHitDamage   int     `yaml:"playerHitDamage"`
	DiagonalFactor    float64 `yaml:"diagonalFactor"`
	PlayerBottomInset float64 `yaml:"playerBottomInset"` // Spawn distance from the bottom edge
}

// PlayerTuning configures the ship.
type PlayerTuning struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	MaxHealth int     `yaml:"maxHealth"`
	Lives     int     `yaml:"lives"`
}

// WeaponTuning configures the starting weapon.
type WeaponTuning struct {
	Name        string  `yaml:"name"`
	Damage      int     `yaml:"damage"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BulletSpeed float64 `yaml:"bulletSpeed"`
	Color       string  `yaml:"color"`
	SpreadX     float64 `yaml:"spreadX"` // Lateral offset of double-shot bullets
}

// FireTuning configures the shot cooldown tiers.
type FireTuning struct {
	Delay      time.Duration `yaml:"delay"`
	BoostDelay time.Duration `yaml:"boostDelay"`
	RapidDelay time.Duration `yaml:"rapidDelay"`
}

// EnemyTuning configures the spawner and the three enemy tiers.
type EnemyTuning struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MinInterval     time.Duration `yaml:"minInterval"`
	IntervalStep    time.Duration `yaml:"intervalStep"` // Subtracted per level on every spawn
	MaxPerSpawn     int           `yaml:"maxPerSpawn"`
	Tiers           []EnemyTier   `yaml:"tiers"`
}

// EnemyTier describes one enemy type. Health and speed grow with level.
type EnemyTier struct {
	Size           float64 `yaml:"size"`
	Color          string  `yaml:"color"`
	BaseHealth     int     `yaml:"baseHealth"`
	HealthPerLevel int     `yaml:"healthPerLevel"`
	BaseSpeed      float64 `yaml:"baseSpeed"`
	SpeedPerLevel  float64 `yaml:"speedPerLevel"`
	Score          int     `yaml:"score"`
}

// PowerTuning configures powerup spawning and effects.
type PowerTuning struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	SpawnChance float64 `yaml:"spawnChance"` // Per tick
	DropChance  float64 `yaml:"dropChance"`  // Per enemy defeat

	HealAmount     int           `yaml:"healAmount"`
	DropHealAmount int           `yaml:"dropHealAmount"`
	RapidFire      time.Duration `yaml:"rapidFire"`
	DropRapidFire  time.Duration `yaml:"dropRapidFire"`
	Shield         time.Duration `yaml:"shield"`
	DoubleShot     time.Duration `yaml:"doubleShot"`
	ScoreBoost     time.Duration `yaml:"scoreBoost"`
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		Width:           800,
		Height:          600,
		TickRate:        60,
		MaxTicksPerStep: 5,
		Player: PlayerTuning{
			Width:     40,
			Height:    40,
			Speed:     5,
			MaxHealth: 100,
			Lives:     3,
		},
		Weapon: WeaponTuning{
			Name:        "BASIC LASER",
			Damage:      10,
			Width:       4,
			Height:      12,
			BulletSpeed: 10,
			Color:       "#00ffff",
			SpreadX:     10,
		},
		Fire: FireTuning{
			Delay:      200 * time.Millisecond,
			BoostDelay: 100 * time.Millisecond,
			RapidDelay: 50 * time.Millisecond,
		},
		Enemy: EnemyTuning{
			InitialInterval: 1000 * time.Millisecond,
			MinInterval:     200 * time.Millisecond,
			IntervalStep:    50 * time.Millisecond,
			MaxPerSpawn:     3,
			Tiers: []EnemyTier{
				{Size: 30, Color: "#ff5555", BaseHealth: 10, HealthPerLevel: 2, BaseSpeed: 1, SpeedPerLevel: 0.2, Score: 100},
				{Size: 40, Color: "#ffaa00", BaseHealth: 20, HealthPerLevel: 3, BaseSpeed: 0.8, SpeedPerLevel: 0.15, Score: 200},
				{Size: 50, Color: "#ff00ff", BaseHealth: 30, HealthPerLevel: 4, BaseSpeed: 0.6, SpeedPerLevel: 0.1, Score: 300},
			},
		},
		Power: PowerTuning{
			Size:           30,
			Speed:          2,
			SpawnChance:    0.01,
			DropChance:     0.2,
			HealAmount:     30,
			DropHealAmount: 20,
			RapidFire:      10 * time.Second,
			DropRapidFire:  5 * time.Second,
			Shield:         15 * time.Second,
			DoubleShot:     8 * time.Second,
			ScoreBoost:     12 * time.Second,
		},
		LevelUpScore:      1000,
		SpeedBonusEvery:   5,
		SpeedBonus:        0.5,
		ExplosionFade:     0.02,
		ScoreBoostFactor:  2,
		PlayerHitDamage:   20,
		DiagonalFactor:    0.7071,
		PlayerBottomInset: 100,
	}
}

// TickDuration returns the length of one simulation tick.
func (t Tuning) TickDuration() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// LoadTuning reads a YAML file over DefaultTuning and validates the result.
// Keys absent from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("invalid tuning: %w", err)
	}

	return tuning, nil
}

// MaxTickRate bounds Tuning.TickRate so a tick stays long enough to
// move anything.
const MaxTickRate = 1000

// Validate checks the tuning for values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error

	if t.Width <= 0 || t.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", t.Width, t.Height))
	}
	if t.TickRate <= 0 || t.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tickRate must be within [1,%d], got %d", MaxTickRate, t.TickRate))
	}
	if t.MaxTicksPerStep < 1 {
		errs = append(errs, fmt.Errorf("maxTicksPerStep must be at least 1, got %d", t.MaxTicksPerStep))
	}
	if t.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.maxHealth must be positive, got %d", t.Player.MaxHealth))
	}
	if t.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", t.Player.Lives))
	}
	if len(t.Enemy.Tiers) == 0 {
		errs = append(errs, errors.New("enemy.tiers cannot be empty"))
	}
	// A tiers list in YAML replaces every default tier, so each entry
	// must be complete.
	for i, tier := range t.Enemy.Tiers {
		if tier.Size <= 0 || tier.BaseHealth <= 0 || tier.BaseSpeed <= 0 {
			errs = append(errs, fmt.Errorf("enemy.tiers[%d] needs positive size, baseHealth and baseSpeed, got %v, %d, %v",
				i, tier.Size, tier.BaseHealth, tier.BaseSpeed))
		}
		if tier.Score < 0 {
			errs = append(errs, fmt.Errorf("enemy.tiers[%d].score cannot be negative, got %d", i, tier.Score))
		}
	}
	if t.Enemy.MaxPerSpawn < 1 {
		errs = append(errs, fmt.Errorf("enemy.maxPerSpawn must be at least 1, got %d", t.Enemy.MaxPerSpawn))
	}
	if t.Enemy.MinInterval <= 0 || t.Enemy.InitialInterval < t.Enemy.MinInterval {
		errs = append(errs, fmt.Errorf("enemy intervals invalid: initial %v, min %v", t.Enemy.InitialInterval, t.Enemy.MinInterval))
	}
	if t.LevelUpScore <= 0 {
		errs = append(errs, fmt.Errorf("levelUpScore must be positive, got %d", t.LevelUpScore))
	}
	if t.SpeedBonusEvery <= 0 {
		errs = append(errs, fmt.Errorf("speedBonusEvery must be positive, got %d", t.SpeedBonusEvery))
	}
	for name, p := range map[string]float64{
		"powerup.spawnChance": t.Power.SpawnChance,
		"powerup.dropChance":  t.Power.DropChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, p))
		}
	}

	return errors.Join(errs...)
}

// TuningFromEnv loads the file named by PIXELSHOOTER_TUNING, or returns
// the defaults when the variable is unset.
func TuningFromEnv() (Tuning, error) {
	path := GetEnv("PIXELSHOOTER_TUNING", "")
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}
