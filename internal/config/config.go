// Package config provides YAML-based game configuration loading and
// difficulty presets for the falling-block puzzle.
package config

import "time"

// TetrisConfig contains all tunable parameters of the puzzle.
type TetrisConfig struct {
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

// SpeedConfig defines the fall-interval curve.
// The interval starts at InitialInterval and shrinks by Decrement every
// time SpeedUpEvery of play elapses, never dropping below MinInterval.
type SpeedConfig struct {
	Enabled         bool          `yaml:"enabled"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MinInterval     time.Duration `yaml:"min_interval"`
	Decrement       time.Duration `yaml:"decrement"`
	SpeedUpEvery    time.Duration `yaml:"speed_up_every"`
}

// ScoringConfig defines how cleared rows turn into points.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// SpawnConfig defines the anchor new pieces appear at.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown and empty strings yield "" and false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate fixes up values that would stall or break the drop loop.
// Zero or negative durations fall back to the defaults.
func (c *TetrisConfig) Validate() {
	def := DefaultTetrisConfig()

	if c.Speed.InitialInterval <= 0 {
		c.Speed.InitialInterval = def.Speed.InitialInterval
	}
	if c.Speed.MinInterval <= 0 {
		c.Speed.MinInterval = def.Speed.MinInterval
	}
	if c.Speed.MinInterval > c.Speed.InitialInterval {
		c.Speed.MinInterval = c.Speed.InitialInterval
	}
	if c.Speed.Decrement < 0 {
		c.Speed.Decrement = 0
	}
	if c.Speed.SpeedUpEvery <= 0 {
		c.Speed.SpeedUpEvery = def.Speed.SpeedUpEvery
	}
	if c.Scoring.PointsPerRow < 0 {
		c.Scoring.PointsPerRow = 0
	}
}
