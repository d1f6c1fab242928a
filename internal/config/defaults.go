package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// Matches the classic pacing: 0.27s per row, 5ms faster every 5s, floor 0.12s.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Speed: SpeedConfig{
			Enabled:         true,
			InitialInterval: 270 * time.Millisecond,
			MinInterval:     120 * time.Millisecond,
			Decrement:       5 * time.Millisecond,
			SpeedUpEvery:    5 * time.Second,
		},
		Scoring: ScoringConfig{
			PointsPerRow: 10,
		},
		Spawn: SpawnConfig{
			X: 5,
			Y: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
