// Package config loads the game configuration from YAML with environment
// overrides and applies difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// TetrisConfig is the on-disk game configuration.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board" envPrefix:"BOARD_"`
	Level   LevelConfig   `yaml:"level" envPrefix:"LEVEL_"`
	Preview PreviewConfig `yaml:"preview" envPrefix:"PREVIEW_"`
}

// BoardConfig sets the playfield geometry.
type BoardConfig struct {
	Width      int `yaml:"width" env:"WIDTH"`
	Height     int `yaml:"height" env:"HEIGHT"`
	HiddenRows int `yaml:"hidden_rows" env:"HIDDEN_ROWS"`
	SpawnX     int `yaml:"spawn_x" env:"SPAWN_X"`
	SpawnY     int `yaml:"spawn_y" env:"SPAWN_Y"`
}

// LevelConfig sets the starting level and whether it advances.
type LevelConfig struct {
	Start       int  `yaml:"start" env:"START"`
	Progression bool `yaml:"progression" env:"PROGRESSION"`
}

// PreviewConfig sets how many upcoming pieces are shown.
type PreviewConfig struct {
	Count int `yaml:"count" env:"COUNT"`
}

// EngineConfig converts the file format into the engine's configuration.
func (c TetrisConfig) EngineConfig() engine.Config {
	return engine.Config{
		Width:       c.Board.Width,
		Height:      c.Board.Height,
		HiddenRows:  c.Board.HiddenRows,
		SpawnX:      c.Board.SpawnX,
		SpawnY:      c.Board.SpawnY,
		StartLevel:  c.Level.Start,
		Progression: c.Level.Progression,
		Preview:     c.Preview.Count,
	}
}

// Validate checks that the configuration describes a playable board.
func (c TetrisConfig) Validate() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DefaultTetrisConfig returns the built-in configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	d := engine.DefaultConfig()
	return TetrisConfig{
		Board: BoardConfig{
			Width:      d.Width,
			Height:     d.Height,
			HiddenRows: d.HiddenRows,
			SpawnX:     d.SpawnX,
			SpawnY:     d.SpawnY,
		},
		Level: LevelConfig{
			Start:       d.StartLevel,
			Progression: d.Progression,
		},
		Preview: PreviewConfig{
			Count: d.Preview,
		},
	}
}
