package config

import (
	"fmt"

	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/errors"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// StartFEN is the starting position of every new game
	StartFEN string

	// Tags are copied into every new game record
	Tags map[string]string
}

// NewGameConfig creates a GameConfig starting from the standard position
// with the seven tag roster placeholders.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN: engine.InitialFEN,
		Tags: map[string]string{
			"Event":  "?",
			"Site":   "?",
			"Date":   "????.??.??",
			"Round":  "?",
			"White":  "?",
			"Black":  "?",
			"Result": "*",
		},
	}
}

// Validate checks that the starting position can be set up.
func (g *GameConfig) Validate() error {
	if _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
