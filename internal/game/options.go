package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/dnchess-go/internal/config"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. A nil logger leaves the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithFEN starts the game from a FEN position instead of the configured one.
func WithFEN(fen string) Option {
	return func(g *Game) {
		g.startFEN = fen
	}
}

// WithConfig supplies the starting position and tags of the game.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithID sets the game ID instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}
