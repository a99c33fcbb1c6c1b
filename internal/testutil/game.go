package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/game"
	"github.com/lgbarn/dnchess-go/internal/notation"
)

// MustBoard sets up a board from FEN, failing the test on error.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	return board
}

// MustNewGame creates a game starting from fen, or from the initial
// position when fen is empty.
func MustNewGame(t *testing.T, fen string, opts ...game.Option) *game.Game {
	t.Helper()
	if fen != "" {
		opts = append(opts, game.WithFEN(fen))
	}
	g, err := game.New(opts...)
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	return g
}

// MustPlay creates a game like MustNewGame and plays moves in order.
// It calls t.Fatal on the first move the game rejects.
func MustPlay(t *testing.T, fen string, moves ...string) *game.Game {
	t.Helper()
	g := MustNewGame(t, fen)
	for _, text := range moves {
		if _, err := g.SubmitMove(text); err != nil {
			t.Fatalf("move %q rejected: %v", text, err)
		}
	}
	return g
}

// MustSplitScore splits a numbered game score into move texts.
func MustSplitScore(t *testing.T, score string) []string {
	t.Helper()
	moves, err := notation.SplitMoveText(strings.NewReader(score))
	if err != nil {
		t.Fatalf("failed to split score: %v", err)
	}
	return moves
}
