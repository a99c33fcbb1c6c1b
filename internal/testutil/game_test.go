package testutil

import (
	"testing"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
)

func TestMustNewGame(t *testing.T) {
	g := MustNewGame(t, "")
	AssertEqual(t, g.FEN(), engine.InitialFEN)

	fen := "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
	g = MustNewGame(t, fen)
	AssertEqual(t, g.FEN(), fen)
	AssertEqual(t, g.ToMove(), chess.Black)
}

func TestMustPlay(t *testing.T) {
	g := MustPlay(t, "", "P-K4", "P-QB4", "N-KB3")
	AssertEqual(t, g.Ply(), 3)
	AssertEqual(t, g.MoveHistory(), []string{"P-K4", "P-QB4", "N-KB3"})
}

func TestMustSplitScore(t *testing.T) {
	moves := MustSplitScore(t, "1. P-K4 P-K4 {open game} 2. N-KB3 N-QB3 *")
	AssertEqual(t, moves, []string{"P-K4", "P-K4", "N-KB3", "N-QB3"})

	g := MustPlay(t, "", moves...)
	AssertEqual(t, g.Ply(), 4)
}

func TestMustBoard(t *testing.T) {
	board := MustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	AssertEqual(t, board.Count(chess.W(chess.King)), 1)
	AssertEqual(t, board.KingSquare(chess.Black), chess.Sq('e', '8'))
}
