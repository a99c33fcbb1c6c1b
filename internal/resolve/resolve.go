// Package resolve turns parsed move intents into concrete legal moves,
// and writes concrete moves back out in Descriptive Notation.
package resolve

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/errors"
	"github.com/lgbarn/dnchess-go/internal/notation"
)

// DefaultPromotion is used when a promoting move names no piece.
const DefaultPromotion = chess.Queen

// Resolve finds the single legal move satisfying intent for the moving
// colour. The board is only read.
//
// Legal moves are filtered first and disambiguated second, so a token
// matching two pieces of which only one may legally move is not
// ambiguous. Failures are *errors.IllegalMoveError or
// *errors.AmbiguousMoveError.
func Resolve(intent notation.Intent, board *chess.Board, moving chess.Colour) (chess.Move, error) {
	if moving != board.ToMove {
		return chess.Move{}, &errors.IllegalMoveError{
			MoveText: intent.Text,
			Reason:   fmt.Sprintf("%s is not to move", moving),
		}
	}

	legal := engine.LegalMoves(board)

	if intent.IsCastle() {
		want := engine.CastlingMove(moving, intent.Special == notation.CastleKingside)
		if slices.Contains(legal, want) {
			return want, nil
		}
		return chess.Move{}, &errors.IllegalMoveError{
			MoveText: intent.Text,
			Reason:   fmt.Sprintf("%s not allowed", intent.Special),
		}
	}

	groups, order := groupCandidates(intent, legal)
	switch len(order) {
	case 0:
		return chess.Move{}, &errors.IllegalMoveError{
			MoveText: intent.Text,
			Reason:   "no legal move matches",
		}
	case 1:
		return pickPromotion(groups[order[0]]), nil
	}

	origins := make([]chess.Square, 0, len(order))
	for _, k := range order {
		origins = append(origins, k.from)
	}
	slices.SortFunc(origins, compareSquares)
	return chess.Move{}, &errors.AmbiguousMoveError{
		MoveText:   intent.Text,
		Candidates: slices.Compact(origins),
	}
}

// route identifies a move by its squares, ignoring the promotion piece.
type route struct {
	from, to chess.Square
}

// groupCandidates collects the legal moves matching intent, grouped by
// route in generation order.
func groupCandidates(intent notation.Intent, legal []chess.Move) (map[route][]chess.Move, []route) {
	groups := make(map[route][]chess.Move)
	var order []route
	for _, move := range legal {
		if !Matches(intent, move) {
			continue
		}
		k := route{move.From, move.To}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], move)
	}
	return groups, order
}

// pickPromotion returns the only move of a route, or the default
// promotion when the route is a promotion with no piece named.
func pickPromotion(moves []chess.Move) chess.Move {
	if len(moves) == 1 {
		return moves[0]
	}
	for _, m := range moves {
		if m.Promotion == DefaultPromotion {
			return m
		}
	}
	return moves[0]
}

// Matches reports whether a legal move satisfies every constraint of the
// intent. Castling intents are handled by Resolve and match nothing here.
func Matches(intent notation.Intent, move chess.Move) bool {
	if intent.IsCastle() {
		return false
	}

	if !intent.Explicit {
		if move.IsCastle() {
			return false
		}
		if chess.IsOccupied(intent.Piece) && move.PieceType() != intent.Piece {
			return false
		}
		// The capture flag is authoritative in both directions.
		if intent.Capture != move.IsCapture() {
			return false
		}
	}

	if !fileMatches(intent.OriginFiles, move.From.Col) || !rankMatches(intent.OriginRank, move.From.Rank) {
		return false
	}
	if intent.HasDestination() {
		if !fileMatches(intent.DestFiles, move.To.Col) || !rankMatches(intent.DestRank, move.To.Rank) {
			return false
		}
	}

	if chess.IsOccupied(intent.CapturedPiece) {
		if !move.IsCapture() || chess.ExtractPiece(move.Captured) != intent.CapturedPiece {
			return false
		}
		if !fileMatches(intent.CapturedFiles, move.CapturedSquare().Col) {
			return false
		}
	}

	if intent.EnPassant && !move.IsEnPassant() {
		return false
	}
	if chess.IsOccupied(intent.Promotion) && move.Promotion != intent.Promotion {
		return false
	}
	return true
}

func fileMatches(files []chess.Col, col chess.Col) bool {
	return len(files) == 0 || slices.Contains(files, col)
}

func rankMatches(want, got chess.Rank) bool {
	return want == 0 || want == got
}

func compareSquares(a, b chess.Square) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
