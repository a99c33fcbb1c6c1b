package engine

import "github.com/lgbarn/dnchess-go/internal/chess"

// Status classifies a position from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsTerminal returns true for statuses that end the game.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Classify returns the status of the position for the side to move.
func Classify(board *chess.Board) Status {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return Classify(board) == Checkmate
}
