package engine

import "github.com/lgbarn/dnchess-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := chess.MakeColouredPiece(colour, chess.King)
	sq := board.KingSquare(colour)

	// If king position not tracked, search for it
	if board.At(sq) != king {
		var found bool
		sq, found = findKing(board, colour)
		if !found {
			return false // No king found
		}
	}

	return board.IsSquareAttacked(sq, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// GivesCheck reports whether making move would leave the opponent in check.
func GivesCheck(board *chess.Board, move chess.Move) bool {
	trial := *board
	trial.Apply(move)
	return IsInCheck(&trial, trial.ToMove)
}
