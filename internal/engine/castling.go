package engine

import "github.com/lgbarn/dnchess-go/internal/chess"

// castlingSides describes the two castling moves on a back rank.
var castlingSides = []struct {
	class    chess.MoveClass
	kingside bool
	between  []chess.Col // must be empty
	kingPath []chess.Col // must not be attacked, landing square included
	kingTo   chess.Col
}{
	{chess.KingsideCastle, true, []chess.Col{'f', 'g'}, []chess.Col{'f', 'g'}, 'g'},
	{chess.QueensideCastle, false, []chess.Col{'b', 'c', 'd'}, []chess.Col{'d', 'c'}, 'c'},
}

// castlingMoves appends the castling moves available to colour. A castle
// needs the right to be held, the king and rook on their home squares,
// the squares between them empty, the king out of check and the squares
// the king crosses unattacked.
func castlingMoves(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	rank := chess.HomeRank(colour)
	kingFrom := chess.Sq('e', rank)
	king := chess.MakeColouredPiece(colour, chess.King)
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	opponent := colour.Opposite()

	if board.At(kingFrom) != king || board.IsSquareAttacked(kingFrom, opponent) {
		return moves
	}

	for _, side := range castlingSides {
		held := board.Castling.Queenside(colour)
		if side.kingside {
			held = board.Castling.Kingside(colour)
		}
		if !held {
			continue
		}
		rookFrom, _ := chess.CastlingRookSquares(colour, side.kingside)
		if board.At(rookFrom) != rook {
			continue
		}
		if !allEmpty(board, side.between, rank) || anyAttacked(board, side.kingPath, rank, opponent) {
			continue
		}
		moves = append(moves, chess.Move{
			Class:     side.class,
			From:      kingFrom,
			To:        chess.Sq(side.kingTo, rank),
			Piece:     king,
			Captured:  chess.Empty,
			Promotion: chess.Empty,
		})
	}
	return moves
}

// CastlingMove returns the king move for the given castle, whether or
// not it is legal in the current position.
func CastlingMove(colour chess.Colour, kingside bool) chess.Move {
	rank := chess.HomeRank(colour)
	move := chess.Move{
		Class:     chess.QueensideCastle,
		From:      chess.Sq('e', rank),
		To:        chess.Sq('c', rank),
		Piece:     chess.MakeColouredPiece(colour, chess.King),
		Captured:  chess.Empty,
		Promotion: chess.Empty,
	}
	if kingside {
		move.Class = chess.KingsideCastle
		move.To = chess.Sq('g', rank)
	}
	return move
}

func allEmpty(board *chess.Board, cols []chess.Col, rank chess.Rank) bool {
	for _, col := range cols {
		if board.Get(col, rank) != chess.Empty {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, cols []chess.Col, rank chess.Rank, by chess.Colour) bool {
	for _, col := range cols {
		if board.IsSquareAttacked(chess.Sq(col, rank), by) {
			return true
		}
	}
	return false
}
