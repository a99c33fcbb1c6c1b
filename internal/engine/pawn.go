package engine

import "github.com/lgbarn/dnchess-go/internal/chess"

// promotionPieces are the pieces a pawn may promote to, strongest first.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// pawnMoves generates pushes, the double push, captures and en passant.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece, moves []chess.Move) []chess.Move {
	colour := chess.ExtractColour(pawn)
	dir := chess.ColourOffset(colour)

	one := from.Offset(0, dir)
	if board.At(one) == chess.Empty {
		moves = addPawnMove(moves, from, one, pawn, chess.Empty)

		two := one.Offset(0, dir)
		if from.Rank == chess.RelativeRank(colour, '2') && board.At(two) == chess.Empty {
			moves = append(moves, chess.Move{
				Class:     chess.PawnMove,
				From:      from,
				To:        two,
				Piece:     pawn,
				Captured:  chess.Empty,
				Promotion: chess.Empty,
			})
		}
	}

	enemyPawn := chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	for _, dc := range []int{-1, 1} {
		to := from.Offset(dc, dir)
		target := board.At(to)
		switch {
		case chess.IsOccupied(target) && chess.ExtractColour(target) != colour:
			moves = addPawnMove(moves, from, to, pawn, target)
		case target == chess.Empty && board.EnPassant && to == board.EPSquare:
			// The passed pawn stands beside the capturing pawn.
			if board.At(chess.Sq(to.Col, from.Rank)) != enemyPawn {
				continue
			}
			moves = append(moves, chess.Move{
				Class:     chess.EnPassantPawnMove,
				From:      from,
				To:        to,
				Piece:     pawn,
				Captured:  enemyPawn,
				Promotion: chess.Empty,
			})
		}
	}
	return moves
}

// addPawnMove appends a single-step pawn move, expanding it into one move
// per promotion piece when it reaches the last rank.
func addPawnMove(moves []chess.Move, from, to chess.Square, pawn, captured chess.Piece) []chess.Move {
	colour := chess.ExtractColour(pawn)
	if to.Rank != chess.RelativeRank(colour, chess.LastRank) {
		return append(moves, chess.Move{
			Class:     chess.PawnMove,
			From:      from,
			To:        to,
			Piece:     pawn,
			Captured:  captured,
			Promotion: chess.Empty,
		})
	}
	for _, promo := range promotionPieces {
		moves = append(moves, chess.Move{
			Class:     chess.PawnMoveWithPromotion,
			From:      from,
			To:        to,
			Piece:     pawn,
			Captured:  captured,
			Promotion: promo,
		})
	}
	return moves
}
