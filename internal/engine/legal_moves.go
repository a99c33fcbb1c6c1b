// Package engine provides legal move generation, check detection and
// position setup from FEN.
package engine

import "github.com/lgbarn/dnchess-go/internal/chess"

// generator appends the pseudo-legal moves of the piece standing on from.
type generator func(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move

// generators maps each piece kind to its move generator.
var generators = map[chess.Piece]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// LegalMoves returns every legal move for the side to move. Moves are
// generated square by square from a1 to h8, so the order is deterministic.
// Each promoting pawn move appears once per promotion piece.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := pseudoLegalMoves(board, board.ToMove)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if !leavesKingAttacked(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal
// move, treating the position as if it were that colour's turn.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	scratch := *board
	scratch.ToMove = colour
	for _, move := range pseudoLegalMoves(&scratch, colour) {
		if !leavesKingAttacked(&scratch, move) {
			return true
		}
	}
	return false
}

// pseudoLegalMoves generates moves that obey piece movement but may leave
// the mover's king attacked.
func pseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			gen, ok := generators[chess.ExtractPiece(piece)]
			if !ok {
				continue
			}
			moves = gen(board, chess.Sq(col, rank), piece, moves)
		}
	}
	return castlingMoves(board, colour, moves)
}

// leavesKingAttacked makes the move on a copy of the board and checks
// whether the mover's king is attacked afterwards.
func leavesKingAttacked(board *chess.Board, move chess.Move) bool {
	trial := *board
	trial.Apply(move)
	return IsInCheck(&trial, chess.ExtractColour(move.Piece))
}
