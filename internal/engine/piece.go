package engine

import "github.com/lgbarn/dnchess-go/internal/chess"

func knightMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return stepMoves(board, from, piece, chess.KnightOffsets, moves)
}

func kingMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return stepMoves(board, from, piece, chess.KingOffsets, moves)
}

func bishopMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(board, from, piece, chess.DiagonalDirs, moves)
}

func rookMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(board, from, piece, chess.StraightDirs, moves)
}

func queenMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(board, from, piece, chess.AllDirections, moves)
}

// stepMoves generates single-step moves to each offset that is empty or
// holds an enemy piece.
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int, moves []chess.Move) []chess.Move {
	colour := chess.ExtractColour(piece)
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		target := board.At(to)
		if target == chess.Off {
			continue
		}
		if chess.IsOccupied(target) && chess.ExtractColour(target) == colour {
			continue
		}
		moves = append(moves, pieceMove(from, to, piece, target))
	}
	return moves
}

// slideMoves walks each direction until the edge of the board or the
// first piece, which is captured if it is an enemy.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int, moves []chess.Move) []chess.Move {
	colour := chess.ExtractColour(piece)
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for {
			target := board.At(to)
			if target == chess.Off {
				break
			}
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, pieceMove(from, to, piece, target))
				}
				break // Blocked
			}
			moves = append(moves, pieceMove(from, to, piece, chess.Empty))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func pieceMove(from, to chess.Square, piece, captured chess.Piece) chess.Move {
	return chess.Move{
		Class:     chess.PieceMove,
		From:      from,
		To:        to,
		Piece:     piece,
		Captured:  captured,
		Promotion: chess.Empty,
	}
}
