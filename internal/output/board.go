package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
)

// WriteBoardText draws the position as text with rank 8 at the top, or
// rank 1 at the top when seen from Black. White pieces are upper case,
// black lower case and empty squares '.'.
func WriteBoardText(w io.Writer, snap chess.Snapshot, from chess.Colour) error {
	var sb strings.Builder
	for _, rank := range viewRanks(from) {
		sb.WriteByte(byte(rank))
		for _, col := range viewCols(from) {
			sb.WriteByte(' ')
			sb.WriteByte(squareChar(snap.At(chess.Sq(col, rank))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for _, col := range viewCols(from) {
		sb.WriteByte(' ')
		sb.WriteByte(byte(col))
	}
	sb.WriteByte('\n')

	_, err := fmt.Fprint(w, sb.String())
	return err
}

func squareChar(p chess.Piece) byte {
	if !chess.IsOccupied(p) {
		return '.'
	}
	return engine.FENLetter(p)
}

// viewRanks lists ranks from the top of the diagram down.
func viewRanks(from chess.Colour) []chess.Rank {
	ranks := make([]chess.Rank, 0, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if from == chess.White {
			ranks = append(ranks, chess.LastRank-chess.Rank(i))
		} else {
			ranks = append(ranks, chess.FirstRank+chess.Rank(i))
		}
	}
	return ranks
}

// viewCols lists files from the left of the diagram.
func viewCols(from chess.Colour) []chess.Col {
	cols := make([]chess.Col, 0, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if from == chess.White {
			cols = append(cols, chess.FirstCol+chess.Col(i))
		} else {
			cols = append(cols, chess.LastCol-chess.Col(i))
		}
	}
	return cols
}
