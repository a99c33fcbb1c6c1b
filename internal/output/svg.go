package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/dnchess-go/internal/chess"
)

const (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
)

// pieceGlyphs maps coloured pieces to their Unicode chess symbols.
var pieceGlyphs = map[chess.Piece]string{
	chess.W(chess.King): "♔", chess.W(chess.Queen): "♕", chess.W(chess.Rook): "♖",
	chess.W(chess.Bishop): "♗", chess.W(chess.Knight): "♘", chess.W(chess.Pawn): "♙",
	chess.B(chess.King): "♚", chess.B(chess.Queen): "♛", chess.B(chess.Rook): "♜",
	chess.B(chess.Bishop): "♝", chess.B(chess.Knight): "♞", chess.B(chess.Pawn): "♟",
}

// WriteBoardSVG draws the position as an SVG diagram seen from the given
// side. highlight squares, such as the last move, are outlined.
func WriteBoardSVG(w io.Writer, snap chess.Snapshot, from chess.Colour, squareSize int, highlight ...chess.Square) error {
	if squareSize < 1 {
		return fmt.Errorf("square size must be positive, got %d", squareSize)
	}
	side := squareSize * chess.BoardSize

	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:"+lightSquare)

	ranks := viewRanks(from)
	cols := viewCols(from)
	fontSize := squareSize * 3 / 4
	for y, rank := range ranks {
		for x, col := range cols {
			sq := chess.Sq(col, rank)
			px, py := x*squareSize, y*squareSize
			if isDark(sq) {
				canvas.Rect(px, py, squareSize, squareSize, "fill:"+darkSquare)
			}
			if glyph, ok := pieceGlyphs[snap.At(sq)]; ok {
				canvas.Text(px+squareSize/2, py+squareSize*4/5, glyph,
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", fontSize))
			}
		}
	}

	for _, sq := range highlight {
		x, y := slices.Index(cols, sq.Col), slices.Index(ranks, sq.Rank)
		if x < 0 || y < 0 {
			continue
		}
		canvas.Rect(x*squareSize, y*squareSize, squareSize, squareSize,
			"fill:none;stroke:#d23c3c;stroke-width:3")
	}

	canvas.End()
	return nil
}

// isDark reports whether a square is dark; a1 is dark.
func isDark(sq chess.Square) bool {
	return (chess.ColIndex(sq.Col)+chess.RankIndex(sq.Rank))%2 == 0
}
