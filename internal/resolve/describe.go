package resolve

import (
	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/notation"
)

// fullFileNames names each file after the piece that starts on it.
var fullFileNames = map[chess.Col]string{
	'a': "QR", 'b': "QN", 'c': "QB", 'd': "Q",
	'e': "K", 'f': "KB", 'g': "KN", 'h': "KR",
}

// shortFileNames are the abbreviated names shared by two files.
var shortFileNames = map[chess.Col]string{
	'a': "R", 'h': "R",
	'b': "N", 'g': "N",
	'c': "B", 'f': "B",
}

// Describe writes move, which must be legal on board, in Descriptive
// Notation from the mover's point of view. It picks the shortest
// conventional form that resolves back to the same move, then adds "ch"
// or "mate" when the move gives check or mate.
func Describe(board *chess.Board, move chess.Move) string {
	text := describeMove(board, move)
	if !engine.GivesCheck(board, move) {
		return text
	}

	// Only a checking move can mate, so the legal move search is skipped
	// for quiet moves.
	trial := *board
	trial.Apply(move)
	if engine.IsCheckmate(&trial) {
		return text + " mate"
	}
	return text + " ch"
}

func describeMove(board *chess.Board, move chess.Move) string {
	switch move.Class {
	case chess.KingsideCastle:
		return notation.CastleKingside.String()
	case chess.QueensideCastle:
		return notation.CastleQueenside.String()
	}

	colour := chess.ExtractColour(move.Piece)
	sep := "-"
	if move.IsCapture() {
		sep = "x"
	}
	suffix := ""
	if move.IsPromotion() {
		suffix = "(" + string(move.Promotion.Letter()) + ")"
	}
	if move.IsEnPassant() {
		suffix = " e.p."
	}

	for _, mover := range moverForms(move, colour) {
		for _, target := range targetForms(move, colour) {
			text := mover + sep + target + suffix
			if resolvesTo(text, board, colour, move) {
				return text
			}
		}
	}
	return move.String()
}

// moverForms lists the ways to name the moving piece, shortest first.
func moverForms(move chess.Move, colour chess.Colour) []string {
	letter := string(move.PieceType().Letter())
	forms := []string{letter}
	switch move.PieceType() {
	case chess.Pawn:
		forms = append(forms, fullFileNames[move.From.Col]+letter)
	case chess.Rook, chess.Knight, chess.Bishop:
		forms = append(forms, sideName(move.From.Col)+letter)
	}
	rank := string(byte(chess.RelativeRank(colour, move.From.Rank)))
	return append(forms,
		letter+"("+rank+")",
		letter+"("+squareName(move.From, colour)+")",
	)
}

// targetForms lists the ways to name the destination, shortest first.
// Captures prefer naming the captured piece.
func targetForms(move chess.Move, colour chess.Colour) []string {
	var forms []string
	if move.IsCapture() {
		captured := chess.ExtractPiece(move.Captured)
		letter := string(captured.Letter())
		forms = append(forms, letter)
		switch captured {
		case chess.Pawn:
			forms = append(forms, fullFileNames[move.CapturedSquare().Col]+letter)
		case chess.Rook, chess.Knight, chess.Bishop:
			forms = append(forms, sideName(move.CapturedSquare().Col)+letter)
		}
		if move.IsEnPassant() {
			return forms
		}
	}

	rank := string(byte(chess.RelativeRank(colour, move.To.Rank)))
	if short, ok := shortFileNames[move.To.Col]; ok {
		forms = append(forms, short+rank)
	}
	return append(forms, squareName(move.To, colour))
}

// resolvesTo reports whether text parses and resolves to move.
func resolvesTo(text string, board *chess.Board, colour chess.Colour, move chess.Move) bool {
	intent, err := notation.Parse(text, colour)
	if err != nil {
		return false
	}
	got, err := Resolve(intent, board, colour)
	return err == nil && got == move
}

// squareName writes a square with its full file name and the rank as
// seen by colour, e.g. "KB3".
func squareName(sq chess.Square, colour chess.Colour) string {
	return fullFileNames[sq.Col] + string(byte(chess.RelativeRank(colour, sq.Rank)))
}

// sideName returns the side qualifier for a file: Q for a-d, K for e-h.
func sideName(col chess.Col) string {
	if col <= 'd' {
		return "Q"
	}
	return "K"
}
