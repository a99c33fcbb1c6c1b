package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenField reads one space-separated FEN field into the board.
type fenField struct {
	name  string
	parse func(board *chess.Board, field string) error
}

// fenFields are the six FEN fields in order. Only the placement is
// required; missing trailing fields keep the defaults of a new board
// (White to move, no castling, no en passant, clocks 0 and 1).
var fenFields = []fenField{
	{"placement", parsePlacement},
	{"side to move", parseSideToMove},
	{"castling", parseCastling},
	{"en passant", parseEnPassant},
	{"halfmove clock", parseHalfmoveClock},
	{"fullmove number", parseFullmoveNumber},
}

// FENLetter returns the FEN letter of a coloured piece: upper case for
// White, lower case for Black.
func FENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// pieceFromFEN decodes a FEN piece letter, or returns Empty.
func pieceFromFEN(c byte) chess.Piece {
	piece := chess.PieceFromLetter(c)
	if piece == chess.Empty {
		return chess.Empty
	}
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
	}
	return chess.MakeColouredPiece(colour, piece)
}

// NewBoardFromFEN sets up a board from a FEN string. Every failure wraps
// errors.ErrInvalidFEN.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > len(fenFields) {
		return nil, fmt.Errorf("%d fields, at most %d allowed: %w", len(parts), len(fenFields), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	board.Castling = chess.CastlingRights{}
	for i, part := range parts {
		if err := fenFields[i].parse(board, part); err != nil {
			return nil, fmt.Errorf("%s %q: %w", fenFields[i].name, part, err)
		}
	}

	if err := validateKings(board); err != nil {
		return nil, err
	}
	if IsInCheck(board, board.ToMove.Opposite()) {
		return nil, fmt.Errorf("%s is in check with %s to move: %w",
			board.ToMove.Opposite(), board.ToMove, errors.ErrInvalidFEN)
	}
	return board, nil
}

func parsePlacement(board *chess.Board, field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	rank := chess.Rank(chess.LastRank)
	for _, row := range rows {
		col := chess.Col(chess.FirstCol)
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				col += chess.Col(c - '0')
				continue
			}
			piece := pieceFromFEN(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if col > chess.LastCol {
				return fmt.Errorf("rank %c is too long: %w", rank, errors.ErrInvalidFEN)
			}
			board.Put(chess.Sq(col, rank), piece)
			col++
		}
		if col != chess.LastCol+1 {
			return fmt.Errorf("rank %c does not describe %d squares: %w", rank, chess.BoardSize, errors.ErrInvalidFEN)
		}
		rank--
	}
	return nil
}

func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("side must be w or b: %w", errors.ErrInvalidFEN)
	}
	return nil
}

func parseCastling(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling character %q: %w", field[i], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant accepts "-" or a square on the rank the last double
// pawn push passed over.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fmt.Errorf("not a square: %w", errors.ErrInvalidFEN)
	}
	want := chess.Rank('6')
	if board.ToMove == chess.Black {
		want = '3'
	}
	if sq.Rank != want {
		return fmt.Errorf("target must be on rank %c: %w", want, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

func parseHalfmoveClock(board *chess.Board, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return fmt.Errorf("not a count: %w", errors.ErrInvalidFEN)
	}
	board.HalfmoveClock = uint(n)
	return nil
}

func parseFullmoveNumber(board *chess.Board, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || n == 0 {
		return fmt.Errorf("not a move number: %w", errors.ErrInvalidFEN)
	}
	board.MoveNumber = uint(n)
	return nil
}

// validateKings requires exactly one king of each colour.
func validateKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// BoardToFEN writes the board as a six-field FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		empty := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(FENLetter(piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if board.ToMove == chess.Black {
		side = "b"
	}
	ep := "-"
	if board.EnPassant {
		ep = board.EPSquare.String()
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", side, castlingField(board.Castling), ep, board.HalfmoveClock, board.MoveNumber)
	return sb.String()
}

func castlingField(rights chess.CastlingRights) string {
	var sb strings.Builder
	for _, r := range []struct {
		held   bool
		letter byte
	}{
		{rights.WhiteKingside, 'K'},
		{rights.WhiteQueenside, 'Q'},
		{rights.BlackKingside, 'k'},
		{rights.BlackQueenside, 'q'},
	} {
		if r.held {
			sb.WriteByte(r.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
