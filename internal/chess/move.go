package chess

// Move is one concrete, fully specified move. Moves are produced by the
// rule engine and are only applied to a board once proven legal.
type Move struct {
	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Source and destination squares. For castling these are the king's.
	From Square
	To   Square

	// The coloured piece being moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the pawn behind the destination square.
	Captured Piece

	// The piece type promoted to (Empty if not a promotion).
	Promotion Piece
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true if this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// PieceType returns the type of the moving piece.
func (m Move) PieceType() Piece {
	return ExtractPiece(m.Piece)
}

// CapturedSquare returns the square the captured piece stood on.
func (m Move) CapturedSquare() Square {
	if m.IsEnPassant() {
		return Square{Col: m.To.Col, Rank: m.From.Rank}
	}
	return m.To
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// HistoryEntry records everything needed to reverse Board.Apply exactly.
type HistoryEntry struct {
	Move               Move
	Captured           Piece
	PriorCastling      CastlingRights
	PriorEnPassant     bool
	PriorEPSquare      Square
	PriorHalfmoveClock uint
	PriorMoveNumber    uint
}
