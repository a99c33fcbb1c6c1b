package chess

// castlingSquares lists the squares whose involvement in a move (as origin
// or destination) revokes a castling right.
var castlingSquares = []struct {
	sq     Square
	revoke func(*CastlingRights)
}{
	{Sq('e', '1'), func(c *CastlingRights) { c.WhiteKingside, c.WhiteQueenside = false, false }},
	{Sq('h', '1'), func(c *CastlingRights) { c.WhiteKingside = false }},
	{Sq('a', '1'), func(c *CastlingRights) { c.WhiteQueenside = false }},
	{Sq('e', '8'), func(c *CastlingRights) { c.BlackKingside, c.BlackQueenside = false, false }},
	{Sq('h', '8'), func(c *CastlingRights) { c.BlackKingside = false }},
	{Sq('a', '8'), func(c *CastlingRights) { c.BlackQueenside = false }},
}

// CastlingRookSquares returns the rook's origin and destination for a
// castling move of the given colour.
func CastlingRookSquares(colour Colour, kingside bool) (from, to Square) {
	rank := HomeRank(colour)
	if kingside {
		return Sq('h', rank), Sq('f', rank)
	}
	return Sq('a', rank), Sq('d', rank)
}

// Apply applies a move that has already been proven legal and returns the
// entry that reverses it. It updates castling rights, the en passant
// target, the clocks and the side to move.
func (b *Board) Apply(move Move) HistoryEntry {
	entry := HistoryEntry{
		Move:               move,
		Captured:           move.Captured,
		PriorCastling:      b.Castling,
		PriorEnPassant:     b.EnPassant,
		PriorEPSquare:      b.EPSquare,
		PriorHalfmoveClock: b.HalfmoveClock,
		PriorMoveNumber:    b.MoveNumber,
	}
	colour := ExtractColour(move.Piece)

	// Handle en passant capture
	if move.IsEnPassant() {
		b.Put(move.CapturedSquare(), Empty)
	}

	// Move the piece
	b.Put(move.From, Empty)
	if move.IsPromotion() {
		b.Put(move.To, MakeColouredPiece(colour, move.Promotion))
	} else {
		b.Put(move.To, move.Piece)
	}

	// Move the rook
	if move.IsCastle() {
		rookFrom, rookTo := CastlingRookSquares(colour, move.Class == KingsideCastle)
		rook := b.At(rookFrom)
		b.Put(rookFrom, Empty)
		b.Put(rookTo, rook)
	}

	for _, cs := range castlingSquares {
		if move.From == cs.sq || move.To == cs.sq {
			cs.revoke(&b.Castling)
		}
	}

	// Set en passant square if double pawn push
	b.EnPassant = false
	b.EPSquare = Square{}
	if move.PieceType() == Pawn && abs(int(move.To.Rank)-int(move.From.Rank)) == 2 {
		b.EnPassant = true
		b.EPSquare = Square{Col: move.From.Col, Rank: Rank((int(move.From.Rank) + int(move.To.Rank)) / 2)}
	}

	if move.PieceType() == Pawn || move.IsCapture() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if colour == Black {
		b.MoveNumber++
	}
	b.ToMove = colour.Opposite()

	return entry
}

// Revert undoes the move recorded in entry. It is the exact inverse of Apply.
func (b *Board) Revert(entry HistoryEntry) {
	move := entry.Move
	colour := ExtractColour(move.Piece)

	if move.IsCastle() {
		rookFrom, rookTo := CastlingRookSquares(colour, move.Class == KingsideCastle)
		rook := b.At(rookTo)
		b.Put(rookTo, Empty)
		b.Put(rookFrom, rook)
	}

	b.Put(move.To, Empty)
	b.Put(move.From, move.Piece)
	if entry.Captured != Empty {
		b.Put(move.CapturedSquare(), entry.Captured)
	}

	b.Castling = entry.PriorCastling
	b.EnPassant = entry.PriorEnPassant
	b.EPSquare = entry.PriorEPSquare
	b.HalfmoveClock = entry.PriorHalfmoveClock
	b.MoveNumber = entry.PriorMoveNumber
	b.ToMove = colour
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
