package chess

// CastlingRights holds the four independent castling flags. A flag is
// only ever cleared by a move, never set again.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside reports the kingside right of the given colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right of the given colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// AllCastlingRights has every castling flag set.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Board represents a chess board with all state needed for the game.
// A Board is a plain value: assigning it copies the whole position, which
// is how callers take scratch copies for trial moves.
type Board struct {
	// The board squares, indexed [col][rank] from a1 = [0][0].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number.
	MoveNumber uint

	// Castling flags.
	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Is EnPassant capture possible? If so then EPSquare is the square
	// on which this can be made.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	b.clear()
	return b
}

func (b *Board) clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.WKing = Sq('e', '1')
	b.BKing = Sq('e', '8')
	b.Castling = AllCastlingRights

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Coordinates off the board yield Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColIndex(col)
	r := RankIndex(rank)
	if c < 0 || r < 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Off-board coordinates are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColIndex(col)
	r := RankIndex(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on the square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on the square and keeps the king squares current.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
	if IsOccupied(piece) && ExtractPiece(piece) == King {
		b.setKingSquare(ExtractColour(piece), sq)
	}
}

// KingSquare returns the tracked square of the given colour's king.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

func (b *Board) setKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns how many squares hold the given coloured piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[col][rank] == piece {
				n++
			}
		}
	}
	return n
}

// Snapshot is a read-only 8×8 occupancy view, indexed [rank][file] from a1.
type Snapshot [BoardSize][BoardSize]Piece

// At returns the piece on the square, or Off for squares off the board.
func (s Snapshot) At(sq Square) Piece {
	if !sq.Valid() {
		return Off
	}
	return s[RankIndex(sq.Rank)][ColIndex(sq.Col)]
}

// Snapshot returns a copy of the occupancy of every square.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			s[rank][col] = b.Squares[col][rank]
		}
	}
	return s
}
