package chess

// Square is an immutable board coordinate.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a Square from its column and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	sq := Square{Col: Col(name[0]), Rank: Rank(name[1])}
	return sq, sq.Valid()
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return ColIndex(s.Col) >= 0 && RankIndex(s.Rank) >= 0
}

// Offset returns the square dc files and dr ranks away. The result may be
// off the board; check Valid.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Less orders squares by column, then rank.
func (s Square) Less(other Square) bool {
	if s.Col != other.Col {
		return s.Col < other.Col
	}
	return s.Rank < other.Rank
}
