package chess

// Movement patterns shared by attack detection and move generation.
var (
	KnightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	KingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	DiagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	StraightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	AllDirections = append(append([][2]int{}, DiagonalDirs...), StraightDirs...)
)

// IsSquareAttacked returns true if the square is attacked by the given colour.
func (b *Board) IsSquareAttacked(sq Square, byColour Colour) bool {
	// Check pawn attacks: a pawn attacks from one rank behind, relative
	// to its own direction of travel.
	pawn := MakeColouredPiece(byColour, Pawn)
	pawnDir := -ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if b.At(sq.Offset(dc, pawnDir)) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := MakeColouredPiece(byColour, Knight)
	for _, off := range KnightOffsets {
		if b.At(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	// Check king attacks
	king := MakeColouredPiece(byColour, King)
	for _, off := range KingOffsets {
		if b.At(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := MakeColouredPiece(byColour, Queen)
	if b.rayHits(sq, DiagonalDirs, MakeColouredPiece(byColour, Bishop), queen) {
		return true
	}
	return b.rayHits(sq, StraightDirs, MakeColouredPiece(byColour, Rook), queen)
}

// rayHits walks each direction from sq and reports whether the first
// piece met is one of the two sliders.
func (b *Board) rayHits(sq Square, dirs [][2]int, slider, queen Piece) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for {
			piece := b.At(cur)
			if piece == Off {
				break
			}
			if piece != Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
