// Package notation parses chess moves written in Descriptive Notation
// into move intents: the constraints the text places on a move, before
// any board is consulted.
package notation

import (
	"strings"

	"github.com/lgbarn/dnchess-go/internal/chess"
)

// SpecialMove marks intents that name a castle instead of a piece move.
type SpecialMove int

const (
	None SpecialMove = iota
	CastleKingside
	CastleQueenside
)

// String returns the conventional notation of the special move.
func (s SpecialMove) String() string {
	switch s {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Intent is the structured form of a move token. Ranks are absolute:
// the parser has already translated them from the mover's perspective.
// Piece kinds that are not occupied values (Empty, or the zero value
// Off) mean "unconstrained"; Parse and IntentFromSquares set them to Empty.
type Intent struct {
	// Piece kind that moves; Empty accepts any piece.
	Piece chess.Piece

	// Origin constraints from qualifiers (KBP, QR) and hints (R(1), N/KB3).
	OriginFiles []chess.Col
	OriginRank  chess.Rank

	// Destination. DestFiles has two entries for abbreviated files
	// (R, N, B) and is empty for a generic capture such as PxP.
	DestFiles []chess.Col
	DestRank  chess.Rank

	// Capture is set by x or : in the text.
	Capture       bool
	CapturedPiece chess.Piece // Empty accepts any piece
	CapturedFiles []chess.Col

	// Promotion piece kind; Empty if none was written, and the resolver
	// then picks the default.
	Promotion chess.Piece

	Special SpecialMove

	// Claims written after the move. Check and mate claims are advisory.
	EnPassant    bool
	ClaimedCheck bool
	ClaimedMate  bool

	// Text is the token as submitted.
	Text string

	// Explicit intents come from square selection rather than text and
	// carry no piece or capture constraint.
	Explicit bool
}

// IsCastle reports whether the intent names a castle.
func (in Intent) IsCastle() bool {
	return in.Special != None
}

// HasDestination reports whether the intent names a destination square.
func (in Intent) HasDestination() bool {
	return len(in.DestFiles) > 0
}

// String renders the intent's constraints for logs and diagnostics.
func (in Intent) String() string {
	if in.IsCastle() {
		return in.Special.String()
	}
	var sb strings.Builder
	if !chess.IsOccupied(in.Piece) {
		sb.WriteByte('*')
	} else {
		sb.WriteByte(in.Piece.Letter())
	}
	writeConstraint(&sb, in.OriginFiles, in.OriginRank)
	if in.Capture {
		sb.WriteByte('x')
		if chess.IsOccupied(in.CapturedPiece) {
			sb.WriteByte(in.CapturedPiece.Letter())
			writeConstraint(&sb, in.CapturedFiles, 0)
		}
	} else {
		sb.WriteByte('-')
	}
	writeConstraint(&sb, in.DestFiles, in.DestRank)
	if chess.IsOccupied(in.Promotion) {
		sb.WriteByte('=')
		sb.WriteByte(in.Promotion.Letter())
	}
	return sb.String()
}

func writeConstraint(sb *strings.Builder, files []chess.Col, rank chess.Rank) {
	if len(files) == 0 && rank == 0 {
		return
	}
	sb.WriteByte('[')
	for i, f := range files {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteByte(byte(f))
	}
	if rank != 0 {
		sb.WriteByte(byte(rank))
	}
	sb.WriteByte(']')
}
