package notation

import "github.com/lgbarn/dnchess-go/internal/chess"

// IntentFromSquares builds the intent for a move chosen by selecting an
// origin and a destination square, as a board front end does. The squares
// are absolute, so no perspective translation applies. promotion may be
// Empty, in which case a promoting move defaults later.
func IntentFromSquares(from, to chess.Square, promotion chess.Piece) Intent {
	if !chess.IsOccupied(promotion) {
		promotion = chess.Empty
	}
	return Intent{
		Piece:         chess.Empty,
		CapturedPiece: chess.Empty,
		OriginFiles:   []chess.Col{from.Col},
		OriginRank:    from.Rank,
		DestFiles:     []chess.Col{to.Col},
		DestRank:      to.Rank,
		Promotion:     promotion,
		Text:          from.String() + to.String(),
		Explicit:      true,
	}
}
