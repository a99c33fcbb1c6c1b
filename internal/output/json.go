package output

import (
	"encoding/json"
	"io"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id"`
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Status     string            `json:"status"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game as indented JSON.
func OutputGameJSON(w io.Writer, rec Record, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(rec, cfg))
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(rec Record, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		ID:         rec.ID().String(),
		Tags:       copyTags(rec.Tags()),
		Result:     rec.Result(),
		Status:     rec.Status().String(),
		InitialFEN: rec.StartFEN(),
		FinalFEN:   rec.FEN(),
	}

	moves := rec.History()
	notations := rec.MoveHistory()
	jg.PlyCount = len(moves)
	jg.Moves = convertMoveList(moves, notations, rec.StartFEN(), cfg)
	return jg
}

// copyTags copies game tags and ensures the seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(SevenTagRoster))
	maps.Copy(result, tags)
	for _, tag := range SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

func convertMoveList(moves []chess.Move, notations []string, startFEN string, cfg *config.Config) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	moveNum, isWhite := startingMove(startFEN)

	for i, move := range moves {
		jm := convertSingleMove(move)
		if i < len(notations) {
			jm.Notation = notations[i]
			if !cfg.Output.KeepClaims {
				jm.Notation = stripClaim(jm.Notation)
			}
		}
		if isWhite {
			jm.MoveNumber = int(moveNum)
		} else {
			moveNum++
		}
		isWhite = !isWhite
		result = append(result, jm)
	}
	return result
}

func convertSingleMove(move chess.Move) JSONMove {
	jm := JSONMove{
		Color: colorName(chess.ExtractColour(move.Piece)),
		UCI:   move.String(),
		From:  move.From.String(),
		To:    move.To.String(),
		Piece: pieceTypeName(move.PieceType()),
	}
	if move.IsCapture() {
		jm.Captured = pieceTypeName(chess.ExtractPiece(move.Captured))
	}
	if move.IsPromotion() {
		jm.Promotion = pieceTypeName(move.Promotion)
	}
	switch move.Class {
	case chess.KingsideCastle:
		jm.Castle = "kingside"
	case chess.QueensideCastle:
		jm.Castle = "queenside"
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(colour chess.Colour) string {
	if colour == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
