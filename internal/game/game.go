// Package game drives a single game: it parses submitted Descriptive
// Notation, resolves it against the live board, applies it, and keeps
// the history needed for undo and export.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/config"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/errors"
	"github.com/lgbarn/dnchess-go/internal/notation"
	"github.com/lgbarn/dnchess-go/internal/resolve"
)

// AppliedMove reports a move the game accepted.
type AppliedMove struct {
	Move     chess.Move
	Text     string        // The move as submitted
	Notation string        // The move as resolved, e.g. "N-KB3 ch"
	Status   engine.Status // Status after the move
	Warnings []string      // Check or mate claims that disagree with the position
}

// Game owns one board and its move history. It is not safe for
// concurrent use.
type Game struct {
	id       uuid.UUID
	cfg      *config.Config
	logger   *zap.Logger
	startFEN string

	board     *chess.Board
	history   []chess.HistoryEntry
	notations []string
	status    engine.Status
	tags      map[string]string
}

// New creates a game at the starting position. The position comes from
// WithFEN, then WithConfig, then the standard initial position.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		id:     uuid.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.cfg == nil {
		g.cfg = config.NewConfig()
	}
	if g.startFEN == "" {
		g.startFEN = g.cfg.Game.StartFEN
	}
	if g.startFEN == "" {
		g.startFEN = engine.InitialFEN
	}

	g.tags = make(map[string]string, len(g.cfg.Game.Tags)+1)
	maps.Copy(g.tags, g.cfg.Game.Tags)
	if g.startFEN != engine.InitialFEN {
		g.tags["SetUp"] = "1"
		g.tags["FEN"] = g.startFEN
	}

	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset returns to the starting position and clears the history.
func (g *Game) Reset() error {
	board, err := engine.NewBoardFromFEN(g.startFEN)
	if err != nil {
		return &errors.MoveError{Stage: errors.StageGame, Err: err}
	}
	g.board = board
	g.history = nil
	g.notations = nil
	g.refreshStatus()
	g.logger.Debug("game reset",
		zap.String("game_id", g.id.String()),
		zap.String("fen", g.startFEN),
		zap.Stringer("status", g.status))
	return nil
}

// SubmitMove parses text for the side to move, resolves it to a legal
// move and applies it. On any failure the board is unchanged and the
// error is a *errors.MoveError naming the failing stage.
func (g *Game) SubmitMove(text string) (*AppliedMove, error) {
	if g.status.IsTerminal() {
		return nil, g.moveError(errors.StageGame, text, errors.ErrGameOver)
	}
	intent, err := notation.Parse(text, g.board.ToMove)
	if err != nil {
		return nil, g.moveError(errors.StageParse, text, err)
	}
	return g.submit(intent)
}

// SubmitSquares moves the piece on from to to, as a board click would.
// Promotion may be chess.Empty for the default piece.
func (g *Game) SubmitSquares(from, to chess.Square, promotion chess.Piece) (*AppliedMove, error) {
	intent := notation.IntentFromSquares(from, to, promotion)
	if g.status.IsTerminal() {
		return nil, g.moveError(errors.StageGame, intent.Text, errors.ErrGameOver)
	}
	return g.submit(intent)
}

func (g *Game) submit(intent notation.Intent) (*AppliedMove, error) {
	mover := g.board.ToMove
	move, err := resolve.Resolve(intent, g.board, mover)
	if err != nil {
		return nil, g.moveError(errors.StageResolve, intent.Text, err)
	}

	// Resolve only returns legal moves, so Apply cannot leave the mover
	// in check.
	described := resolve.Describe(g.board, move)
	entry := g.board.Apply(move)

	g.history = append(g.history, entry)
	g.notations = append(g.notations, described)
	g.refreshStatus()

	applied := &AppliedMove{
		Move:     move,
		Text:     intent.Text,
		Notation: described,
		Status:   g.status,
		Warnings: claimWarnings(intent, g.status),
	}

	g.logger.Debug("move applied",
		zap.String("game_id", g.id.String()),
		zap.Int("ply", len(g.history)),
		zap.String("move", described),
		zap.Stringer("status", g.status))
	for _, w := range applied.Warnings {
		g.logger.Warn("claim does not match position",
			zap.String("game_id", g.id.String()),
			zap.Int("ply", len(g.history)),
			zap.String("move", intent.Text),
			zap.String("warning", w))
	}
	return applied, nil
}

// claimWarnings compares the check and mate claims in the text with the
// computed status. Claims are optional, so an unclaimed check is fine.
func claimWarnings(intent notation.Intent, status engine.Status) []string {
	var warnings []string
	switch {
	case intent.ClaimedMate && status != engine.Checkmate:
		if status == engine.Check {
			warnings = append(warnings, "mate claimed but the position is only check")
		} else {
			warnings = append(warnings, "mate claimed but the move does not give check")
		}
	case intent.ClaimedCheck && status != engine.Check && status != engine.Checkmate:
		warnings = append(warnings, "check claimed but the move does not give check")
	}
	return warnings
}

// Undo takes back the last move, including from a finished game.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return &errors.MoveError{Stage: errors.StageGame, Err: errors.ErrEmptyHistory}
	}
	last := len(g.history) - 1
	entry := g.history[last]
	undone := g.notations[last]

	g.board.Revert(entry)
	g.history = g.history[:last]
	g.notations = g.notations[:last]
	g.refreshStatus()

	g.logger.Debug("move undone",
		zap.String("game_id", g.id.String()),
		zap.Int("ply", last+1),
		zap.String("move", undone),
		zap.Stringer("status", g.status))
	return nil
}

func (g *Game) refreshStatus() {
	g.status = engine.Classify(g.board)
	g.tags["Result"] = g.Result()
}

func (g *Game) moveError(stage errors.Stage, text string, err error) error {
	return &errors.MoveError{
		Stage:    stage,
		PlyNum:   len(g.history) + 1,
		MoveText: text,
		Err:      err,
	}
}

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2"
// or "*" while the game is in progress.
func (g *Game) Result() string {
	switch g.status {
	case engine.Checkmate:
		if g.board.ToMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// Status returns the status of the side to move.
func (g *Game) Status() engine.Status { return g.status }

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour { return g.board.ToMove }

// MoveNumber returns the number of the move about to be played.
func (g *Game) MoveNumber() uint { return g.board.MoveNumber }

// ID returns the game ID.
func (g *Game) ID() uuid.UUID { return g.id }

// Ply returns the number of moves played.
func (g *Game) Ply() int { return len(g.history) }

// StartFEN returns the starting position.
func (g *Game) StartFEN() string { return g.startFEN }

// FEN returns the current position.
func (g *Game) FEN() string { return engine.BoardToFEN(g.board) }

// BoardSnapshot returns a copy of the occupancy of every square.
func (g *Game) BoardSnapshot() chess.Snapshot { return g.board.Snapshot() }

// Board returns a copy of the live board.
func (g *Game) Board() *chess.Board { return g.board.Copy() }

// History returns the moves played, oldest first.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, entry := range g.history {
		moves[i] = entry.Move
	}
	return moves
}

// MoveHistory returns the resolved notation of the moves played, oldest first.
func (g *Game) MoveHistory() []string {
	return append([]string(nil), g.notations...)
}

// LegalMoveCount returns the number of legal moves for the side to move.
func (g *Game) LegalMoveCount() int {
	return len(engine.LegalMoves(g.board))
}

// LegalMoves returns every legal move for the side to move in
// Descriptive Notation, in generation order.
func (g *Game) LegalMoves() []string {
	moves := engine.LegalMoves(g.board)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = resolve.Describe(g.board, m)
	}
	return out
}

// SetTag sets a tag value. The Result tag is owned by the game and
// cannot be set.
func (g *Game) SetTag(name, value string) error {
	if name == "Result" {
		return fmt.Errorf("tag %q is maintained from the game status", name)
	}
	g.tags[name] = value
	return nil
}

// Tag returns a tag value and whether it is present.
func (g *Game) Tag(name string) (string, bool) {
	v, ok := g.tags[name]
	return v, ok
}

// Tags returns a copy of all tags.
func (g *Game) Tags() map[string]string {
	return maps.Clone(g.tags)
}
