package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/config"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/game"
	"github.com/lgbarn/dnchess-go/internal/output"
)

const commandHelp = `  P-K4, NxP, O-O ...  play a move in Descriptive Notation
  e2e4, e7e8q          play a move by its squares
  undo                 take back the last move
  board                show the board
  history              show the moves so far
  fen                  show the position in FEN
  moves                list the legal moves
  reset                start again from the first position
  tag NAME VALUE       set a tag for the game record
  quit                 leave, writing any requested record or diagram
`

// session is one interactive game.
type session struct {
	g      *game.Game
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

// runInteractive reads moves and commands from in until end of input or
// quit, then writes the game record and diagram if they were requested.
func runInteractive(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	g, err := game.New(game.WithConfig(cfg), game.WithLogger(logger))
	if err != nil {
		return err
	}
	s := &session{g: g, cfg: cfg, logger: logger, out: out}

	scanner := bufio.NewScanner(in)
	s.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !s.handle(line) {
			break
		}
		s.prompt()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return s.finish()
}

func (s *session) prompt() {
	if s.cfg.Quiet {
		return
	}
	fmt.Fprintf(s.out, "%s> ", s.g.ToMove())
}

// handle runs one input line and reports whether the session goes on.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprint(s.out, commandHelp)
	case "undo":
		if err := s.g.Undo(); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	case "board":
		if err := output.WriteBoardText(s.out, s.g.BoardSnapshot(), s.cfg.Output.ViewSide()); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	case "history":
		output.OutputHistory(s.out, s.g, s.cfg)
	case "fen":
		fmt.Fprintln(s.out, s.g.FEN())
	case "moves":
		fmt.Fprintln(s.out, strings.Join(s.g.LegalMoves(), ", "))
	case "reset":
		if err := s.g.Reset(); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	case "tag":
		if len(fields) < 3 {
			fmt.Fprintln(s.out, "usage: tag NAME VALUE")
			break
		}
		if err := s.g.SetTag(fields[1], strings.Join(fields[2:], " ")); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	default:
		s.play(line)
	}
	return true
}

// play submits a move and prints what the game made of it.
func (s *session) play(text string) {
	number, colour := s.g.MoveNumber(), s.g.ToMove()

	var applied *game.AppliedMove
	var err error
	if from, to, promotion, ok := parseSquaresInput(text); ok {
		applied, err = s.g.SubmitSquares(from, to, promotion)
	} else {
		applied, err = s.g.SubmitMove(text)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	if colour == chess.White {
		fmt.Fprintf(s.out, "%d. %s\n", number, applied.Notation)
	} else {
		fmt.Fprintf(s.out, "%d... %s\n", number, applied.Notation)
	}
	for _, w := range applied.Warnings {
		fmt.Fprintf(s.out, "warning: %s\n", w)
	}

	switch applied.Status {
	case engine.Check:
		fmt.Fprintln(s.out, "check")
	case engine.Checkmate, engine.Stalemate:
		fmt.Fprintf(s.out, "%s: %s\n", applied.Status, s.g.Result())
	}
}

// finish writes the record and diagram requested on the command line.
func (s *session) finish() error {
	if s.cfg.OutputFilename != "" {
		gw := output.NewGameWriter(s.cfg.OutputFile, s.cfg)
		if err := gw.WriteGame(s.g); err != nil {
			return err
		}
		if err := gw.Close(); err != nil {
			return err
		}
	}
	if s.cfg.SVGFilename != "" {
		return writeSVGFile(s.cfg.SVGFilename, s.g, s.cfg)
	}
	return nil
}

// parseSquaresInput reads coordinate input such as "e2e4", "e2-e4" or
// "e7e8q". ok is false for anything else, including Descriptive Notation.
func parseSquaresInput(text string) (from, to chess.Square, promotion chess.Piece, ok bool) {
	if len(text) >= 5 && text[2] == '-' {
		text = text[:2] + text[3:]
	}
	if len(text) != 4 && len(text) != 5 {
		return from, to, chess.Empty, false
	}
	if !isLowerSquare(text[0:2]) || !isLowerSquare(text[2:4]) {
		return from, to, chess.Empty, false
	}
	from, _ = chess.ParseSquare(text[0:2])
	to, _ = chess.ParseSquare(text[2:4])

	promotion = chess.Empty
	if len(text) == 5 {
		promotion = chess.PieceFromLetter(text[4])
		switch promotion {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		default:
			return from, to, chess.Empty, false
		}
	}
	return from, to, promotion, true
}

func isLowerSquare(s string) bool {
	return s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// writeSVGFile draws the current position of g to path, highlighting the
// last move.
func writeSVGFile(path string, g *game.Game, cfg *config.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // error from WriteBoardSVG is reported

	var highlight []chess.Square
	if history := g.History(); len(history) > 0 {
		last := history[len(history)-1]
		highlight = []chess.Square{last.From, last.To}
	}
	return output.WriteBoardSVG(file, g.BoardSnapshot(), cfg.Output.ViewSide(), cfg.Output.SquareSize, highlight...)
}
