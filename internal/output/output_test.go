package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/config"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/testutil"
)

var scholarsMate = []string{"P-K4", "P-K4", "B-B4", "N-QB3", "Q-R5", "N-B3", "QxKBP mate"}

func TestOutputHistory(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  []string
		modify func(*config.Config)
		want   string
	}{
		{
			name:  "numbered moves",
			moves: []string{"P-K4", "P-K4", "N-KB3", "N-QB3"},
			want:  "1. P-K4 P-K4 2. N-KB3 N-QB3 *\n",
		},
		{
			name:  "black moves first",
			fen:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			moves: []string{"P-K4", "N-KB3"},
			want:  "1... P-K4 2. N-KB3 *\n",
		},
		{
			name:  "mate with result",
			moves: scholarsMate,
			want:  "1. P-K4 P-K4 2. B-B4 N-QB3 3. Q-R5 N-B3 4. QxKBP mate 1-0\n",
		},
		{
			name:   "claims dropped",
			moves:  scholarsMate,
			modify: func(c *config.Config) { c.Output.KeepClaims = false },
			want:   "1. P-K4 P-K4 2. B-B4 N-QB3 3. Q-R5 N-B3 4. QxKBP 1-0\n",
		},
		{
			name:   "no numbers no result",
			moves:  []string{"P-K4", "P-K4"},
			modify: func(c *config.Config) { c.Output.KeepMoveNumbers = false; c.Output.KeepResult = false },
			want:   "P-K4 P-K4\n",
		},
		{
			name:  "empty game",
			moves: nil,
			want:  "*\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Output.MaxLineLength = 0
			if tt.modify != nil {
				tt.modify(cfg)
			}
			var buf bytes.Buffer
			OutputHistory(&buf, testutil.MustPlay(t, tt.fen, tt.moves...), cfg)
			if got := buf.String(); got != tt.want {
				t.Errorf("history =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestOutputHistoryWraps(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Output.MaxLineLength = 20

	var buf bytes.Buffer
	OutputHistory(&buf, testutil.MustPlay(t, "", scholarsMate...), cfg)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Errorf("expected wrapping, got %d lines:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
	if !strings.Contains(buf.String(), "QxKBP mate") {
		t.Error("a move and its claim must stay on one line")
	}
}

func TestOutputGameTags(t *testing.T) {
	g := testutil.MustPlay(t, "", scholarsMate...)
	if err := g.SetTag("White", `Paul "the" Morphy`); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTag("ECO", "C20"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTag("Annotator", "me"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	OutputGame(&buf, g, config.NewConfig())
	out := buf.String()

	for _, want := range []string{
		`[Event "?"]`,
		`[White "Paul \"the\" Morphy"]`,
		`[Result "1-0"]`,
		"4. QxKBP mate 1-0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	order := []string{"[Event ", "[Result ", "[Annotator ", "[ECO ", "\n\n1. P-K4"}
	last := -1
	for _, marker := range order {
		i := strings.Index(out, marker)
		if i <= last {
			t.Errorf("%q out of order in:\n%s", marker, out)
		}
		last = i
	}
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`a "quote"`, `a \"quote\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeTagValue(tt.in); got != tt.want {
			t.Errorf("escapeTagValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGameToJSON(t *testing.T) {
	g := testutil.MustPlay(t, "r3k2r/1P6/8/8/8/8/8/R3K2R w KQkq - 0 1", "O-O", "K-Q2", "PxR(N)")
	jg := GameToJSON(g, config.NewConfig())

	if jg.ID != g.ID().String() {
		t.Errorf("ID = %q, want %q", jg.ID, g.ID())
	}
	if jg.PlyCount != 3 || len(jg.Moves) != 3 {
		t.Fatalf("PlyCount = %d, moves = %d; want 3", jg.PlyCount, len(jg.Moves))
	}
	if jg.InitialFEN != g.StartFEN() || jg.FinalFEN != g.FEN() {
		t.Error("FENs do not match the game")
	}
	if jg.Tags["FEN"] != g.StartFEN() || jg.Tags["Round"] != "?" {
		t.Errorf("tags = %v", jg.Tags)
	}

	castle := jg.Moves[0]
	if castle.Castle != "kingside" || castle.UCI != "e1g1" || castle.MoveNumber != 1 || castle.Color != "white" {
		t.Errorf("castle move = %+v", castle)
	}
	reply := jg.Moves[1]
	if reply.Color != "black" || reply.MoveNumber != 0 || reply.Piece != "king" || reply.Captured != "" {
		t.Errorf("reply = %+v", reply)
	}
	promo := jg.Moves[2]
	if promo.Promotion != "knight" || promo.Captured != "rook" || promo.MoveNumber != 2 || promo.Notation != g.MoveHistory()[2] {
		t.Errorf("promotion = %+v", promo)
	}
}

func TestJSONWriter(t *testing.T) {
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSON).Build()
	var buf bytes.Buffer

	w := NewGameWriter(&buf, cfg)
	if _, ok := w.(*JSONWriter); !ok {
		t.Fatalf("NewGameWriter returned %T, want *JSONWriter", w)
	}

	first := testutil.MustPlay(t, "", "P-K4")
	second := testutil.MustPlay(t, "", scholarsMate...)
	if err := w.WriteGame(first); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteGame(second); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 2 {
		t.Fatalf("games = %d, want 2", len(out.Games))
	}
	if out.Games[1].Result != "1-0" || out.Games[1].Status != engine.Checkmate.String() {
		t.Errorf("second game = %+v", out.Games[1])
	}
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf, config.NewConfig())
	if err := w.WriteGame(testutil.MustPlay(t, "", "P-Q4")); err != nil {
		t.Fatal(err)
	}

	var jg JSONGame
	if err := json.Unmarshal(buf.Bytes(), &jg); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(jg.Moves) != 1 || jg.Moves[0].Notation != "P-Q4" {
		t.Errorf("moves = %+v", jg.Moves)
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewGameWriter(&buf, config.NewConfig())
	if _, ok := w.(*TextWriter); !ok {
		t.Fatalf("NewGameWriter returned %T, want *TextWriter", w)
	}
	if err := w.WriteGame(testutil.MustPlay(t, "", "P-K4")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1. P-K4 *") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteBoardText(t *testing.T) {
	snap := engine.NewInitialBoard().Snapshot()

	var buf bytes.Buffer
	if err := WriteBoardText(&buf, snap, chess.White); err != nil {
		t.Fatal(err)
	}
	want := "8 r n b q k b n r\n" +
		"7 p p p p p p p p\n" +
		"6 . . . . . . . .\n" +
		"5 . . . . . . . .\n" +
		"4 . . . . . . . .\n" +
		"3 . . . . . . . .\n" +
		"2 P P P P P P P P\n" +
		"1 R N B Q K B N R\n" +
		"  a b c d e f g h\n"
	if buf.String() != want {
		t.Errorf("board =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteBoardText(&buf, snap, chess.Black); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "1 R N B K Q B N R" || lines[8] != "  h g f e d c b a" {
		t.Errorf("black view =\n%s", buf.String())
	}
}

func TestWriteBoardSVG(t *testing.T) {
	snap := engine.NewInitialBoard().Snapshot()

	var buf bytes.Buffer
	err := WriteBoardSVG(&buf, snap, chess.White, 40, chess.Sq('e', '2'), chess.Sq('e', '4'))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an SVG document:\n%s", out)
	}
	if !strings.Contains(out, `width="320"`) {
		t.Error("board should be 8 squares of 40px")
	}
	if n := strings.Count(out, "♙"); n != 8 {
		t.Errorf("white pawns = %d, want 8", n)
	}
	if n := strings.Count(out, "♚"); n != 1 {
		t.Errorf("black kings = %d, want 1", n)
	}
	if n := strings.Count(out, "stroke:#d23c3c"); n != 2 {
		t.Errorf("highlights = %d, want 2", n)
	}

	if err := WriteBoardSVG(&buf, snap, chess.White, 0); err == nil {
		t.Error("expected error for zero square size")
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		sq   string
		want bool
	}{
		{"a1", true}, {"h1", false}, {"a8", false}, {"h8", true}, {"e4", false}, {"d4", true},
	}
	for _, tt := range tests {
		sq, _ := chess.ParseSquare(tt.sq)
		if got := isDark(sq); got != tt.want {
			t.Errorf("isDark(%s) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}
