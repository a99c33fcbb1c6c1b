package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq('e', '4'), chess.Sq('e', '4'), "square %s", "e4")
}

func TestAssertSameMoves_Success(t *testing.T) {
	board := MustBoard(t, engine.InitialFEN)
	moves := engine.LegalMoves(board)

	reversed := make([]chess.Move, len(moves))
	for i, m := range moves {
		reversed[len(moves)-1-i] = m
	}
	AssertSameMoves(t, reversed, moves)
	AssertSameMoves(t, nil, []chess.Move{})
}

func TestAssertSnapshotEqual_Success(t *testing.T) {
	a := MustBoard(t, engine.InitialFEN)
	b := a.Copy()
	AssertSnapshotEqual(t, a.Snapshot(), b.Snapshot())
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertErrorIs(t, nil, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertTrue(t, len("hello") == 5)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
