package worker

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/errors"
	"github.com/lgbarn/dnchess-go/internal/game"
)

func TestReplay(t *testing.T) {
	replay := Replay()

	res := replay(WorkItem{
		Name:  "scholar.txt",
		Moves: []string{"P-K4", "P-K4", "B-B4", "N-QB3", "Q-R5", "N-B3", "QxKBP mate"},
		Index: 3,
	})
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	if res.Index != 3 || res.Name != "scholar.txt" {
		t.Errorf("result identity = %d %q", res.Index, res.Name)
	}
	if res.Game.Status() != engine.Checkmate {
		t.Errorf("status = %v, want checkmate", res.Game.Status())
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func TestReplayStopsAtFirstError(t *testing.T) {
	res := Replay()(WorkItem{Name: "bad.txt", Moves: []string{"P-K4", "P-K4", "P-K5", "N-KB3"}})

	if res.Error == nil {
		t.Fatal("expected an error")
	}
	if !stderrors.Is(res.Error, errors.ErrIllegalMove) {
		t.Errorf("error %v should wrap ErrIllegalMove", res.Error)
	}
	if !strings.Contains(res.Error.Error(), "bad.txt") {
		t.Errorf("error %q should name the source", res.Error)
	}
	if res.Game.Ply() != 2 {
		t.Errorf("ply = %d, want the 2 moves before the failure", res.Game.Ply())
	}
}

func TestReplayCollectsWarnings(t *testing.T) {
	res := Replay()(WorkItem{Moves: []string{"P-K4 ch", "P-K4"}})
	if res.Error != nil {
		t.Fatal(res.Error)
	}
	if len(res.Warnings) != 1 || !strings.HasPrefix(res.Warnings[0], "ply 1 ") {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func TestReplayBadStart(t *testing.T) {
	res := Replay(game.WithFEN("not a fen"))(WorkItem{Name: "x.txt"})
	if !stderrors.Is(res.Error, errors.ErrInvalidFEN) {
		t.Errorf("error = %v, want ErrInvalidFEN", res.Error)
	}
	if res.Error == nil || !strings.HasPrefix(res.Error.Error(), "x.txt: start position: ") {
		t.Errorf("error %q should name the source and the start position", res.Error)
	}
	if res.Game != nil {
		t.Error("no game should be returned")
	}
}

func TestReplayCapturableKingStart(t *testing.T) {
	res := Replay(game.WithFEN("4k3/8/8/8/8/8/4R3/4K3 w - - 0 1"))(WorkItem{Name: "setup.txt", Moves: []string{"RxK"}})
	if !stderrors.Is(res.Error, errors.ErrInvalidFEN) {
		t.Errorf("error = %v, want ErrInvalidFEN", res.Error)
	}
	if res.Game != nil {
		t.Error("no game should be returned")
	}
}

// TestRunAllOrder checks results come back in item order whatever the
// completion order.
func TestRunAllOrder(t *testing.T) {
	openings := [][]string{
		{"P-K4", "P-K4", "N-KB3", "N-QB3", "B-N5"},
		{"P-Q4", "P-Q4", "P-QB4"},
		{"P-KB3", "P-K4", "P-KN4", "Q-R5 mate"},
		{"N-KB3"},
	}
	var items []WorkItem
	for i := 0; i < 40; i++ {
		items = append(items, WorkItem{Index: i, Moves: openings[i%len(openings)]})
	}

	results := RunAll(context.Background(), items, 4, Replay())
	if len(results) != len(items) {
		t.Fatalf("results = %d, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Index != i {
			t.Fatalf("results[%d].Index = %d", i, r.Index)
		}
		if r.Error != nil {
			t.Fatalf("item %d: %v", i, r.Error)
		}
		if want := len(openings[i%len(openings)]); r.Game.Ply() != want {
			t.Errorf("item %d ply = %d, want %d", i, r.Game.Ply(), want)
		}
	}
}

func TestRunAllEmpty(t *testing.T) {
	if got := RunAll(context.Background(), nil, 2, Replay()); len(got) != 0 {
		t.Errorf("results = %v, want none", got)
	}
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []WorkItem{{Index: 0, Moves: []string{"P-K4"}}, {Index: 1, Moves: []string{"P-Q4"}}}
	for _, r := range RunAll(ctx, items, 2, Replay()) {
		if !stderrors.Is(r.Error, context.Canceled) {
			t.Errorf("item %d error = %v; want context.Canceled", r.Index, r.Error)
		}
		if r.Game != nil {
			t.Errorf("item %d was replayed after cancellation", r.Index)
		}
	}
}
