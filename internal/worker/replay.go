package worker

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/dnchess-go/internal/errors"
	"github.com/lgbarn/dnchess-go/internal/game"
)

// Replay returns a ProcessFunc that plays each item's moves on a new game
// built with opts, stopping at the first move that fails.
func Replay(opts ...game.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Name: item.Name, Index: item.Index}

		g, err := game.New(opts...)
		if err != nil {
			res.Error = errors.Wrapf(err, "%s: start position", item.Name)
			return res
		}
		res.Game = g

		for _, text := range item.Moves {
			applied, err := g.SubmitMove(text)
			if err != nil {
				res.Error = errors.Wrap(err, item.Name)
				return res
			}
			for _, w := range applied.Warnings {
				res.Warnings = append(res.Warnings, fmt.Sprintf("ply %d %q: %s", g.Ply(), text, w))
			}
		}
		return res
	}
}

// RunAll processes items on a pool of the given size and returns the
// results in item order. Items not yet replayed when ctx is done come
// back with ctx.Err().
func RunAll(ctx context.Context, items []WorkItem, workers int, process ProcessFunc) []ProcessResult {
	pool := NewPool(workers, len(items), process)
	pool.Start(ctx)

	go func() {
		for _, item := range items {
			// The queue holds every item, so Submit cannot block here.
			_ = pool.Submit(context.Background(), item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int {
		return a.Index - b.Index
	})
	return results
}
