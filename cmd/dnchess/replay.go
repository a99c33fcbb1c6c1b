package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/dnchess-go/internal/config"
	"github.com/lgbarn/dnchess-go/internal/game"
	"github.com/lgbarn/dnchess-go/internal/notation"
	"github.com/lgbarn/dnchess-go/internal/output"
	"github.com/lgbarn/dnchess-go/internal/worker"
)

// runBatch replays each file as one game, writes the records of the games
// that replayed cleanly and prints a summary line per file to report.
// It returns false if any file could not be read or replayed.
func runBatch(ctx context.Context, paths []string, cfg *config.Config, logger *zap.Logger, report io.Writer) bool {
	ok := true

	items := make([]worker.WorkItem, 0, len(paths))
	for _, path := range paths {
		moves, err := readMoveFile(path)
		if err != nil {
			logger.Error("cannot read game file", zap.String("file", path), zap.Error(err))
			if !cfg.Quiet {
				fmt.Fprintf(report, "%s: %v\n", path, err)
			}
			ok = false
			continue
		}
		items = append(items, worker.WorkItem{Name: path, Moves: moves, Index: len(items)})
	}

	results := worker.RunAll(ctx, items, cfg.Workers, worker.Replay(game.WithConfig(cfg), game.WithLogger(logger)))

	gw := output.NewGameWriter(cfg.OutputFile, cfg)
	var last *game.Game
	for _, r := range results {
		if r.Error != nil {
			logger.Error("replay failed", zap.String("file", r.Name), zap.Error(r.Error))
			if !cfg.Quiet {
				fmt.Fprintf(report, "%s: %v\n", r.Name, r.Error)
			}
			ok = false
			continue
		}

		g := r.Game
		logger.Info("game replayed",
			zap.String("file", r.Name),
			zap.Stringer("game_id", g.ID()),
			zap.Int("plies", g.Ply()),
			zap.Int("warnings", len(r.Warnings)),
			zap.String("result", g.Result()),
		)
		if !cfg.Quiet {
			fmt.Fprintf(report, "%s: %d plies, %s, %s\n", r.Name, g.Ply(), g.Status(), g.Result())
			for _, w := range r.Warnings {
				fmt.Fprintf(report, "%s: warning: %s\n", r.Name, w)
			}
		}
		if err := gw.WriteGame(g); err != nil {
			logger.Error("cannot write game", zap.String("file", r.Name), zap.Error(err))
			ok = false
		}
		last = g
	}
	if err := gw.Close(); err != nil {
		logger.Error("cannot write games", zap.Error(err))
		ok = false
	}

	if cfg.SVGFilename != "" && last != nil {
		if err := writeSVGFile(cfg.SVGFilename, last, cfg); err != nil {
			logger.Error("cannot write diagram", zap.String("file", cfg.SVGFilename), zap.Error(err))
			ok = false
		}
	}
	return ok
}

// readMoveFile splits a game score file into move texts.
func readMoveFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only

	return notation.SplitMoveText(file)
}
