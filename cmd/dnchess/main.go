// dnchess plays and replays chess games written in Descriptive Notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/dnchess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dnchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := configFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	logger := newLogger(cfg.LogFile, cfg)

	var ok bool
	if args := flag.Args(); len(args) > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		ok = runBatch(ctx, args, cfg, logger, os.Stderr)
		stop()
	} else {
		err := runInteractive(os.Stdin, os.Stdout, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		ok = err == nil
	}

	_ = logger.Sync()
	closeFiles(cfg)
	if !ok {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}

	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// closeFiles closes the output and log files opened by the setup functions.
func closeFiles(cfg *config.Config) {
	for _, w := range []interface{}{cfg.OutputFile, cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dnchess [options] [game-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Play or replay chess games written in Descriptive Notation.\n")
	fmt.Fprintf(os.Stderr, "With no files, moves are read from standard input one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "%s", commandHelp)
}
