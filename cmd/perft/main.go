// perft counts the legal move tree below a position, for verifying the
// move generator against published node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/perft"
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
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, parseMoveList(*moveList)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run sets up the root position, counts it and writes the report.
func run(cfg *config.Config, moves []string) error {
	board, err := setupPosition(cfg.Search.FEN, moves)
	if err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Position: %s (%s)\n", engine.BoardToFEN(board), engine.GameStatus(board))
	}

	opts := []perft.Option{perft.WithWorkers(cfg.Search.Workers)}
	if cfg.Verbosity > 1 {
		opts = append(opts, perft.WithProgress(func(r perft.Result) {
			fmt.Fprintf(cfg.LogFile, "  done %s: %d\n", r.Move, r.Nodes)
		}))
	}

	start := time.Now()
	results, err := perft.Divide(board, cfg.Search.Depth, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	writeReport(cfg, results)

	if cfg.Verbosity > 0 {
		total := perft.Total(results)
		fmt.Fprintf(cfg.LogFile, "Depth %d: %d nodes in %v (%.0f nodes/s)\n",
			cfg.Search.Depth, total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	}
	return nil
}

// setupPosition parses fen and plays moves on it in order.
func setupPosition(fen string, moves []string) (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for i, text := range moves {
		move, err := chess.ParseMove(text)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d %q", i+1, text)
		}
		if err := engine.ApplyLegalMove(board, move); err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
	}
	return board, nil
}

// writeReport prints the divide lines, if requested, and the node total.
func writeReport(cfg *config.Config, results []perft.Result) {
	if cfg.Search.Divide {
		for _, r := range results {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", r.Move, r.Nodes)
		}
		fmt.Fprintln(cfg.OutputFile)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", perft.Total(results))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move tree below a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 3 -divide -moves 'e2e4 e7e5'\n")
}
