// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

var (
	// Position
	fenString = flag.String("fen", engine.InitialFEN, "FEN of the root position")
	moveList  = flag.String("moves", "", "Space-separated long algebraic moves to play before counting (e.g. 'e2e4 e7e5')")

	// Search
	depth   = flag.Int("depth", 1, "Perft depth")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	workers = flag.Int("workers", 0, "Number of counting goroutines (0 = one per CPU)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=results only, 1=summary, 2=per-move progress")
	quiet      = flag.Bool("s", false, "Silent mode, same as -v 0")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags onto cfg.
func applyFlags(cfg *config.Config) {
	cfg.Search.FEN = *fenString
	cfg.Search.Depth = *depth
	cfg.Search.Divide = *divide
	if *workers > 0 {
		cfg.Search.Workers = *workers
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// parseMoveList splits the -moves value into individual moves.
func parseMoveList(s string) []string {
	return strings.Fields(s)
}
