package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// SearchConfig describes the perft run: which position, how deep, and how
// the work is split.
type SearchConfig struct {
	FEN     string
	Depth   int
	Divide  bool // report counts per root move
	Workers int
}

// NewSearchConfig creates a SearchConfig for depth 1 from the initial
// position, with one worker per CPU.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		FEN:     engine.InitialFEN,
		Depth:   1,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the search settings are usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("depth %d < 1: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if _, err := engine.NewBoardFromFEN(s.FEN); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}
