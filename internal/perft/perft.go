// Package perft splits a perft count by root move and spreads the subtrees
// over a worker pool.
package perft

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

type options struct {
	workers  int
	progress func(Result)
}

// Option configures Divide.
type Option func(*options)

// WithWorkers sets the number of goroutines counting subtrees.
// Values below one are ignored; the default is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithProgress registers a callback invoked once per root move as its
// count completes, in completion order. It runs on the caller's goroutine.
func WithProgress(fn func(Result)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Divide returns the perft count at depth below each legal root move of
// board, sorted by move text. board is not modified.
func Divide(board *chess.Board, depth int, opts ...Option) ([]Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	moves := engine.GenerateLegalMoves(board)
	pool := worker.NewPoolWithOptions(countSubtree,
		worker.WithWorkers(o.workers),
		worker.WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, move := range moves {
			pool.Submit(worker.WorkItem{
				Index: i,
				Move:  move,
				Board: engine.Child(board, move),
				Depth: depth - 1,
			})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		result := Result{Move: r.Move, Nodes: r.Nodes}
		if o.progress != nil {
			o.progress(result)
		}
		results = append(results, result)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	slices.SortFunc(results, func(a, b Result) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	})
	return results, nil
}

// Total sums the node counts of a divide.
func Total(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

// countSubtree is the pool's process function. A panic while counting is
// reported as the item's error rather than taking down the process.
func countSubtree(item worker.WorkItem) (result worker.ProcessResult) {
	result = worker.ProcessResult{Index: item.Index, Move: item.Move}
	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("perft below %s: %v", item.Move, r)
		}
	}()
	result.Nodes = engine.Perft(item.Board, item.Depth)
	return result
}
