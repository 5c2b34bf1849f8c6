package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each legal (from, to) pair is one node, so a promotion counts once.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		nodes += Perft(Child(board, move), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(board *chess.Board, depth int) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, move := range GenerateLegalMoves(board) {
		result[move] = Perft(Child(board, move), depth-1)
	}
	return result
}

// Child returns a copy of board with the legal move applied; board itself
// is not modified. The move must come from GenerateLegalMoves.
func Child(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Copy()
	makeMove(next, move)
	return next
}
