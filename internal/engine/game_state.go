package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// GameStatus classifies the position for the side to move. It only reports;
// deciding whether play stops is up to the caller.
func GameStatus(board *chess.Board) chess.GameState {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case inCheck:
		return chess.Check
	case !hasMoves:
		return chess.Stalemate
	default:
		return chess.Normal
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
