package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// appendPawnMoves appends a pawn's single and double pushes, its diagonal
// captures, and a diagonal step onto the en passant target.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Coordinates, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)

	// Forward move
	one := from.Offset(0, dir)
	if one.IsValid() && board.IsEmpty(one) {
		moves = append(moves, chess.NewMove(from, one))
		// Double push from the home rank
		if from.Rank == chess.HomeRank(colour) {
			two := from.Offset(0, 2*dir)
			if board.IsEmpty(two) {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.IsValid() {
			continue
		}
		target := board.Get(to)
		if target != chess.Empty {
			if chess.ExtractColour(target) != colour {
				moves = append(moves, chess.NewMove(from, to))
			}
			continue
		}
		if ep, ok := board.EnPassantTarget(); ok && ep == to {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// pawnAttacks reports whether a pawn of the given colour on from attacks
// target, i.e. target is one of its two forward diagonals.
func pawnAttacks(from, target chess.Coordinates, colour chess.Colour) bool {
	return target.Rank-from.Rank == chess.ColourOffset(colour) && abs(target.File-from.File) == 1
}

// isEnPassantCapture reports whether a pawn moving from -> to is an en
// passant capture on the given board: a diagonal step onto the empty en
// passant target square.
func isEnPassantCapture(board *chess.Board, from, to chess.Coordinates) bool {
	ep, ok := board.EnPassantTarget()
	return ok && to == ep && abs(to.File-from.File) == 1 && board.IsEmpty(to)
}

// enPassantVictim returns the square of the pawn taken by an en passant
// capture landing on to: one rank behind the target from the mover's side.
func enPassantVictim(to chess.Coordinates, colour chess.Colour) chess.Coordinates {
	return to.Offset(0, -chess.ColourOffset(colour))
}

// updateEnPassantTarget sets the target after a pawn double step and clears
// it after any other move.
func updateEnPassantTarget(board *chess.Board, pieceType chess.Piece, from, to chess.Coordinates) {
	if pieceType == chess.Pawn && abs(to.Rank-from.Rank) == 2 {
		board.SetEnPassantTarget(chess.NewCoordinates(from.File, (from.Rank+to.Rank)/2))
		return
	}
	board.ClearEnPassantTarget()
}
