package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Coordinates, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.NewCoordinates(file, rank)
			if board.Get(sq) == king {
				return sq, true
			}
		}
	}
	return chess.Coordinates{}, false
}

// IsSquareAttacked returns true if the square is attacked by the given
// colour. Non-king pieces are probed through the same movement rules the
// generator uses, pawns through their capture diagonals; the attacking king
// is tested by adjacency so that castling generation never recurses.
func IsSquareAttacked(board *chess.Board, target chess.Coordinates, byColour chess.Colour) bool {
	attacked := false
	board.ForEachPiece(func(from chess.Coordinates, piece chess.Piece) {
		if attacked || chess.ExtractColour(piece) != byColour {
			return
		}
		switch pieceType := chess.ExtractPiece(piece); pieceType {
		case chess.Pawn:
			attacked = pawnAttacks(from, target, byColour)
		case chess.King:
			attacked = from != target && abs(from.File-target.File) <= 1 && abs(from.Rank-target.Rank) <= 1
		default:
			attacked = ruleReaches(board, from, target, byColour, movementRules[pieceType])
		}
	})
	return attacked
}
