package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// offset is a (file, rank) step.
type offset [2]int

var (
	knightOffsets   = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalOffsets = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenOffsets    = append(append([]offset{}, diagonalOffsets...), straightOffsets...)
)

// movementRule describes the geometry of a non-pawn piece. Sliding pieces
// repeat each step until blocked; leapers take a single step.
type movementRule struct {
	steps  []offset
	slides bool
}

// movementRules is the single dispatch table for piece geometry. Pawns are
// handled separately since their moves depend on direction and occupancy.
var movementRules = [chess.NumPieceValues]movementRule{
	chess.Knight: {steps: knightOffsets},
	chess.Bishop: {steps: diagonalOffsets, slides: true},
	chess.Rook:   {steps: straightOffsets, slides: true},
	chess.Queen:  {steps: queenOffsets, slides: true},
	chess.King:   {steps: kingOffsets},
}

// PseudoLegalMoves returns every move the given colour's pieces can make
// under piece geometry, ignoring whether the mover's king is left attacked.
// Castling moves are included only when their own preconditions hold.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	board.ForEachPiece(func(from chess.Coordinates, piece chess.Piece) {
		if chess.ExtractColour(piece) != colour {
			return
		}
		moves = appendPieceMoves(moves, board, from, piece)
	})
	return moves
}

// appendPieceMoves appends the pseudo-legal moves of the piece on from.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Coordinates, piece chess.Piece) []chess.Move {
	colour := chess.ExtractColour(piece)
	switch pieceType := chess.ExtractPiece(piece); pieceType {
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, colour)
	case chess.King:
		moves = appendRuleMoves(moves, board, from, colour, movementRules[chess.King])
		return appendCastlingMoves(moves, board, from, colour)
	default:
		return appendRuleMoves(moves, board, from, colour, movementRules[pieceType])
	}
}

// appendRuleMoves walks the rule's steps from the origin. A step may land on
// an empty square or capture an enemy piece; it never lands on a friendly
// piece. Sliding rays stop at the first occupied square.
func appendRuleMoves(moves []chess.Move, board *chess.Board, from chess.Coordinates, colour chess.Colour, rule movementRule) []chess.Move {
	for _, step := range rule.steps {
		to := from.Offset(step[0], step[1])
		for to.IsValid() {
			target := board.Get(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			if !rule.slides {
				break
			}
			to = to.Offset(step[0], step[1])
		}
	}
	return moves
}

// ruleReaches reports whether a non-pawn, non-king piece of the given colour
// on from can move to target under its movement rule.
func ruleReaches(board *chess.Board, from, target chess.Coordinates, colour chess.Colour, rule movementRule) bool {
	for _, step := range rule.steps {
		to := from.Offset(step[0], step[1])
		for to.IsValid() {
			if to == target {
				piece := board.Get(to)
				return piece == chess.Empty || chess.ExtractColour(piece) != colour
			}
			if board.Get(to) != chess.Empty || !rule.slides {
				break
			}
			to = to.Offset(step[0], step[1])
		}
	}
	return false
}
