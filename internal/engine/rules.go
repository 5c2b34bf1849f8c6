package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.ForEachPiece(func(sq chess.Coordinates, piece chess.Piece) {
		colour := chess.ExtractColour(piece)
		pieceType := chess.ExtractPiece(piece)

		switch pieceType {
		case chess.King:
			// Kings don't count for material
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}

		if colour == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Coordinates) bool {
	return (sq.File+sq.Rank)%2 == 1
}
