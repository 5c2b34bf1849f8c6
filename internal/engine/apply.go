package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyMove plays from -> to for the side to move. A pawn reaching the back
// rank becomes a queen.
func ApplyMove(board *chess.Board, from, to chess.Coordinates) error {
	return ApplyLegalMove(board, chess.NewMove(from, to))
}

// ApplyMoveWithPromotion plays from -> to, promoting a pawn that reaches the
// back rank to the requested piece. The request is ignored for moves that
// are not promotions.
func ApplyMoveWithPromotion(board *chess.Board, from, to chess.Coordinates, promotion chess.Piece) error {
	return ApplyLegalMove(board, chess.Move{From: from, To: to, Promotion: promotion})
}

// ApplyLegalMove validates the move against the legal move set and applies
// it to the board. On error the board is left unchanged.
func ApplyLegalMove(board *chess.Board, move chess.Move) error {
	if !move.From.IsValid() || !move.To.IsValid() {
		return moveError(board, move, fmt.Errorf("%d,%d -> %d,%d: %w",
			move.From.File, move.From.Rank, move.To.File, move.To.Rank, errors.ErrOutOfBounds))
	}

	if !slices.Contains(GenerateLegalMoves(board), move.Squares()) {
		return moveError(board, move, errors.ErrIllegalMove)
	}

	promotion, err := promotionFor(board, move)
	if err != nil {
		return moveError(board, move, err)
	}
	move.Promotion = promotion

	makeMove(board, move)
	return nil
}

// moveError builds a MoveError describing a rejected move on board.
func moveError(board *chess.Board, move chess.Move, err error) error {
	return &errors.MoveError{Err: err, Move: move.String(), FEN: BoardToFEN(board)}
}

// promotionFor resolves the piece a promoting pawn becomes: the requested
// type, or a queen when none is requested. It returns Empty for moves that
// are not promotions.
func promotionFor(board *chess.Board, move chess.Move) (chess.Piece, error) {
	piece := board.Get(move.From)
	colour := chess.ExtractColour(piece)
	if chess.ExtractPiece(piece) != chess.Pawn || move.To.Rank != chess.BackRank(colour) {
		return chess.Empty, nil
	}
	switch {
	case move.Promotion == chess.Empty:
		return chess.Queen, nil
	case move.Promotion.IsPromotionTarget():
		return move.Promotion, nil
	default:
		return chess.Empty, fmt.Errorf("promotion to %v: %w", move.Promotion, errors.ErrInvalidPromotion)
	}
}

// makeMove applies a move already known to be legal. move.Promotion must
// already be resolved for promoting pawn moves.
func makeMove(board *chess.Board, move chess.Move) {
	from, to := move.From, move.To
	piece := board.Get(from)
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)
	capturedPiece := board.Get(to)

	switch pieceType {
	case chess.King:
		if isCastlingMove(pieceType, from, to) {
			relocateCastlingRook(board, to)
		}
		board.Castling.ClearColour(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, from)
	}

	// A rook taken on its corner can no longer castle.
	if capturedPiece != chess.Empty && chess.ExtractPiece(capturedPiece) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(capturedPiece), to)
	}

	if pieceType == chess.Pawn && isEnPassantCapture(board, from, to) {
		victim := enPassantVictim(to, colour)
		capturedPiece = board.Get(victim)
		board.Set(victim, chess.Empty)
	}

	board.Set(from, chess.Empty)
	board.Set(to, piece)

	if pieceType == chess.Pawn && to.Rank == chess.BackRank(colour) {
		promotion := move.Promotion
		if promotion == chess.Empty {
			promotion = chess.Queen
		}
		board.Set(to, chess.MakeColouredPiece(colour, promotion))
	}

	updateEnPassantTarget(board, pieceType, from, to)

	if pieceType == chess.Pawn || capturedPiece != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}
