package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// GenerateLegalMoves returns every legal move for the side to move.
// Each pseudo-legal candidate is tried on a disposable copy of the board and
// kept only if the mover's king is not attacked afterwards. Castling moves
// pass this test in addition to the attack probe done when generating them.
func GenerateLegalMoves(board *chess.Board) []chess.Move {
	return legalMoves(board, board.ToMove)
}

// LegalMovesFrom returns the legal moves of the piece on the given square.
// It is empty when the square is empty or holds a piece of the side not
// to move.
func LegalMovesFrom(board *chess.Board, from chess.Coordinates) []chess.Move {
	if !from.IsValid() {
		return nil
	}
	piece := board.Get(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != board.ToMove {
		return nil
	}
	var moves []chess.Move
	for _, move := range appendPieceMoves(nil, board, from, piece) {
		if tryMove(board, move, board.ToMove) {
			moves = append(moves, move)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, move := range PseudoLegalMoves(board, colour) {
		if tryMove(board, move, colour) {
			return true
		}
	}
	return false
}

// legalMoves filters the colour's pseudo-legal moves by king safety.
func legalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	pseudo := PseudoLegalMoves(board, colour)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, move := range pseudo {
		if tryMove(board, move, colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	testBoard := board.Copy()
	relocate(testBoard, move.From, move.To)
	testBoard.ToMove = colour.Opposite()
	return !IsInCheck(testBoard, colour)
}

// relocate moves the piece on from to to without any legality check and
// without rights, clock or promotion bookkeeping. An en passant capture
// also lifts the captured pawn, since its square can shield the king.
func relocate(board *chess.Board, from, to chess.Coordinates) {
	piece := board.Get(from)
	if chess.ExtractPiece(piece) == chess.Pawn && isEnPassantCapture(board, from, to) {
		board.Set(enPassantVictim(to, chess.ExtractColour(piece)), chess.Empty)
	}
	board.Set(from, chess.Empty)
	board.Set(to, piece)
}
