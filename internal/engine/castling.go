package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Files involved in standard castling.
const (
	kingFile          = 5 // e
	kingsideRookFile  = 8 // h
	queensideRookFile = 1 // a
	kingsideKingTo    = 7 // g
	queensideKingTo   = 3 // c
	kingsideRookTo    = 6 // f
	queensideRookTo   = 4 // d
)

// castlingRank returns the back rank castling happens on for the colour.
func castlingRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.FirstRank
	}
	return chess.LastRank
}

// appendCastlingMoves appends the two-square king moves for each side where
// the right is held, the rook is on its corner, every square between king
// and rook is empty, and the king's start, transit and landing squares are
// not attacked by the opponent.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Coordinates, colour chess.Colour) []chess.Move {
	rank := castlingRank(colour)
	if from != chess.NewCoordinates(kingFile, rank) {
		return moves
	}
	opponent := colour.Opposite()
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if board.Castling.Kingside(colour) &&
		board.Get(chess.NewCoordinates(kingsideRookFile, rank)) == rook &&
		pathEmpty(board, rank, kingFile+1, kingsideRookFile-1) &&
		!anyAttacked(board, rank, kingFile, kingsideKingTo, opponent) {
		moves = append(moves, chess.NewMove(from, chess.NewCoordinates(kingsideKingTo, rank)))
	}

	if board.Castling.Queenside(colour) &&
		board.Get(chess.NewCoordinates(queensideRookFile, rank)) == rook &&
		pathEmpty(board, rank, queensideRookFile+1, kingFile-1) &&
		!anyAttacked(board, rank, queensideKingTo, kingFile, opponent) {
		moves = append(moves, chess.NewMove(from, chess.NewCoordinates(queensideKingTo, rank)))
	}
	return moves
}

// pathEmpty reports whether files lo..hi on the rank are all empty.
func pathEmpty(board *chess.Board, rank, lo, hi int) bool {
	for file := lo; file <= hi; file++ {
		if !board.IsEmpty(chess.NewCoordinates(file, rank)) {
			return false
		}
	}
	return true
}

// anyAttacked reports whether any of files lo..hi on the rank is attacked.
func anyAttacked(board *chess.Board, rank, lo, hi int, by chess.Colour) bool {
	for file := lo; file <= hi; file++ {
		if IsSquareAttacked(board, chess.NewCoordinates(file, rank), by) {
			return true
		}
	}
	return false
}

// isCastlingMove reports whether a king move from -> to is a castle.
func isCastlingMove(pieceType chess.Piece, from, to chess.Coordinates) bool {
	return pieceType == chess.King && from.Rank == to.Rank && abs(to.File-from.File) == 2
}

// relocateCastlingRook moves the rook that accompanies a castling king
// landing on kingTo.
func relocateCastlingRook(board *chess.Board, kingTo chess.Coordinates) {
	rookFrom := chess.NewCoordinates(queensideRookFile, kingTo.Rank)
	rookTo := chess.NewCoordinates(queensideRookTo, kingTo.Rank)
	if kingTo.File == kingsideKingTo {
		rookFrom = chess.NewCoordinates(kingsideRookFile, kingTo.Rank)
		rookTo = chess.NewCoordinates(kingsideRookTo, kingTo.Rank)
	}
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(rookTo, rook)
}

// updateCastlingRightsForRook removes the castling right tied to a corner
// square when the colour's rook leaves it or is captured on it.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Coordinates) {
	if sq.Rank != castlingRank(colour) {
		return
	}
	switch {
	case colour == chess.White && sq.File == kingsideRookFile:
		board.Castling.WhiteKingside = false
	case colour == chess.White && sq.File == queensideRookFile:
		board.Castling.WhiteQueenside = false
	case colour == chess.Black && sq.File == kingsideRookFile:
		board.Castling.BlackKingside = false
	case colour == chess.Black && sq.File == queensideRookFile:
		board.Castling.BlackQueenside = false
	}
}
