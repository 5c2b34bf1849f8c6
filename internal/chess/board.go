package chess

// CastlingRights holds the four independent castling availability flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside reports the kingside right for the given colour.
func (r CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queenside right for the given colour.
func (r CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// ClearColour removes both rights for the given colour.
func (r *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
}

// Any reports whether at least one right remains.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// Board represents a chess position with all state needed to continue play.
type Board struct {
	// The board squares, indexed [rank-1][file-1].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling availability.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// the last double-stepping pawn passed over.
	EnPassant bool
	EPSquare  Coordinates

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current (fullmove) move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}

	b.Castling = CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = Coordinates{}
	b.HalfmoveClock = 0
}

// Get returns the piece on the given square.
// Off-board coordinates are a programming error and panic with an index
// out of range.
func (b *Board) Get(sq Coordinates) Piece {
	return b.Squares[sq.Rank-1][sq.File-1]
}

// Set places a piece on the given square. Use Empty to clear it.
// Off-board coordinates panic, as with Get.
func (b *Board) Set(sq Coordinates, piece Piece) {
	b.Squares[sq.Rank-1][sq.File-1] = piece
}

// IsEmpty reports whether the given square holds no piece.
func (b *Board) IsEmpty(sq Coordinates) bool {
	return b.Get(sq) == Empty
}

// EnPassantTarget returns the en passant target square, if any.
func (b *Board) EnPassantTarget() (Coordinates, bool) {
	return b.EPSquare, b.EnPassant
}

// SetEnPassantTarget records the square passed over by a double pawn step.
func (b *Board) SetEnPassantTarget(sq Coordinates) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassantTarget removes any en passant target.
func (b *Board) ClearEnPassantTarget() {
	b.EnPassant = false
	b.EPSquare = Coordinates{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// ForEachPiece calls fn for every occupied square, a1 first, h8 last.
func (b *Board) ForEachPiece(fn func(sq Coordinates, piece Piece)) {
	for rank := FirstRank; rank <= LastRank; rank++ {
		for file := FirstFile; file <= LastFile; file++ {
			if piece := b.Squares[rank-1][file-1]; piece != Empty {
				fn(Coordinates{File: file, Rank: rank}, piece)
			}
		}
	}
}
