// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square / no piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to this piece type.
func (p Piece) IsPromotionTarget() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// GameState classifies a position for the side to move.
type GameState int

const (
	Normal GameState = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Normal"
	}
}

// IsTerminal reports whether no further moves can be played.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstRank = 1
	LastRank  = BoardSize
	FirstFile = 1
	LastFile  = BoardSize
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank pawns of the given colour start on.
func HomeRank(colour Colour) int {
	if colour == White {
		return 2
	}
	return 7
}

// BackRank returns the rank a pawn of the given colour promotes on.
func BackRank(colour Colour) int {
	if colour == White {
		return LastRank
	}
	return FirstRank
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}
