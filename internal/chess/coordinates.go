package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Coordinates identifies a square by file (1 = a) and rank (1..8).
// Values outside the board are representable; call IsValid before
// indexing a Board with coordinates taken from untrusted input.
type Coordinates struct {
	File int
	Rank int
}

// NewCoordinates builds coordinates without range validation.
func NewCoordinates(file, rank int) Coordinates {
	return Coordinates{File: file, Rank: rank}
}

// IsValid reports whether the coordinates lie on the 8x8 board.
func (c Coordinates) IsValid() bool {
	return c.File >= FirstFile && c.File <= LastFile &&
		c.Rank >= FirstRank && c.Rank <= LastRank
}

// Offset returns the coordinates shifted by the given file and rank deltas.
func (c Coordinates) Offset(df, dr int) Coordinates {
	return Coordinates{File: c.File + df, Rank: c.Rank + dr}
}

// Index returns the rank-major linear index: a1 = 0, h1 = 7, a8 = 56, h8 = 63.
func (c Coordinates) Index() int {
	return (c.Rank-1)*BoardSize + (c.File - 1)
}

// CoordinatesFromIndex is the inverse of Index.
func CoordinatesFromIndex(index int) Coordinates {
	return Coordinates{File: index%BoardSize + 1, Rank: index/BoardSize + 1}
}

// String returns algebraic notation ("e4"), or "??" for off-board values.
func (c Coordinates) String() string {
	if !c.IsValid() {
		return "??"
	}
	return string([]byte{byte('a' + c.File - 1), byte('1' + c.Rank - 1)})
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Coordinates, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coordinates{}, fmt.Errorf("square %q: %w", s, errors.ErrOutOfBounds)
	}
	return Coordinates{File: int(s[0]-'a') + 1, Rank: int(s[1]-'1') + 1}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Coordinates {
	c, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return c
}
