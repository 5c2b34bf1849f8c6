package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a (from, to) square pair, optionally carrying the piece type a
// promoting pawn should become. Promotion is Empty when not requested.
type Move struct {
	From      Coordinates
	To        Coordinates
	Promotion Piece
}

// NewMove creates a move without a promotion request.
func NewMove(from, to Coordinates) Move {
	return Move{From: from, To: to}
}

// Squares returns the move stripped of any promotion request.
func (m Move) Squares() Move {
	return Move{From: m.From, To: m.To}
}

// String returns long algebraic notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(unicode.ToLower(rune(m.Promotion.Letter())))
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "a7a8q").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPromotion)
		}
	}
	return m, nil
}
