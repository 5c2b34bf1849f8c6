package engine

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// moveStrings renders moves in long algebraic form, sorted.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.SortFunc(out, strings.Compare)
	return out
}

func TestGenerateLegalMoves_InitialPosition(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertFalse(t, IsInCheck(board, chess.White))

	moves := GenerateLegalMoves(board)
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, moveStrings(moves), []string{
		"a2a3", "a2a4", "b1a3", "b1c3", "b2b3", "b2b4", "c2c3", "c2c4",
		"d2d3", "d2d4", "e2e3", "e2e4", "f2f3", "f2f4", "g1f3", "g1h3",
		"g2g3", "g2g4", "h2h3", "h2h4",
	})
}

func TestGenerateLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"pieces in the way", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", false, false},
		{"transit square attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", false, true},
		{"landing square attacked", "r3k2r/8/8/8/8/8/2r5/R3K2R w KQkq - 0 1", true, false},
		{"king in check", "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1", false, false},
		{"rook square attacked only", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", true, true},
		{"rook missing from corner", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", true, false},
		{"enemy piece on corner", "r3k2r/8/8/8/8/8/8/n3K2R w KQkq - 0 1", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := GenerateLegalMoves(mustBoard(t, tt.fen))
			kingside := slices.Contains(moves, chess.NewMove(sq("e1"), sq("g1")))
			queenside := slices.Contains(moves, chess.NewMove(sq("e1"), sq("c1")))
			testutil.AssertEqual(t, kingside, tt.wantKingside, "kingside")
			testutil.AssertEqual(t, queenside, tt.wantQueenside, "queenside")
		})
	}
}

func TestGenerateLegalMoves_KingNeverLeftAttacked(t *testing.T) {
	for _, p := range testutil.Positions {
		t.Run(p.Name, func(t *testing.T) {
			board := mustBoard(t, p.FEN)
			mover := board.ToMove
			for _, move := range GenerateLegalMoves(board) {
				if IsInCheck(Child(board, move), mover) {
					t.Errorf("%s leaves the %s king attacked", move, mover)
				}
			}
		})
	}
}

func TestGenerateLegalMoves_Evasions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "rook check on the back rank",
			fen:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			want: []string{"e1d2", "e1e2", "e1f2"},
		},
		{
			name: "block the checker",
			fen:  "4k3/8/8/8/8/3R4/5PPP/r5K1 w - - 0 1",
			want: []string{"d3d1"},
		},
		{
			name: "capture the checker",
			fen:  "4k3/8/8/8/8/R7/5PPP/r5K1 w - - 0 1",
			want: []string{"a3a1"},
		},
		{
			name: "double check forces the king",
			fen:  "7k/8/8/3B4/8/5n2/8/r3K3 w - - 0 1",
			want: []string{"e1e2", "e1f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertTrue(t, IsInCheck(board, board.ToMove))
			testutil.AssertEqual(t, moveStrings(GenerateLegalMoves(board)), tt.want)
		})
	}
}

func TestLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Coordinates
		want []string
	}{
		{"knight", InitialFEN, sq("b1"), []string{"b1a3", "b1c3"}},
		{"hemmed in king", InitialFEN, sq("e1"), []string{}},
		{"empty square", InitialFEN, sq("e4"), []string{}},
		{"opponent piece", InitialFEN, sq("e7"), []string{}},
		{"off the board", InitialFEN, chess.NewCoordinates(0, 9), []string{}},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", sq("e2"), []string{}},
		{"pinned rook slides along the pin", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", sq("e2"),
			[]string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7"}},
		{"en passant exposing the king on the rank", "8/8/8/KPp4r/8/8/8/7k w - c6 0 1", sq("b5"),
			[]string{"b5b6"}},
		{"en passant allowed", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", sq("e5"),
			[]string{"e5d6", "e5e6"}},
		{"black pawn from home rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", sq("d7"),
			[]string{"d7d5", "d7d6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moveStrings(LegalMovesFrom(mustBoard(t, tt.fen), tt.from))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestGenerateLegalMoves_DoesNotMutate(t *testing.T) {
	for _, p := range testutil.Positions {
		board := mustBoard(t, p.FEN)
		GenerateLegalMoves(board)
		testutil.AssertEqual(t, BoardToFEN(board), p.FEN, p.Name)
	}
}

func TestPseudoLegalMoves_IncludesSelfCheck(t *testing.T) {
	board := mustBoard(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	pinned := chess.NewMove(sq("e2"), sq("d3"))
	testutil.AssertTrue(t, slices.Contains(PseudoLegalMoves(board, chess.White), pinned))
	testutil.AssertFalse(t, slices.Contains(GenerateLegalMoves(board), pinned))
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		colour      chess.Colour
		wantInCheck bool
	}{
		{"initial position", InitialFEN, chess.White, false},
		{"rook on the same rank", "8/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},
		{"bishop on the diagonal", "8/8/8/8/8/8/3b4/4K3 w - - 0 1", chess.White, true},
		{"knight", "8/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn two files away", "8/8/8/8/8/3p4/8/4K3 w - - 0 1", chess.White, false},
		{"pawn on the diagonal", "8/8/8/8/8/8/5p2/4K3 w - - 0 1", chess.White, true},
		{"pawn straight ahead", "8/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"rook on the back rank", "4k3/8/8/8/8/8/4P3/r3K3 w - - 0 1", chess.White, true},
		{"rook behind a blocker", "4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1", chess.White, false},
		{"queen on the file", "4k3/8/8/8/4Q3/8/8/4K3 b - - 0 1", chess.Black, true},
		{"white pawn checks upwards", "8/8/8/3k4/4P3/8/8/4K3 b - - 0 1", chess.Black, true},
		{"no king", "8/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInCheck(mustBoard(t, tt.fen), tt.colour)
			testutil.AssertEqual(t, got, tt.wantInCheck)
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	tests := []struct {
		square string
		by     chess.Colour
		want   bool
	}{
		{"h8", chess.White, true},
		{"f1", chess.White, true},
		{"a1", chess.White, false},
		{"d2", chess.White, true},
		{"d7", chess.Black, true},
		{"e6", chess.Black, false},
	}
	for _, tt := range tests {
		got := IsSquareAttacked(board, sq(tt.square), tt.by)
		if got != tt.want {
			t.Errorf("IsSquareAttacked(%s, %v) = %v; want %v", tt.square, tt.by, got, tt.want)
		}
	}
}

func TestFindKing(t *testing.T) {
	board := NewInitialBoard()
	king, ok := FindKing(board, chess.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, king, sq("e8"))

	_, ok = FindKing(mustBoard(t, "8/P7/8/8/8/8/8/8 w - - 0 1"), chess.White)
	testutil.AssertFalse(t, ok)
}
