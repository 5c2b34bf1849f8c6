package engine

import (
	"strings"
	"testing"

	refchess "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// Both reference libraries emit long algebraic moves with a promotion
// suffix. Promotions collapse to their (from, to) pair before comparing.

func squarePairs(moves []chess.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.Squares().String()] = true
	}
	return set
}

func dragontoothPairs(fen string) map[string]bool {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	set := make(map[string]bool, len(moves))
	for i := range moves {
		set[moves[i].String()[:4]] = true
	}
	return set
}

func corentingsGame(t *testing.T, fen string) *refchess.Game {
	t.Helper()
	opt, err := refchess.FEN(fen)
	if err != nil {
		t.Fatalf("reference FEN(%q) failed: %v", fen, err)
	}
	return refchess.NewGame(opt)
}

func corentingsPairs(game *refchess.Game) map[string]bool {
	moves := game.ValidMoves()
	set := make(map[string]bool, len(moves))
	for i := range moves {
		set[moves[i].S1().String()+moves[i].S2().String()] = true
	}
	return set
}

// oraclePositions returns every catalogued position plus each of its
// children, giving positions with fresh en passant targets and changed
// castling rights.
func oraclePositions(t *testing.T) []string {
	t.Helper()
	var fens []string
	for _, p := range testutil.Positions {
		board := mustBoard(t, p.FEN)
		fens = append(fens, p.FEN)
		for _, move := range GenerateLegalMoves(board) {
			fens = append(fens, BoardToFEN(Child(board, move)))
		}
	}
	return append(fens,
		"rnbqkbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
		"8/8/8/KPp4r/8/8/8/7k w - c6 0 1",
		"7k/8/8/3B4/8/5n2/8/r3K3 w - - 0 1",
	)
}

func TestLegalMoves_MatchDragontooth(t *testing.T) {
	for _, fen := range oraclePositions(t) {
		got := squarePairs(GenerateLegalMoves(mustBoard(t, fen)))
		testutil.AssertEqual(t, got, dragontoothPairs(fen), "legal moves of %q", fen)
	}
}

func TestLegalMoves_MatchCorentings(t *testing.T) {
	for _, fen := range oraclePositions(t) {
		game := corentingsGame(t, fen)
		got := squarePairs(GenerateLegalMoves(mustBoard(t, fen)))
		testutil.AssertEqual(t, got, corentingsPairs(game), "legal moves of %q", fen)
	}
}

func TestGameStatus_MatchesCorentings(t *testing.T) {
	for _, fen := range oraclePositions(t) {
		game := corentingsGame(t, fen)
		status := GameStatus(mustBoard(t, fen))

		testutil.AssertEqual(t, status == chess.Checkmate, game.Method() == refchess.Checkmate, "checkmate in %q", fen)
		testutil.AssertEqual(t, status == chess.Stalemate, game.Method() == refchess.Stalemate, "stalemate in %q", fen)
	}
}

// TestApplyLegalMove_MatchesCorentings plays every reference move on both
// sides and compares placement, side to move and castling rights. Clocks
// and the en passant field are covered by TestApplyLegalMove.
func TestApplyLegalMove_MatchesCorentings(t *testing.T) {
	for _, p := range testutil.Positions {
		game := corentingsGame(t, p.FEN)
		pos := game.Position()
		moves := game.ValidMoves()
		for i := range moves {
			uci := refchess.UCINotation{}.Encode(pos, &moves[i])
			want := strings.Fields(pos.Update(&moves[i]).String())[:3]

			board := mustBoard(t, p.FEN)
			if err := ApplyLegalMove(board, mustMove(t, uci)); err != nil {
				t.Errorf("%s: ApplyLegalMove(%s) failed: %v", p.Name, uci, err)
				continue
			}
			got := strings.Fields(BoardToFEN(board))[:3]
			testutil.AssertEqual(t, got, want, "%s after %s", p.Name, uci)
		}
	}
}
