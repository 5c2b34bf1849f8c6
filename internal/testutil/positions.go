package testutil

// Position is a reference position with known perft node counts.
// Nodes[i] is the count at depth i+1. Counts treat a promotion as a single
// move, so only positions where no promotion is reachable within the listed
// depths are catalogued.
type Position struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// Positions lists the reference positions shared by engine and perft tests.
var Positions = []Position{
	{
		Name:  "start",
		FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Nodes: []uint64{20, 400, 8902},
	},
	{
		Name:  "kiwipete",
		FEN:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Nodes: []uint64{48, 2039},
	},
	{
		Name:  "rook-endgame",
		FEN:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		Nodes: []uint64{14, 191, 2812},
	},
	{
		Name:  "en-passant",
		FEN:   "k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		Nodes: []uint64{5, 19},
	},
}

// PositionByName looks up a catalogued position.
func PositionByName(name string) (Position, bool) {
	for _, p := range Positions {
		if p.Name == name {
			return p, true
		}
	}
	return Position{}, false
}
