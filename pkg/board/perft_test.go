package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
)

// TestPerftKiwipete exercises the move generator against Kiwipete, the
// standard perft stress position (castling both ways, en passant,
// promotions and pins all reachable within a few plies). depth 4 is used
// to keep the test fast; depth 5 from the same position is known to be
// 193,690,690 nodes.
func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	tests := []struct {
		depth int
		nodes int
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	}

	for _, test := range tests {
		if got := board.Perft(fen, test.depth); got != test.nodes {
			t.Errorf("Perft(Kiwipete, %d) = %d, want %d", test.depth, got, test.nodes)
		}
	}
}
