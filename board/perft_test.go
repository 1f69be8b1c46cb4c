package board_test

import (
	"testing"

	"chess-engine/board"
)

func TestPerftScenarios(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"startpos", board.StartFEN, 5, 4_865_609},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 4, 4_085_603},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11_030_083},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15_833_292},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2_103_487},
		{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3_894_594},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if testing.Short() && tc.depth >= 5 {
				t.Skipf("skipping expensive depth-%d perft in short mode", tc.depth)
			}
			pos, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			if got := pos.Perft(tc.depth); got != tc.want {
				t.Fatalf("Perft(%d) on %q = %d, want %d", tc.depth, tc.fen, got, tc.want)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	div := pos.PerftDivide(3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := pos.Perft(3); sum != want {
		t.Fatalf("PerftDivide(3) sums to %d, want %d", sum, want)
	}
}
