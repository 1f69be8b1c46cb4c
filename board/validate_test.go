package board_test

import (
	"testing"

	"chess-engine/board"
)

// runValidated walks depth plies of every legal move from pos, calling
// ValidateInvariants before recursing into each one and after unmaking it —
// the same make+unmake+rebuild cross-check perft itself exercises, but
// additionally verifying the brute-force move set and the from-scratch
// Zobrist recomputation agree at every node along the way.
func runValidated(t *testing.T, pos *board.Position, depth int) {
	t.Helper()
	pos.ValidateInvariants()
	if depth == 0 {
		return
	}
	for _, m := range pos.GenerateLegalMoves() {
		u := pos.MakeMove(m)
		runValidated(t, pos, depth-1)
		pos.UnmakeMove(u)
	}
	pos.ValidateInvariants()
}

func TestValidateInvariantsAcrossPerftScenarios(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}

	depth := 3
	if testing.Short() {
		depth = 2
	}

	for _, fen := range fens {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		runValidated(t, pos, depth)
	}
}

func TestValidateInvariantsOverRandomWalks(t *testing.T) {
	walks := 10
	if testing.Short() {
		walks = 3
	}

	for seed := int64(0); seed < int64(walks); seed++ {
		fen := randomWalkFEN(t, seed, 20)
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("seed %d: ParseFEN(%q): %v", seed, fen, err)
		}
		runValidated(t, pos, 2)
	}
}
