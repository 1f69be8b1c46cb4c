package search

import (
	"testing"

	"chess-engine/board"
	"chess-engine/tt"
)

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestSearchFindsMateInTwo(t *testing.T) {
	pos := mustFEN(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	opts := DefaultOptions()
	opts.MaxDepth = 5
	ctx := NewContext(tt.New(4), opts)

	_, score := ctx.Search(pos, nil)
	if score < MateScore-3 {
		t.Fatalf("score = %d, want a mate score of at least MateScore-3 (%d)", score, MateScore-3)
	}
}

func TestSearchReturnsZeroOnStalemate(t *testing.T) {
	pos := mustFEN(t, "7k/5Q2/8/8/8/8/8/7K b - - 0 1")
	opts := DefaultOptions()
	opts.MaxDepth = 4
	ctx := NewContext(tt.New(4), opts)

	_, score := ctx.Search(pos, nil)
	if score != 0 {
		t.Fatalf("stalemate score = %d, want 0", score)
	}
}

func TestSearchFindsMateInOneAtDepthOne(t *testing.T) {
	// Qa7-g7 delivers mate: the queen lands next to the black king on g8,
	// supported by the white king on g6.
	pos := mustFEN(t, "6k1/Q7/6K1/8/8/8/8/8 w - - 0 1")
	opts := DefaultOptions()
	opts.MaxDepth = 1
	ctx := NewContext(tt.New(4), opts)

	move, score := ctx.Search(pos, nil)
	if score != MateScore-1 {
		t.Fatalf("score = %d, want MateScore-1 = %d", score, MateScore-1)
	}
	if move.String() != "a7g7" {
		t.Fatalf("move = %s, want a7g7", move.String())
	}
}

func TestOrderedSearchVisitsNoMoreNodesThanUnordered(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	ordered := NewContext(tt.New(4), DefaultOptions())
	ordered.Options.MaxDepth = 4
	_, orderedScore := ordered.Search(pos, nil)
	orderedNodes := ordered.nodes

	unordered := NewContext(nil, DefaultOptions())
	unordered.Options.MaxDepth = 4
	unordered.disableOrdering = true
	_, unorderedScore := unordered.Search(pos, nil)
	unorderedNodes := unordered.nodes

	if orderedScore != unorderedScore {
		t.Fatalf("ordered score %d != unordered score %d", orderedScore, unorderedScore)
	}
	if orderedNodes > unorderedNodes {
		t.Fatalf("ordered search visited %d nodes, more than unordered's %d", orderedNodes, unorderedNodes)
	}
}
