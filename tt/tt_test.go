package tt

import (
	"testing"

	"chess-engine/board"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	table := New(1)
	key := uint64(0xC0FFEE)
	move := board.NoMove
	table.Store(key, move, 137, 5, BoundExact, 2)

	e, found := table.Probe(key, 2)
	if !found {
		t.Fatalf("Probe missed a key just stored")
	}
	if e.Score != 137 || e.Depth != 5 || e.Bound != BoundExact {
		t.Fatalf("Probe returned %+v, want score=137 depth=5 bound=exact", e)
	}
}

func TestProbeMissOnKeyMismatch(t *testing.T) {
	table := New(1)
	table.Store(1, board.NoMove, 10, 3, BoundExact, 0)
	if _, found := table.Probe(2, 0); found {
		t.Fatalf("Probe found an entry for a key that was never stored")
	}
}

func TestMateScoreAdjustedByPly(t *testing.T) {
	table := New(1)
	key := uint64(42)
	// A mate 3 plies from the root, stored at a node 3 plies from the root
	// (so the mate is at that node itself).
	table.Store(key, board.NoMove, MateScore-3, 10, BoundExact, 3)

	e, found := table.Probe(key, 3)
	if !found {
		t.Fatalf("Probe missed")
	}
	if e.Score != MateScore-3 {
		t.Fatalf("Probe at same ply = %d, want %d", e.Score, MateScore-3)
	}

	e2, found2 := table.Probe(key, 5)
	if !found2 {
		t.Fatalf("Probe missed")
	}
	if e2.Score != MateScore-5 {
		t.Fatalf("Probe at deeper ply = %d, want %d (mate gets further away)", e2.Score, MateScore-5)
	}
}

func TestDepthPreferredReplacement(t *testing.T) {
	table := New(1)
	key := uint64(7)
	table.Store(key, board.NoMove, 10, 8, BoundExact, 0)
	table.Store(key, board.NoMove, 20, 3, BoundExact, 0) // shallower, same age: ignored

	e, _ := table.Probe(key, 0)
	if e.Depth != 8 || e.Score != 10 {
		t.Fatalf("shallower store overwrote a deeper entry: got %+v", e)
	}

	table.Store(key, board.NoMove, 30, 9, BoundExact, 0) // deeper: replaces
	e2, _ := table.Probe(key, 0)
	if e2.Depth != 9 || e2.Score != 30 {
		t.Fatalf("deeper store did not replace: got %+v", e2)
	}
}

func TestNewSearchAllowsShallowerOverwriteNextAge(t *testing.T) {
	table := New(1)
	key := uint64(99)
	table.Store(key, board.NoMove, 10, 8, BoundExact, 0)
	table.NewSearch()
	table.Store(key, board.NoMove, 20, 1, BoundExact, 0)

	e, _ := table.Probe(key, 0)
	if e.Depth != 1 || e.Score != 20 {
		t.Fatalf("entry from a new search age was not stored: got %+v", e)
	}
}
