package board_test

import (
	"testing"

	"chess-engine/board"
)

func TestSEEWinningCapture(t *testing.T) {
	// White pawn takes a black rook; no recapture available.
	pos, err := board.ParseFEN("4k3/8/8/8/3r4/4P3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, ok := findCapture(t, pos, "e3", "d4")
	if !ok {
		t.Fatalf("expected e3xd4 to be a legal move")
	}
	if got := pos.SEE(m); got <= 0 {
		t.Fatalf("SEE(e3xd4) = %d, want a positive gain", got)
	}
}

func TestSEELosingCapture(t *testing.T) {
	// White queen takes a pawn defended by a black rook: after Rxd2 Kxd2 it
	// has lost the queen for a pawn and a rook (-300).
	pos, err := board.ParseFEN("4k3/8/8/8/8/3r4/3p4/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, ok := findCapture(t, pos, "d1", "d2")
	if !ok {
		t.Fatalf("expected d1xd2 to be a legal move")
	}
	if got := pos.SEE(m); got >= 0 {
		t.Fatalf("SEE(d1xd2) = %d, want a losing (negative) result", got)
	}
}

func TestSEEOnQuietMoveIsZero(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, ok := board.ParseMove("e2e4", pos.GenerateLegalMoves())
	if !ok {
		t.Fatalf("e2e4 should be legal from the start position")
	}
	if got := pos.SEE(m); got != 0 {
		t.Fatalf("SEE on a non-capturing move = %d, want 0", got)
	}
}

func findCapture(t *testing.T, pos *board.Position, from, to string) (board.Move, bool) {
	t.Helper()
	want := from + to
	for _, m := range pos.GenerateLegalMoves() {
		if m.String()[:4] == want {
			return m, true
		}
	}
	return board.NoMove, false
}
