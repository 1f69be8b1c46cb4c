package board_test

import (
	"testing"

	"chess-engine/board"
)

func TestCheckmateDetection(t *testing.T) {
	pos, err := board.ParseFEN("6k1/6pp/8/8/8/8/6PP/5RKQ b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Not actually mate in this particular FEN; instead use a crisp
	// mate by a queen on g7 supported by the king.
	pos, err = board.ParseFEN("6k1/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.Checkmate() {
		t.Fatalf("expected checkmate")
	}
	if pos.Stalemate() {
		t.Fatalf("checkmate position should not also report stalemate")
	}
}

func TestStalemateDetection(t *testing.T) {
	pos, err := board.ParseFEN("7k/5Q2/8/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.Stalemate() {
		t.Fatalf("expected stalemate")
	}
	if pos.Checkmate() {
		t.Fatalf("stalemate position should not also report checkmate")
	}
}

func TestInsufficientMaterialKingVsKing(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.InsufficientMaterial() {
		t.Fatalf("K vs K should be insufficient material")
	}
}

func TestInsufficientMaterialKingAndRookIsSufficient(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.InsufficientMaterial() {
		t.Fatalf("K+R vs K should be sufficient material")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.FiftyMoveDraw() {
		t.Fatalf("halfmove clock 100 should trigger the fifty-move draw")
	}
}

func TestRepeated(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	key := pos.Zobrist()
	history := []uint64{key, 0xdead, key}
	if got := pos.Repeated(history); got != 2 {
		t.Fatalf("Repeated = %d, want 2", got)
	}
}
