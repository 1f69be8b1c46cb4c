package board_test

import (
	"testing"

	"chess-engine/board"
)

func TestGenerateMovesStartposCount(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.GenerateLegalMoves()
	if len(moves) != 20 {
		t.Fatalf("startpos has %d legal moves, want 20", len(moves))
	}
}

func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	// White rook on e1 pins the e4 bishop to the black king on e8; the
	// bishop must not be able to step off the e-file.
	pos, err := board.ParseFEN("4k3/8/8/8/4b3/8/8/4R1K1 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range pos.GenerateLegalMoves() {
		if m.From() == board.MakeSquare(4, 3) && m.To().File() != 4 {
			t.Fatalf("pinned bishop moved off the e-file: %s", m.String())
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	found := false
	for _, m := range pos.GenerateLegalMoves() {
		if m.IsEnPassant() {
			found = true
			u := pos.MakeMove(m)
			if pos.PieceAt(board.MakeSquare(4, 3)) != board.NoPiece {
				t.Fatalf("captured pawn still on board after en passant")
			}
			pos.UnmakeMove(u)
		}
	}
	if !found {
		t.Fatalf("expected an en-passant capture to be legal")
	}
}

func TestCastlingBothSidesLegalWithClearPath(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var sawKingside, sawQueenside bool
	for _, m := range pos.GenerateLegalMoves() {
		if m.IsCastle() {
			if m.To().File() == 6 {
				sawKingside = true
			}
			if m.To().File() == 2 {
				sawQueenside = true
			}
		}
	}
	if !sawKingside || !sawQueenside {
		t.Fatalf("expected both castling moves to be legal with a clear path")
	}
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	// Black rook on f8 attacks straight down the f-file onto f1, a square
	// the white king must cross to castle kingside. Queenside passes
	// through d1/c1, neither attacked, so it stays legal.
	pos, err := board.ParseFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var sawKingside, sawQueenside bool
	for _, m := range pos.GenerateLegalMoves() {
		if m.IsCastle() {
			if m.To().File() == 6 {
				sawKingside = true
			}
			if m.To().File() == 2 {
				sawQueenside = true
			}
		}
	}
	if sawKingside {
		t.Fatalf("kingside castle should be illegal: f1 is attacked")
	}
	if !sawQueenside {
		t.Fatalf("queenside castle should still be legal: its path is unattacked")
	}
}
