// Package eval implements the static position evaluator: material plus
// midgame/endgame piece-square tables, interpolated by a game-phase
// counter.
package eval

import "chess-engine/board"

// Value gives each piece type the same centipawn weight SEE uses, so
// ordering decisions that mix the two stay consistent.
var Value = [7]int{
	board.NoPieceType: 0,
	board.Pawn:        100,
	board.Knight:      320,
	board.Bishop:      330,
	board.Rook:        500,
	board.Queen:       900,
	board.King:        20000,
}

// phaseWeight gives each piece type's contribution to the game-phase
// counter; pawns and kings contribute nothing.
var phaseWeight = [7]int{
	board.NoPieceType: 0,
	board.Pawn:        0,
	board.Knight:      1,
	board.Bishop:      1,
	board.Rook:        2,
	board.Queen:       4,
	board.King:        0,
}

const totalPhase = 24 // 4*(1+1+2) + 2*4, the maximum phaseWeight sum

// mirror maps an a1..h8 (idx64) square to its rank-flipped counterpart, so
// a single table written from White's point of view serves Black too.
var mirror [64]int

func init() {
	for i := 0; i < 64; i++ {
		file := i & 7
		rank := i >> 3
		mirror[i] = (7-rank)*8 + file
	}
}

// Evaluate returns a centipawn score from White's perspective: positive
// favors White. Callers wanting the side-to-move's perspective negate the
// result for Black.
func Evaluate(p *board.Position) int {
	var mg, eg, phase int

	for sq := board.Square(0); int(sq) < 128; sq++ {
		if !onBoard(sq) {
			continue
		}
		pc := p.PieceAt(sq)
		if pc == board.NoPiece {
			continue
		}
		pt := pc.Type()
		idx := idx64(sq)
		sign := 1
		table := idx
		if pc.Color() == board.Black {
			sign = -1
			table = mirror[idx]
		}

		mg += sign * (Value[pt] + psqtMG[pt][table])
		eg += sign * (Value[pt] + psqtEG[pt][table])
		phase += phaseWeight[pt]
	}

	if phase > totalPhase {
		phase = totalPhase
	}
	mgWeight := phase
	egWeight := totalPhase - phase
	return (mg*mgWeight + eg*egWeight) / totalPhase
}

func onBoard(s board.Square) bool { return int(s)&0x88 == 0 }
func idx64(s board.Square) int    { return int(s)>>4*8 + int(s)&0xF }
