package search

import (
	"chess-engine/board"
	"chess-engine/eval"
)

// scoredMove pairs a move with its ordering score so selectBest can pick
// the next-best candidate in place, the same selection-sort approach the
// teacher's orderNextMove uses rather than a full sort up front — most
// searches cut off long before the tail of the list is ever inspected.
type scoredMove struct {
	move  board.Move
	score int
}

const (
	ttBonus        = 1_000_000
	rootPVBonus    = 900_000
	captureBase    = 600_000
	losingCapture  = 400_000
	promotionBonus = 300_000
	killerBonus    = 200_000
	historyCap     = 100_000
)

// orderMoves scores every legal move at ply using fixed point values:
// transposition-table hint, previous iteration's root PV move,
// MVV-LVA-plus-SEE for captures, promotions, killers, and capped history
// for quiet moves.
func (c *Context) orderMoves(pos *board.Position, moves []board.Move, ttMove board.Move, ply int) []scoredMove {
	out := make([]scoredMove, len(moves))
	for i, m := range moves {
		score := 0
		if !c.disableOrdering {
			score = c.scoreMove(pos, m, ttMove, ply)
		}
		out[i] = scoredMove{move: m, score: score}
	}
	return out
}

func (c *Context) scoreMove(pos *board.Position, m, ttMove board.Move, ply int) int {
	score := 0

	if ttMove != board.NoMove && m == ttMove {
		score += ttBonus
	}
	if ply == 0 && c.rootHint != board.NoMove && m == c.rootHint {
		score += rootPVBonus
	}

	if m.IsCapture() {
		victim := capturedPieceType(pos, m)
		attacker := pos.PieceAt(m.From()).Type()
		score += captureBase + eval.Value[victim]*10 - eval.Value[attacker]
		if pos.SEE(m) < 0 {
			score -= losingCapture
		}
	}

	if m.IsPromotion() {
		score += promotionBonus
	}

	if m == c.killers[ply][0] || m == c.killers[ply][1] {
		score += killerBonus
	}

	if !m.IsCapture() {
		h := c.historyScore[pos.SideToMove()][m.From()][m.To()]
		if h > historyCap {
			h = historyCap
		}
		score += int(h)
	}

	return score
}

// orderCaptures scores quiescence's capture-and-promotion-only move list
// with plain MVV-LVA; SEE-based pruning happens by the caller, not here.
func (c *Context) orderCaptures(pos *board.Position, moves []board.Move) []scoredMove {
	out := make([]scoredMove, len(moves))
	for i, m := range moves {
		victim := capturedPieceType(pos, m)
		attacker := pos.PieceAt(m.From()).Type()
		s := eval.Value[victim]*10 - eval.Value[attacker]
		if m.IsPromotion() {
			s += promotionBonus
		}
		out[i] = scoredMove{move: m, score: s}
	}
	return out
}

func capturedPieceType(pos *board.Position, m board.Move) board.PieceType {
	if m.IsEnPassant() {
		return board.Pawn
	}
	return pos.PieceAt(m.To()).Type()
}

// selectBest swaps the highest-scoring remaining candidate (from index
// `from` onward) into position `from`.
func selectBest(list []scoredMove, from int) {
	best := from
	for i := from + 1; i < len(list); i++ {
		if list[i].score > list[best].score {
			best = i
		}
	}
	list[from], list[best] = list[best], list[from]
}
