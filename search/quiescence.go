package search

import "chess-engine/board"

// quiescence extends the search past the nominal leaf with captures and
// promotions only, filtering out losing captures via SEE rather than a
// flat delta margin: a capture is skipped once SEE(from,to)+alpha < 0.
func (c *Context) quiescence(pos *board.Position, alpha, beta, ply int) int {
	c.nodes++
	c.pollStop()
	if c.stopped() {
		return 0
	}
	if ply >= MaxPly-1 {
		return sideEval(pos)
	}

	standPat := sideEval(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var buf [64]board.Move
	caps := pos.GenerateCaptures(buf[:0])
	ordered := c.orderCaptures(pos, caps)

	for i := range ordered {
		selectBest(ordered, i)
		m := ordered[i].move

		if pos.SEE(m)+alpha < 0 {
			continue
		}

		u := pos.MakeMove(m)
		score := -c.quiescence(pos, -beta, -alpha, ply+1)
		pos.UnmakeMove(u)

		if c.stopped() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
