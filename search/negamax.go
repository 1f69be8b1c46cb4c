package search

import (
	"chess-engine/board"
	"chess-engine/tt"
)

// negamax searches pos to depth plies from the root, returning a score
// from the side-to-move's perspective. allowNull gates null-move pruning
// so the reply to a null move never tries another one.
func (c *Context) negamax(pos *board.Position, alpha, beta, depth, ply int, allowNull bool) int {
	c.nodes++
	c.pollStop()
	if c.stopped() {
		return 0
	}

	c.pvLen[ply] = ply

	pvNode := beta-alpha > 1

	if ply > 0 {
		// After a normal move, c.history's last entry is pos itself, pushed by
		// the parent just before this call; Repeated must only look at earlier
		// occurrences. After a null move nothing is pushed, so the excluded
		// entry is the parent's key, which differs from pos in side to move.
		if pos.FiftyMoveDraw() || pos.InsufficientMaterial() || pos.Repeated(c.history[:len(c.history)-1]) > 0 {
			return 0
		}
	}

	if depth <= 0 {
		if pos.InCheck(pos.SideToMove()) && !pos.HasLegalMoves() {
			return -(MateScore - ply)
		}
		return c.quiescence(pos, alpha, beta, ply)
	}
	if ply >= MaxPly-1 {
		return sideEval(pos)
	}

	inCheck := pos.InCheck(pos.SideToMove())

	key := pos.Zobrist()
	var ttMove board.Move
	if c.TT != nil {
		if entry, ok := c.TT.Probe(key, ply); ok {
			c.ttHits++
			ttMove = entry.Move
			if int(entry.Depth) >= depth {
				switch entry.Bound {
				case tt.BoundExact:
					if !pvNode {
						return int(entry.Score)
					}
				case tt.BoundLower:
					if int(entry.Score) >= beta {
						return int(entry.Score)
					}
				case tt.BoundUpper:
					if int(entry.Score) <= alpha {
						return int(entry.Score)
					}
				}
			}
		}
	}

	us := pos.SideToMove()

	// Null-move pruning: skip the side's turn entirely and see if the
	// opponent still can't beat beta. Guarded against zugzwang by a
	// material floor, and never tried in check, in a PV node, at the root,
	// or as the reply to another null move.
	if allowNull && !inCheck && !pvNode && ply > 0 && depth >= c.Options.NullMoveMinDepth &&
		nonPawnMaterial(pos, us) >= c.Options.NullMoveMinMaterial {
		u := pos.MakeNullMove()
		score := -c.negamax(pos, -beta, -beta+1, depth-1-c.Options.NullMoveR, ply+1, false)
		pos.UnmakeNullMove(u)
		if c.stopped() {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var moveBuf [256]board.Move
	moves := pos.GenerateMoves(moveBuf[:0])
	if len(moves) == 0 {
		if inCheck {
			return -(MateScore - ply)
		}
		return 0
	}

	ordered := c.orderMoves(pos, moves, ttMove, ply)

	bestScore := -MateScore - 1
	var bestMove board.Move
	bound := tt.BoundUpper

	for i := range ordered {
		selectBest(ordered, i)
		m := ordered[i].move

		u := pos.MakeMove(m)
		c.history = append(c.history, pos.Zobrist())

		var score int
		if i == 0 {
			score = -c.negamax(pos, -beta, -alpha, depth-1, ply+1, true)
		} else {
			score = -c.negamax(pos, -alpha-1, -alpha, depth-1, ply+1, true)
			if score > alpha && score < beta {
				score = -c.negamax(pos, -beta, -alpha, depth-1, ply+1, true)
			}
		}

		c.history = c.history[:len(c.history)-1]
		pos.UnmakeMove(u)

		if c.stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			bound = tt.BoundExact
			c.updatePV(ply, m)
		}
		if alpha >= beta {
			bound = tt.BoundLower
			if !m.IsCapture() {
				c.addKiller(ply, m)
				c.addHistory(us, m, depth)
			}
			bucket := i
			if bucket >= cutoffHistogramSize {
				bucket = cutoffHistogramSize - 1
			}
			c.cutoffByIndex[bucket]++
			break
		}
	}

	if c.TT != nil {
		c.TT.Store(key, bestMove, int32(bestScore), int8(depth), bound, ply)
	}
	return bestScore
}

// updatePV splices m and the continuation already found one ply deeper
// into this ply's row of the triangular PV table.
func (c *Context) updatePV(ply int, m board.Move) {
	c.pvTable[ply][ply] = m
	for i := ply + 1; i < c.pvLen[ply+1]; i++ {
		c.pvTable[ply][i] = c.pvTable[ply+1][i]
	}
	c.pvLen[ply] = c.pvLen[ply+1]
	if c.pvLen[ply] <= ply {
		c.pvLen[ply] = ply + 1
	}
}

func (c *Context) extractPV() []board.Move {
	n := c.pvLen[0]
	if n <= 0 {
		return nil
	}
	out := make([]board.Move, n)
	copy(out, c.pvTable[0][:n])
	return out
}

func (c *Context) addKiller(ply int, m board.Move) {
	if c.killers[ply][0] == m {
		return
	}
	c.killers[ply][1] = c.killers[ply][0]
	c.killers[ply][0] = m
}

func (c *Context) addHistory(side board.Color, m board.Move, depth int) {
	c.historyScore[side][m.From()][m.To()] += int32(depth * depth)
}
