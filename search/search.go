// Package search implements iterative-deepening negamax with principal
// variation search, null-move pruning, and SEE-filtered quiescence. All
// search state — the stop flag, deadline, transposition table, killer and
// history tables — lives on an explicit Context the caller owns and
// passes down the recursion; nothing here is global or process-wide
// mutable state.
package search

import (
	"time"

	"chess-engine/board"
	"chess-engine/eval"
	"chess-engine/tt"
)

// MaxPly bounds recursion depth (both negamax and quiescence) as a safety
// valve; no realistic search configuration gets anywhere near it.
const MaxPly = 128

// MateScore anchors the mate-scoring convention: a returned score of
// ±(MateScore − plies-to-mate) signals a forced mate, with shorter mates
// scoring higher in magnitude.
const MateScore = tt.MateScore

// aspirationWindow is the root search's initial window half-width around
// the previous iteration's score.
const aspirationWindow = 35

// Options holds the search's tunable constants.
type Options struct {
	MaxDepth int

	// NullMoveMinDepth and NullMoveR parameterize null-move pruning
	// (minimum depth 3, reduction 2, by default).
	NullMoveMinDepth int
	NullMoveR        int

	// NullMoveMinMaterial is the zugzwang guard: null-move pruning is
	// skipped when the side to move holds less non-pawn, non-king material
	// than this.
	NullMoveMinMaterial int
}

// DefaultOptions returns the engine's baseline tuning.
func DefaultOptions() Options {
	return Options{
		MaxDepth:            64,
		NullMoveMinDepth:    3,
		NullMoveR:           2,
		NullMoveMinMaterial: eval.Value[board.Knight],
	}
}

// cutoffHistogramSize caps the move-index buckets cutoffByIndex tracks
// individually; cutoffs past this index are folded into the last bucket.
const cutoffHistogramSize = 8

// Info is the one-line progress report emitted after each completed
// iterative-deepening depth.
type Info struct {
	Depth   int
	Nodes   uint64
	TTHits  uint64
	Elapsed time.Duration
	Score   int
	PV      []board.Move
	// CutoffByIndex[i] counts beta cutoffs on the i-th move tried at a
	// node (0-indexed, clamped at cutoffHistogramSize-1) — a high count at
	// index 0 means move ordering is doing its job.
	CutoffByIndex [cutoffHistogramSize]uint64
}

// Reporter receives one Info per completed depth.
type Reporter func(Info)

// Context is the full mutable state of one search call: the transposition
// table (owned by the caller, so it can persist across calls), the killer
// and history move-ordering tables, the triangular PV table, and the
// cooperative stop signal.
type Context struct {
	Options  Options
	TT       *tt.Table
	Deadline time.Time
	// Stop is polled, never mutated, by the search; the caller sets *Stop
	// to request cancellation from another goroutine or a UI event loop.
	Stop     *bool
	Reporter Reporter

	rootHint board.Move
	history  []uint64 // Zobrist keys of positions reached so far this game, for repetition detection

	killers      [MaxPly][2]board.Move
	historyScore [2][128][128]int32
	pvTable      [MaxPly][MaxPly]board.Move
	pvLen        [MaxPly]int

	nodes         uint64
	ttHits        uint64
	cutoffByIndex [cutoffHistogramSize]uint64
	start         time.Time
	stopFlag      bool

	// disableOrdering is a test-only hook that forces move-generation order
	// instead of scored ordering, for the "ordering never costs more nodes"
	// sanity check.
	disableOrdering bool
}

// NewContext builds a Context over an existing transposition table.
func NewContext(table *tt.Table, opts Options) *Context {
	return &Context{Options: opts, TT: table}
}

// Search runs iterative deepening from pos until Options.MaxDepth, the
// deadline, or the stop flag, and returns the best move found and its
// score. history is the game's Zobrist key history up to (not including)
// pos, used for repetition detection; Search appends to and restores it as
// it walks the tree, so the caller's slice is left unchanged.
func (c *Context) Search(pos *board.Position, history []uint64) (board.Move, int) {
	c.nodes = 0
	c.ttHits = 0
	c.cutoffByIndex = [cutoffHistogramSize]uint64{}
	c.stopFlag = false
	c.start = time.Now()
	c.history = append(append([]uint64(nil), history...), pos.Zobrist())
	c.rootHint = board.NoMove
	c.killers = [MaxPly][2]board.Move{}
	c.historyScore = [2][128][128]int32{}
	if c.TT != nil {
		c.TT.NewSearch()
	}

	maxDepth := c.Options.MaxDepth
	if maxDepth <= 0 || maxDepth >= MaxPly {
		maxDepth = MaxPly - 1
	}

	var bestMove board.Move
	bestScore := 0
	var bestPV []board.Move

	for depth := 1; depth <= maxDepth; depth++ {
		c.pvLen[0] = 0

		score := c.searchRoot(pos, depth, bestScore)
		if c.stopped() && depth > 1 {
			break
		}

		pv := c.extractPV()
		if len(pv) > 0 {
			bestMove = pv[0]
			bestScore = score
			bestPV = pv
			c.rootHint = pv[0]
		}

		if c.Reporter != nil {
			c.Reporter(Info{
				Depth:         depth,
				Nodes:         c.nodes,
				TTHits:        c.ttHits,
				Elapsed:       time.Since(c.start),
				Score:         bestScore,
				PV:            bestPV,
				CutoffByIndex: c.cutoffByIndex,
			})
		}

		if c.stopped() {
			break
		}
		if abs(score) >= MateScore-MaxPly {
			break
		}
	}

	if bestMove == board.NoMove {
		if moves := pos.GenerateLegalMoves(); len(moves) > 0 {
			bestMove = moves[0]
		}
	}
	return bestMove, bestScore
}

// searchRoot runs one iterative-deepening depth, widening an aspiration
// window around the previous iteration's score until the result falls
// inside it (or the search is stopped).
func (c *Context) searchRoot(pos *board.Position, depth, prevScore int) int {
	if depth <= 2 || (prevScore == 0 && depth <= 3) {
		return c.negamax(pos, -MateScore, MateScore, depth, 0, true)
	}

	window := aspirationWindow
	alpha := prevScore - window
	beta := prevScore + window
	for {
		score := c.negamax(pos, alpha, beta, depth, 0, true)
		if c.stopped() {
			return score
		}
		if score <= alpha {
			alpha -= window
			window *= 2
			if alpha < -MateScore {
				alpha = -MateScore
			}
			continue
		}
		if score >= beta {
			beta += window
			window *= 2
			if beta > MateScore {
				beta = MateScore
			}
			continue
		}
		return score
	}
}

func (c *Context) stopped() bool {
	if c.stopFlag {
		return true
	}
	return c.Stop != nil && *c.Stop
}

func (c *Context) timeUp() bool {
	return !c.Deadline.IsZero() && time.Now().After(c.Deadline)
}

func (c *Context) pollStop() {
	if c.nodes&2047 == 0 && c.timeUp() {
		c.stopFlag = true
	}
}

func sideEval(pos *board.Position) int {
	v := eval.Evaluate(pos)
	if pos.SideToMove() == board.Black {
		return -v
	}
	return v
}

// nonPawnMaterial sums the eval value of color's knights, bishops, rooks
// and queens. Off-board 0x88 slots in the position's piece array are never
// written by setPiece, so they always read NoPiece and this loop does not
// need to test onBoard.
func nonPawnMaterial(pos *board.Position, color board.Color) int {
	total := 0
	for i := 0; i < 128; i++ {
		pc := pos.PieceAt(board.Square(i))
		if pc == board.NoPiece || pc.Color() != color {
			continue
		}
		switch pc.Type() {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
			total += eval.Value[pc.Type()]
		}
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
