package board

// 0x88 step deltas. Off-board tests for these collapse to a single
// "(to & 0x88) != 0" bit test, which is the entire point of the encoding.
const (
	dirN  = 16
	dirS  = -16
	dirE  = 1
	dirW  = -1
	dirNE = 17
	dirNW = 15
	dirSE = -15
	dirSW = -17
)

var rookDirs = [4]int{dirN, dirS, dirE, dirW}
var bishopDirs = [4]int{dirNE, dirNW, dirSE, dirSW}
var queenDirs = [8]int{dirN, dirS, dirE, dirW, dirNE, dirNW, dirSE, dirSW}

var knightDeltas = [8]int{33, 31, 18, 14, -14, -18, -31, -33}

// pawnCaptureDeltas[color] gives the two forward-diagonal deltas a pawn of
// that color attacks with.
var pawnCaptureDeltas = [2][2]int{
	White: {dirNE, dirNW},
	Black: {dirSE, dirSW},
}
var pawnPushDelta = [2]int{White: dirN, Black: dirS}
var pawnHomeRank = [2]int{White: 1, Black: 6}
var pawnPromoRank = [2]int{White: 7, Black: 0}

func step(sq Square, delta int) (Square, bool) {
	n := Square(int(sq) + delta)
	return n, n.onBoard()
}
