// Package attacks precomputes sliding-piece attack sets for bishops and
// rooks, indexed by the relevant occupancy on each square's rays.
//
// Squares here are plain 0..63 indices in a1..h8 order (a1=0, b1=1, ...,
// h8=63); the board package is responsible for translating to and from its
// 0x88 mailbox representation. This package has no dependency on the board
// package so that AttackTables stays a leaf, per the component dependency
// order: Position -> AttackTables -> MoveGen.
package attacks

import "math/bits"

// rookDeltas and bishopDeltas are the four ray directions for each piece,
// expressed as (file, rank) steps.
var rookDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// table holds, for one square, the relevant-occupancy mask, the bit
// positions making up that mask (for dense gather/scatter indexing), and
// the attack bitboard for every subset of the mask.
type table struct {
	mask      uint64
	bitSquare []int // square index for each set bit of mask, low to high
	attacks   []uint64
}

var rookTables [64]table
var bishopTables [64]table

func init() {
	for sq := 0; sq < 64; sq++ {
		rookTables[sq] = buildTable(sq, rookDeltas)
		bishopTables[sq] = buildTable(sq, bishopDeltas)
	}
}

func fileOf(sq int) int { return sq & 7 }
func rankOf(sq int) int { return sq >> 3 }

func onBoard(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

// rayMask walks one direction from sq, excluding sq itself and the final
// edge square (the edge square is never a relevant blocker: a piece there
// can't be "occupied or not" in a way that changes the attack set, since
// the ray simply ends at the board edge either way).
func rayMask(sq int, dir [2]int) uint64 {
	var mask uint64
	file, rank := fileOf(sq), rankOf(sq)
	for {
		file += dir[0]
		rank += dir[1]
		if !onBoard(file, rank) {
			break
		}
		nFile, nRank := file+dir[0], rank+dir[1]
		if !onBoard(nFile, nRank) {
			break // (file, rank) is the last square on this ray; not a relevant blocker
		}
		mask |= uint64(1) << uint(rank*8+file)
	}
	return mask
}

// rayAttacks computes the exact attack set along dir from sq given a full
// occupancy bitboard, stopping at (and including) the first blocker.
func rayAttacks(sq int, dir [2]int, occ uint64) uint64 {
	var attacks uint64
	file, rank := fileOf(sq), rankOf(sq)
	for {
		file += dir[0]
		rank += dir[1]
		if !onBoard(file, rank) {
			break
		}
		target := uint(rank*8 + file)
		attacks |= uint64(1) << target
		if occ&(uint64(1)<<target) != 0 {
			break
		}
	}
	return attacks
}

func buildTable(sq int, deltas [4][2]int) table {
	var mask uint64
	for _, d := range deltas {
		mask |= rayMask(sq, d)
	}

	var bitSquares []int
	for m := mask; m != 0; m &= m - 1 {
		bitSquares = append(bitSquares, bits.TrailingZeros64(m))
	}

	size := 1 << len(bitSquares)
	attacksTab := make([]uint64, size)

	// Enumerate every subset of mask via the carry-rippler trick, compute
	// the dense index by gathering mask bits, and fill in the exact attack
	// set for that occupancy by ray-scanning.
	for subset := uint64(0); ; subset = (subset - mask) & mask {
		idx := gather(subset, bitSquares)
		var att uint64
		for _, d := range deltas {
			att |= rayAttacks(sq, d, subset)
		}
		attacksTab[idx] = att
		if subset == mask {
			break
		}
	}

	return table{mask: mask, bitSquare: bitSquares, attacks: attacksTab}
}

// gather packs the bits of occ at the given bit positions into consecutive
// low-order bits, in the same order those positions appear in bitSquares.
// This is the dense subset index the lookup path also computes.
func gather(occ uint64, bitSquares []int) int {
	idx := 0
	for i, sq := range bitSquares {
		if occ&(uint64(1)<<uint(sq)) != 0 {
			idx |= 1 << uint(i)
		}
	}
	return idx
}

func lookup(t *table, occ uint64) uint64 {
	return t.attacks[gather(occ&t.mask, t.bitSquare)]
}

// RookAttacks returns the rook attack bitboard from sq given the full board
// occupancy occ (both sides combined).
func RookAttacks(sq int, occ uint64) uint64 {
	return lookup(&rookTables[sq], occ)
}

// BishopAttacks returns the bishop attack bitboard from sq given occ.
func BishopAttacks(sq int, occ uint64) uint64 {
	return lookup(&bishopTables[sq], occ)
}

// QueenAttacks unions the rook and bishop attack sets.
func QueenAttacks(sq int, occ uint64) uint64 {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
