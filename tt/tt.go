// Package tt implements the transposition table: a power-of-two array of
// entries keyed by Zobrist hash, with depth-preferred replacement and
// per-search age stamping.
package tt

import "chess-engine/board"

// Bound records whether a stored score is exact, or a bound produced by
// an alpha or beta cutoff.
type Bound uint8

const (
	BoundNone  Bound = 0
	BoundExact Bound = 1
	BoundLower Bound = 2 // fail-high / cut-node: true score >= Score
	BoundUpper Bound = 3 // fail-low / all-node: true score <= Score
)

// MateScore anchors the search's mate-scoring convention: a returned score
// of ±(MateScore − plies-to-mate) signals a forced mate. Entries storing a
// mate score are normalized to "plies from this node" on store and
// re-expressed as "plies from the root" on probe, using the probing ply.
const MateScore = 1_000_000

// mateThreshold is comfortably below MateScore but far above any plausible
// static evaluation, so it safely distinguishes mate scores from normal
// ones regardless of search depth.
const mateThreshold = MateScore - 1000

// Entry is one transposition table slot.
type Entry struct {
	Key   uint64
	Move  board.Move
	Score int32
	Depth int8
	Bound Bound
	Age   uint8
}

// Table is a flat, power-of-two-sized transposition table.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8
}

const entrySize = 32 // bytes; approximate, used only to size the table from a MB budget

// New builds a table sized to fit within sizeMB megabytes, rounding the
// entry count down to a power of two.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	want := uint64(sizeMB) * 1024 * 1024 / entrySize
	n := uint64(1)
	for n*2 <= want {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	return &Table{entries: make([]Entry, n), mask: n - 1}
}

// Clear zeroes every entry and resets the age counter.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
}

// NewSearch stamps a new age for entries stored from now on. If the age
// counter wraps back to zero, every stale entry from the previous cycle
// would otherwise look indistinguishable from a fresh one, so the whole
// table is cleared instead.
func (t *Table) NewSearch() {
	t.age++
	if t.age == 0 {
		t.Clear()
	}
}

func (t *Table) index(key uint64) uint64 { return key & t.mask }

// Probe looks up key, adjusting a stored mate score from "plies below this
// node" to "plies below the root" using ply. It reports a miss on key
// mismatch.
func (t *Table) Probe(key uint64, ply int) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Bound == BoundNone || e.Key != key {
		return Entry{}, false
	}
	e.Score = fromTT(e.Score, ply)
	return e, true
}

// Store records an entry for key, replacing the current occupant unless it
// holds a deeper search from the same age, whichever position it is. Mate
// scores are normalized to "plies below this node" before storing so they
// compare correctly across nodes reached at different depths from the
// root.
func (t *Table) Store(key uint64, move board.Move, score int32, depth int8, bound Bound, ply int) {
	idx := t.index(key)
	cur := &t.entries[idx]

	if cur.Bound != BoundNone && cur.Depth > depth && cur.Age == t.age {
		return
	}

	cur.Key = key
	cur.Move = move
	cur.Score = toTT(score, ply)
	cur.Depth = depth
	cur.Bound = bound
	cur.Age = t.age
}

func toTT(score int32, ply int) int32 {
	if score > mateThreshold {
		return score + int32(ply)
	}
	if score < -mateThreshold {
		return score - int32(ply)
	}
	return score
}

func fromTT(score int32, ply int) int32 {
	if score > mateThreshold {
		return score - int32(ply)
	}
	if score < -mateThreshold {
		return score + int32(ply)
	}
	return score
}
