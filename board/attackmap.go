package board

// attackMap is a 128-byte board-shaped set of squares attacked by one side.
type attackMap [128]bool

// buildAttackMap walks the board once, marking every square attacked by
// color `by`. Sliders stop at the first blocker but still mark the
// blocker's square.
func (p *Position) buildAttackMap(by Color) attackMap {
	var m attackMap
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			pc := p.pieces[sq]
			if pc == NoPiece || pc.Color() != by {
				continue
			}
			p.markAttacks(sq, pc, &m)
		}
	}
	return m
}

func (p *Position) markAttacks(sq Square, pc Piece, m *attackMap) {
	switch pc.Type() {
	case Pawn:
		for _, d := range pawnCaptureDeltas[pc.Color()] {
			if to, ok := step(sq, d); ok {
				m[to] = true
			}
		}
	case Knight:
		for _, d := range knightDeltas {
			if to, ok := step(sq, d); ok {
				m[to] = true
			}
		}
	case King:
		for _, d := range queenDirs {
			if to, ok := step(sq, d); ok {
				m[to] = true
			}
		}
	case Bishop:
		p.markSliderAttacks(sq, bishopDirs[:], m)
	case Rook:
		p.markSliderAttacks(sq, rookDirs[:], m)
	case Queen:
		p.markSliderAttacks(sq, queenDirs[:], m)
	}
}

func (p *Position) markSliderAttacks(sq Square, dirs []int, m *attackMap) {
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := step(cur, d)
			if !ok {
				break
			}
			m[to] = true
			if p.pieces[to] != NoPiece {
				break
			}
			cur = to
		}
	}
}

// isAttackedBy reports whether sq is attacked by color `by`, evaluated
// directly against the live board. Unlike buildAttackMap, this is a
// targeted single-square query: it is what verifies king moves, castling,
// and en-passant captures by make/unmake, since it naturally sees through
// whatever square the king or pawns just vacated.
func (p *Position) isAttackedBy(sq Square, by Color) bool {
	for _, d := range pawnCaptureDeltas[by.Opponent()] {
		if from, ok := step(sq, d); ok && p.pieces[from] == PieceFromTypeColor(Pawn, by) {
			return true
		}
	}
	for _, d := range knightDeltas {
		if from, ok := step(sq, d); ok && p.pieces[from] == PieceFromTypeColor(Knight, by) {
			return true
		}
	}
	for _, d := range queenDirs {
		if from, ok := step(sq, d); ok && p.pieces[from] == PieceFromTypeColor(King, by) {
			return true
		}
	}
	for _, d := range bishopDirs {
		cur := sq
		for {
			to, ok := step(cur, d)
			if !ok {
				break
			}
			if pc := p.pieces[to]; pc != NoPiece {
				if pc.Color() == by && (pc.Type() == Bishop || pc.Type() == Queen) {
					return true
				}
				break
			}
			cur = to
		}
	}
	for _, d := range rookDirs {
		cur := sq
		for {
			to, ok := step(cur, d)
			if !ok {
				break
			}
			if pc := p.pieces[to]; pc != NoPiece {
				if pc.Color() == by && (pc.Type() == Rook || pc.Type() == Queen) {
					return true
				}
				break
			}
			cur = to
		}
	}
	return false
}

// InCheck reports whether color c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.isAttackedBy(p.kingSquare[c], c.Opponent())
}

// checkerInfo describes one piece giving check.
type checkerInfo struct {
	square Square
	slider bool
	dir    int // direction from king to this checker, valid iff slider
}

// pinInfo describes a pinned piece and the (either-sense) direction of its
// pin line.
type pinInfo struct {
	square Square
	dir    int
}

// analyzeKing scans the 8 queen directions from the side-to-move's king to
// find pins and slider checkers, then separately checks knight/pawn
// adjacency for non-sliding checkers.
func (p *Position) analyzeKing(us Color) (pins []pinInfo, checkers []checkerInfo) {
	them := us.Opponent()
	kingSq := p.kingSquare[us]

	for _, d := range queenDirs {
		isBishopDir := d == dirNE || d == dirNW || d == dirSE || d == dirSW
		cur := kingSq
		var firstFriendly Square = NoSquare
		for {
			to, ok := step(cur, d)
			if !ok {
				break
			}
			pc := p.pieces[to]
			if pc == NoPiece {
				cur = to
				continue
			}
			if pc.Color() == us {
				if firstFriendly == NoSquare {
					firstFriendly = to
					cur = to
					continue
				}
				break // a second friendly piece blocks the ray entirely
			}
			// First enemy piece encountered along this ray.
			slides := isSliderMatchingDir(pc, isBishopDir)
			if firstFriendly == NoSquare {
				if slides {
					checkers = append(checkers, checkerInfo{square: to, slider: true, dir: d})
				}
			} else if slides {
				pins = append(pins, pinInfo{square: firstFriendly, dir: d})
			}
			break
		}
	}

	for _, d := range knightDeltas {
		if from, ok := step(kingSq, d); ok && p.pieces[from] == PieceFromTypeColor(Knight, them) {
			checkers = append(checkers, checkerInfo{square: from, slider: false})
		}
	}
	for _, d := range pawnCaptureDeltas[us] {
		if from, ok := step(kingSq, d); ok && p.pieces[from] == PieceFromTypeColor(Pawn, them) {
			checkers = append(checkers, checkerInfo{square: from, slider: false})
		}
	}

	return pins, checkers
}

func isSliderMatchingDir(pc Piece, bishopDir bool) bool {
	switch pc.Type() {
	case Queen:
		return true
	case Bishop:
		return bishopDir
	case Rook:
		return !bishopDir
	}
	return false
}

// blockSet returns the squares that interpose against a single checker,
// inclusive of the checker's own square: for sliders, the squares strictly
// between the king and the checker plus the checker; for non-sliders, just
// the checker's square.
func blockSet(kingSq Square, c checkerInfo) map[Square]bool {
	set := map[Square]bool{c.square: true}
	if !c.slider {
		return set
	}
	cur := kingSq
	for {
		to, ok := step(cur, c.dir)
		if !ok || to == c.square {
			break
		}
		set[to] = true
		cur = to
	}
	return set
}

func pinDirFor(pins []pinInfo, sq Square) (int, bool) {
	for _, p := range pins {
		if p.square == sq {
			return p.dir, true
		}
	}
	return 0, false
}

// collinear reports whether stepping repeatedly from `from` in direction
// `dir` or `-dir` reaches `to` without leaving the board first — i.e.
// whether from->to lies along the pin line (either sense).
func collinear(from, to Square, dir int) bool {
	for _, d := range [2]int{dir, -dir} {
		cur := from
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			if next == to {
				return true
			}
			cur = next
		}
	}
	return false
}
