package board

import "math/bits"

// GenerateMoves appends every legal move for the side to move into buf
// (typically buf[:0] of a caller-owned, stack-resident array) and returns
// the extended slice. At most 256 moves are ever produced for one
// position, well above the practical ceiling of 218 for any reachable
// chess position.
func (p *Position) GenerateMoves(buf []Move) []Move {
	us := p.sideToMove
	them := us.Opponent()
	kingSq := p.kingSquare[us]

	pins, checkers := p.analyzeKing(us)

	if len(checkers) >= 2 {
		return p.generateKingMoves(us, them, kingSq, buf)
	}

	var blocks map[Square]bool
	inCheck := len(checkers) == 1
	if inCheck {
		blocks = blockSet(kingSq, checkers[0])
	}

	buf = p.generatePawnMoves(us, pins, inCheck, blocks, buf)
	buf = p.generatePieceMoves(us, Knight, knightDeltas[:], pins, inCheck, blocks, buf)
	buf = p.generateSliderMoves(us, Bishop, pins, inCheck, blocks, buf)
	buf = p.generateSliderMoves(us, Rook, pins, inCheck, blocks, buf)
	buf = p.generateSliderMoves(us, Queen, pins, inCheck, blocks, buf)
	buf = p.generateKingMoves(us, them, kingSq, buf)
	if !inCheck {
		buf = p.generateCastling(us, kingSq, buf)
	}
	return buf
}

// GenerateLegalMoves is a convenience wrapper for callers (tests, perft,
// the debug CLI) that don't want to manage their own buffer.
func (p *Position) GenerateLegalMoves() []Move {
	return p.GenerateMoves(make([]Move, 0, 64))
}

// GenerateCaptures appends only captures and promotions — the surface
// quiescence search consumes.
func (p *Position) GenerateCaptures(buf []Move) []Move {
	var full [256]Move
	all := p.GenerateMoves(full[:0])
	for _, m := range all {
		if m.IsCapture() || m.IsPromotion() {
			buf = append(buf, m)
		}
	}
	return buf
}

func moveAllowed(sq Square, pins []pinInfo, inCheck bool, blocks map[Square]bool, to Square) bool {
	if dir, pinned := pinDirFor(pins, sq); pinned && !collinear(sq, to, dir) {
		return false
	}
	if inCheck && !blocks[to] {
		return false
	}
	return true
}

func (p *Position) generatePieceMoves(us Color, pt PieceType, deltas []int, pins []pinInfo, inCheck bool, blocks map[Square]bool, buf []Move) []Move {
	for sq := Square(0); int(sq) < 128; sq++ {
		if !sq.onBoard() {
			continue
		}
		pc := p.pieces[sq]
		if pc == NoPiece || pc.Color() != us || pc.Type() != pt {
			continue
		}
		for _, d := range deltas {
			to, ok := step(sq, d)
			if !ok {
				continue
			}
			target := p.pieces[to]
			if target != NoPiece && target.Color() == us {
				continue
			}
			if !moveAllowed(sq, pins, inCheck, blocks, to) {
				continue
			}
			flags := uint32(0)
			if target != NoPiece {
				flags |= flagCapture
			}
			buf = append(buf, newMove(sq, to, NoPieceType, flags))
		}
	}
	return buf
}

func (p *Position) generateSliderMoves(us Color, pt PieceType, pins []pinInfo, inCheck bool, blocks map[Square]bool, buf []Move) []Move {
	occ := p.occ64
	for sq := Square(0); int(sq) < 128; sq++ {
		if !sq.onBoard() {
			continue
		}
		pc := p.pieces[sq]
		if pc == NoPiece || pc.Color() != us || pc.Type() != pt {
			continue
		}
		rookAtt, bishopAtt := attackSquareSet(sq, occ)
		var attack uint64
		switch pt {
		case Bishop:
			attack = bishopAtt
		case Rook:
			attack = rookAtt
		case Queen:
			attack = rookAtt | bishopAtt
		}
		attack &^= p.occByColor64[us]
		for bb := attack; bb != 0; bb &= bb - 1 {
			to := fromIdx64(bits.TrailingZeros64(bb))
			if !moveAllowed(sq, pins, inCheck, blocks, to) {
				continue
			}
			flags := uint32(0)
			if p.pieces[to] != NoPiece {
				flags |= flagCapture
			}
			buf = append(buf, newMove(sq, to, NoPieceType, flags))
		}
	}
	return buf
}

func (p *Position) generatePawnMoves(us Color, pins []pinInfo, inCheck bool, blocks map[Square]bool, buf []Move) []Move {
	push := pawnPushDelta[us]
	homeRank := pawnHomeRank[us]
	promoRank := pawnPromoRank[us]
	them := us.Opponent()

	for sq := Square(0); int(sq) < 128; sq++ {
		if !sq.onBoard() {
			continue
		}
		pc := p.pieces[sq]
		if pc == NoPiece || pc.Color() != us || pc.Type() != Pawn {
			continue
		}

		if one, ok := step(sq, push); ok && p.pieces[one] == NoPiece {
			buf = p.emitPawnMove(sq, one, promoRank, 0, pins, inCheck, blocks, buf)
			if sq.Rank() == homeRank {
				if two, ok2 := step(one, push); ok2 && p.pieces[two] == NoPiece {
					if moveAllowed(sq, pins, inCheck, blocks, two) {
						buf = append(buf, newMove(sq, two, NoPieceType, flagDoublePush))
					}
				}
			}
		}

		for _, d := range pawnCaptureDeltas[us] {
			to, ok := step(sq, d)
			if !ok {
				continue
			}
			if target := p.pieces[to]; target != NoPiece && target.Color() == them {
				buf = p.emitPawnMove(sq, to, promoRank, flagCapture, pins, inCheck, blocks, buf)
				continue
			}
			if to == p.epSquare && p.epSquare != NoSquare {
				if p.enPassantLegal(sq, to, us) {
					buf = append(buf, newMove(sq, to, NoPieceType, flagCapture|flagEnPassant))
				}
			}
		}
	}
	return buf
}

func (p *Position) emitPawnMove(from, to Square, promoRank int, flags uint32, pins []pinInfo, inCheck bool, blocks map[Square]bool, buf []Move) []Move {
	if !moveAllowed(from, pins, inCheck, blocks, to) {
		return buf
	}
	if to.Rank() == promoRank {
		for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			buf = append(buf, newMove(from, to, promo, flags))
		}
		return buf
	}
	return append(buf, newMove(from, to, NoPieceType, flags))
}

// enPassantLegal verifies an en-passant capture by making and unmaking it
// and rechecking the king's safety: removing two pawns on the same rank can
// expose a horizontal slider, which no static filter catches.
func (p *Position) enPassantLegal(from, to Square, us Color) bool {
	m := newMove(from, to, NoPieceType, flagCapture|flagEnPassant)
	u := p.MakeMove(m)
	safe := !p.InCheck(us)
	p.UnmakeMove(u)
	return safe
}

func (p *Position) generateKingMoves(us, them Color, kingSq Square, buf []Move) []Move {
	for _, d := range queenDirs {
		to, ok := step(kingSq, d)
		if !ok {
			continue
		}
		target := p.pieces[to]
		if target != NoPiece && target.Color() == us {
			continue
		}
		flags := uint32(0)
		if target != NoPiece {
			flags |= flagCapture
		}
		m := newMove(kingSq, to, NoPieceType, flags)
		if p.kingMoveSafe(m, us, them) {
			buf = append(buf, m)
		}
	}
	return buf
}

// kingMoveSafe verifies a king move by making and unmaking it, because the
// attack map computed with the king on its original square doesn't show
// sliding attacks "through" the square the king is about to vacate. A cheap
// ray test alone would miss this.
func (p *Position) kingMoveSafe(m Move, us, them Color) bool {
	u := p.MakeMove(m)
	safe := !p.isAttackedBy(m.To(), them)
	p.UnmakeMove(u)
	return safe
}

var castleSquares = struct {
	kingTo, pass [2][2]Square // [color][kingside=0/queenside=1]
}{
	kingTo: [2][2]Square{
		White: {MakeSquare(6, 0), MakeSquare(2, 0)},
		Black: {MakeSquare(6, 7), MakeSquare(2, 7)},
	},
	pass: [2][2]Square{
		White: {MakeSquare(5, 0), MakeSquare(3, 0)},
		Black: {MakeSquare(5, 7), MakeSquare(3, 7)},
	},
}

// generateCastling emits castling moves only when the right is held, the
// home rook is in place, the squares between king and rook are empty, and
// none of the king's start/pass-through/destination squares are attacked
//. The move is additionally verified like
// any other king move before being kept.
func (p *Position) generateCastling(us Color, kingSq Square, buf []Move) []Move {
	them := us.Opponent()
	rights := [2]CastlingRights{castleRightsForKingside[us], castleRightsForQueenside[us]}
	// The queenside rook must cross the b-file too, even though the king
	// never passes through or lands there, so it must be empty (but it
	// doesn't need to be unattacked).
	bFileSquare := MakeSquare(1, kingSq.Rank())

	for slot := 0; slot < 2; slot++ {
		if p.castling&rights[slot] == 0 {
			continue
		}
		rookFrom := castleHomeRookFrom[us][slot]
		if p.pieces[rookFrom].Type() != Rook || p.pieces[rookFrom].Color() != us {
			continue
		}
		passSq := castleSquares.pass[us][slot]
		destSq := castleSquares.kingTo[us][slot]
		if p.pieces[passSq] != NoPiece || p.pieces[destSq] != NoPiece {
			continue
		}
		if slot == 1 && p.pieces[bFileSquare] != NoPiece {
			continue
		}
		if p.isAttackedBy(kingSq, them) || p.isAttackedBy(passSq, them) || p.isAttackedBy(destSq, them) {
			continue
		}
		m := newMove(kingSq, destSq, NoPieceType, flagCastle)
		if p.kingMoveSafe(m, us, them) {
			buf = append(buf, m)
		}
	}
	return buf
}
