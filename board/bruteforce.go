package board

// bruteForcePseudoMoves generates every geometrically possible move for the
// side to move — including moves that leave the mover's own king in check —
// with no pin or check-blocking analysis at all. It exists purely as the
// other half of the brute-force cross-check in validate.go: filtering its
// output by make + in-check-test + unmake must reproduce GenerateMoves's
// output exactly. It is never used on the hot search path.
func (p *Position) bruteForcePseudoMoves() []Move {
	us := p.sideToMove
	them := us.Opponent()
	var buf []Move

	for sq := Square(0); int(sq) < 128; sq++ {
		if !sq.onBoard() {
			continue
		}
		pc := p.pieces[sq]
		if pc == NoPiece || pc.Color() != us {
			continue
		}

		switch pc.Type() {
		case Pawn:
			buf = p.bruteForcePawnMoves(sq, us, them, buf)
		case Knight:
			buf = bruteForceSteppingMoves(p, sq, us, knightDeltas[:], buf)
		case King:
			buf = bruteForceSteppingMoves(p, sq, us, queenDirs[:], buf)
		case Bishop:
			buf = p.bruteForceSliderMoves(sq, us, bishopDirs[:], buf)
		case Rook:
			buf = p.bruteForceSliderMoves(sq, us, rookDirs[:], buf)
		case Queen:
			buf = p.bruteForceSliderMoves(sq, us, queenDirs[:], buf)
		}
	}

	buf = p.bruteForceCastling(us, buf)
	return buf
}

func bruteForceSteppingMoves(p *Position, sq Square, us Color, deltas []int, buf []Move) []Move {
	for _, d := range deltas {
		to, ok := step(sq, d)
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
		buf = append(buf, newMove(sq, to, NoPieceType, flags))
	}
	return buf
}

func (p *Position) bruteForceSliderMoves(sq Square, us Color, dirs []int, buf []Move) []Move {
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := step(cur, d)
			if !ok {
				break
			}
			target := p.pieces[to]
			if target != NoPiece && target.Color() == us {
				break
			}
			flags := uint32(0)
			if target != NoPiece {
				flags |= flagCapture
			}
			buf = append(buf, newMove(sq, to, NoPieceType, flags))
			if target != NoPiece {
				break
			}
			cur = to
		}
	}
	return buf
}

func (p *Position) bruteForcePawnMoves(sq Square, us, them Color, buf []Move) []Move {
	push := pawnPushDelta[us]
	homeRank := pawnHomeRank[us]
	promoRank := pawnPromoRank[us]

	if one, ok := step(sq, push); ok && p.pieces[one] == NoPiece {
		buf = bruteForceEmitPawn(buf, sq, one, promoRank, 0)
		if sq.Rank() == homeRank {
			if two, ok2 := step(one, push); ok2 && p.pieces[two] == NoPiece {
				buf = append(buf, newMove(sq, two, NoPieceType, flagDoublePush))
			}
		}
	}
	for _, d := range pawnCaptureDeltas[us] {
		to, ok := step(sq, d)
		if !ok {
			continue
		}
		if target := p.pieces[to]; target != NoPiece && target.Color() == them {
			buf = bruteForceEmitPawn(buf, sq, to, promoRank, flagCapture)
			continue
		}
		if to == p.epSquare && p.epSquare != NoSquare {
			buf = append(buf, newMove(sq, to, NoPieceType, flagCapture|flagEnPassant))
		}
	}
	return buf
}

func bruteForceEmitPawn(buf []Move, from, to Square, promoRank int, flags uint32) []Move {
	if to.Rank() == promoRank {
		for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			buf = append(buf, newMove(from, to, promo, flags))
		}
		return buf
	}
	return append(buf, newMove(from, to, NoPieceType, flags))
}

func (p *Position) bruteForceCastling(us Color, buf []Move) []Move {
	kingSq := p.kingSquare[us]
	rights := [2]CastlingRights{castleRightsForKingside[us], castleRightsForQueenside[us]}
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
		// Deliberately no attacked-square check here — that's exactly the
		// legality filtering this generator leaves for the make/unmake pass.
		buf = append(buf, newMove(kingSq, destSq, NoPieceType, flagCastle))
	}
	return buf
}
