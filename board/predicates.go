package board

// HasLegalMoves reports whether the side to move has at least one legal
// move, without the caller needing to manage a move buffer.
func (p *Position) HasLegalMoves() bool {
	var buf [256]Move
	return len(p.GenerateMoves(buf[:0])) > 0
}

// Checkmate reports whether the side to move is in check with no legal
// moves.
func (p *Position) Checkmate() bool {
	return p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}

// Stalemate reports whether the side to move is not in check but has no
// legal moves.
func (p *Position) Stalemate() bool {
	return !p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}

// FiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move-rule threshold of 100 halfmoves.
func (p *Position) FiftyMoveDraw() bool {
	return p.halfmoveClock >= 100
}

// InsufficientMaterial reports whether neither side has enough material to
// force checkmate: K vs K, K vs K+minor, or K+B vs K+B with same-colored
// bishops.
func (p *Position) InsufficientMaterial() bool {
	var knights, lightBishops, darkBishops, others [2]int
	for sq := Square(0); int(sq) < 128; sq++ {
		if !sq.onBoard() {
			continue
		}
		pc := p.pieces[sq]
		if pc == NoPiece {
			continue
		}
		c := pc.Color()
		switch pc.Type() {
		case Pawn, Rook, Queen:
			others[c]++
		case Knight:
			knights[c]++
		case Bishop:
			if squareIsLight(sq) {
				lightBishops[c]++
			} else {
				darkBishops[c]++
			}
		}
	}
	if others[White] > 0 || others[Black] > 0 {
		return false
	}
	minors := [2]int{knights[White] + lightBishops[White] + darkBishops[White], knights[Black] + lightBishops[Black] + darkBishops[Black]}

	// K vs K, or K vs K+(single minor).
	if minors[White]+minors[Black] <= 1 {
		return true
	}
	// K+B vs K+B with same-colored bishops and nothing else.
	sameColoredBishops := (lightBishops[White] == 1 && lightBishops[Black] == 1 && knights[White] == 0 && knights[Black] == 0 && darkBishops[White] == 0 && darkBishops[Black] == 0) ||
		(darkBishops[White] == 1 && darkBishops[Black] == 1 && knights[White] == 0 && knights[Black] == 0 && lightBishops[White] == 0 && lightBishops[Black] == 0)
	return sameColoredBishops
}

func squareIsLight(sq Square) bool {
	return (sq.File()+sq.Rank())%2 != 0
}

// Repeated counts how many times the position's current Zobrist key
// appears in history — the caller's record of keys for positions reached
// earlier in the game or search line.
func (p *Position) Repeated(history []uint64) int {
	n := 0
	for _, k := range history {
		if k == p.zobrist {
			n++
		}
	}
	return n
}
