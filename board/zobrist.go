package board

import "math/rand"

// Zobrist hashing tables for pieces, castling rights, en-passant file, and
// side to move. Seeded deterministically so that hashes are reproducible
// across runs and test suites.
var zobristPiece [13][128]uint64
var zobristCastle [16]uint64
var zobristEnPassantFile [8]uint64
var zobristSideToMove uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for pc := WhitePawn; pc <= BlackKing; pc++ {
		for sq := 0; sq < 128; sq++ {
			zobristPiece[pc][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassantFile[f] = rnd.Uint64()
	}
	zobristSideToMove = rnd.Uint64()
}

// computeZobrist hashes the position from scratch; used by ParseFEN and by
// the debug validator to check incremental-key drift against the
// incrementally maintained key.
func (p *Position) computeZobrist() uint64 {
	var key uint64
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			if pc := p.pieces[sq]; pc != NoPiece {
				key ^= zobristPiece[pc][sq]
			}
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSideToMove
	}
	key ^= zobristCastle[p.castling]
	if p.epSquare != NoSquare {
		key ^= zobristEnPassantFile[p.epSquare.File()]
	}
	return key
}
