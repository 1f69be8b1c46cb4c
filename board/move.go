package board

import "strings"

// Move packs a chess move into a compact integer: from (7 bits), to (7
// bits), promotion type (3 bits: 0 or Knight..Queen), and capture/
// en-passant/castle/double-push flags. The moved and captured piece are
// deliberately not encoded here, keeping the packed word minimal; look them
// up from the Position at the point of use via PieceAt(from/to).
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 7
	movePromoShift = 14
	moveFlagShift  = 17

	moveSquareMask = 0x7F
	movePromoMask  = 0x7

	flagCapture     = 1 << 0
	flagEnPassant   = 1 << 1
	flagCastle      = 1 << 2
	flagDoublePush  = 1 << 3
)

// NoMove is the zero value, used as a "no move" sentinel.
const NoMove Move = 0

func newMove(from, to Square, promo PieceType, flags uint32) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promo)<<movePromoShift |
		flags<<moveFlagShift)
}

// From returns the move's origin square.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & moveSquareMask) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & moveSquareMask) }

// Promotion returns the promotion piece type, or NoPieceType if this is not
// a promotion.
func (m Move) Promotion() PieceType { return PieceType((uint32(m) >> movePromoShift) & movePromoMask) }

func (m Move) flags() uint32 { return uint32(m) >> moveFlagShift }

// IsCapture reports whether the move is a capture (including en passant).
func (m Move) IsCapture() bool { return m.flags()&flagCapture != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.flags()&flagEnPassant != 0 }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.flags()&flagCastle != 0 }

// IsDoublePush reports whether the move is a pawn double push.
func (m Move) IsDoublePush() bool { return m.flags()&flagDoublePush != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoPieceType }

var promoGlyph = map[PieceType]byte{
	Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q',
}

var glyphPromo = map[byte]PieceType{
	'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen,
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != NoPieceType {
		s += string(promoGlyph[promo])
	}
	return s
}

// ParseMove parses coordinate notation against a legal-move list, returning
// the matching Move and true, or NoMove and false if no legal move matches.
// An externally supplied move that isn't legal is rejected here, never fed
// into MakeMove.
func ParseMove(str string, legal []Move) (Move, bool) {
	str = strings.TrimSpace(strings.ToLower(str))
	if len(str) < 4 {
		return NoMove, false
	}
	from, ok := ParseSquare(str[0:2])
	if !ok {
		return NoMove, false
	}
	to, ok := ParseSquare(str[2:4])
	if !ok {
		return NoMove, false
	}
	var promo PieceType
	if len(str) >= 5 {
		promo = glyphPromo[str[4]]
	}
	for _, mv := range legal {
		if mv.From() == from && mv.To() == to && mv.Promotion() == promo {
			return mv, true
		}
	}
	return NoMove, false
}
