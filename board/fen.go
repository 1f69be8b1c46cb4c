package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN for the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN-like string (piece placement, side to move,
// castling rights, en-passant target, halfmove clock, fullmove number) into
// a new Position. It fails fast on malformed input and on illegal piece
// placement (no king, or two kings, for either side). Malformed input only
// ever surfaces here, never from the search itself.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: invalid FEN %q: need at least 4 fields", fen)
	}

	pos := &Position{epSquare: NoSquare, kingSquare: [2]Square{NoSquare, NoSquare}}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: invalid FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}

	var kingCount [2]int
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pc, ok := glyphPiece[byte(ch)]
				if !ok {
					return nil, fmt.Errorf("board: invalid FEN %q: unrecognized piece %q", fen, ch)
				}
				if file >= 8 {
					return nil, fmt.Errorf("board: invalid FEN %q: rank %d overflows", fen, rank+1)
				}
				sq := MakeSquare(file, rank)
				pos.setPiece(sq, pc)
				if pc.Type() == King {
					kingCount[pc.Color()]++
				}
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("board: invalid FEN %q: rank %d has %d files, want 8", fen, rank+1, file)
		}
	}
	if kingCount[White] != 1 || kingCount[Black] != 1 {
		return nil, fmt.Errorf("board: invalid FEN %q: expected exactly one king per side, got white=%d black=%d", fen, kingCount[White], kingCount[Black])
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid FEN %q: side to move must be 'w' or 'b', got %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.castling |= WhiteKingside
			case 'Q':
				pos.castling |= WhiteQueenside
			case 'k':
				pos.castling |= BlackKingside
			case 'q':
				pos.castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("board: invalid FEN %q: bad castling character %q", fen, ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("board: invalid FEN %q: bad en-passant square %q", fen, fields[3])
		}
		pos.epSquare = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("board: invalid FEN %q: bad halfmove clock: %w", fen, err)
		}
		pos.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("board: invalid FEN %q: bad fullmove number: %w", fen, err)
		}
		pos.fullmoveNumber = n
	} else {
		pos.fullmoveNumber = 1
	}

	pos.zobrist = pos.computeZobrist()
	return pos, nil
}

// String renders the position as a FEN string.
func (p *Position) String() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.pieces[MakeSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceGlyph[pc])
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}
