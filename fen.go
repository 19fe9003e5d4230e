package corvid

import (
	"strconv"
	"strings"
)

// fen.go parses and serializes the standard position notation (spec.md 6).
// Grounded on Bubblyworld-dragontoothmg/util.go's ParseFen/ToFen (the
// IlikeChooros-dragontoothmg slice retrieved for this teacher does not
// include its own copy of this file), reworked to return the spec's
// ErrParsePosition instead of silently returning a blank board, and to
// build into a local value so a parse failure never mutates a caller's
// Position (spec.md 7).

// Startpos is the standard starting position in FEN.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceLetters = map[byte]struct {
	piece Piece
	color Color
}{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White},
	'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black},
	'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}

// ParseFen parses a six-field FEN string into a Position. On failure it
// returns ErrParsePosition naming the offending field; no partially built
// state is ever returned.
func ParseFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, parsePositionError("fields", "expected 6 space-separated fields")
	}

	var pos Position
	pos.epTarget = NoSquare

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, parsePositionError("piece placement", "expected 8 ranks separated by '/'")
	}
	for i, rankStr := range ranks {
		rank := uint8(7 - i) // FEN lists rank 8 first
		file := uint8(0)
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += ch - '0'
				continue
			}
			info, ok := fenPieceLetters[ch]
			if !ok {
				return nil, parsePositionError("piece placement", "unrecognized piece letter '"+string(ch)+"'")
			}
			if file > 7 {
				return nil, parsePositionError("piece placement", "rank has more than 8 files")
			}
			pos.addPiece(info.color, info.piece, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, parsePositionError("piece placement", "rank does not sum to 8 files")
		}
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, parsePositionError("side to move", "expected 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				pos.castle |= whiteKingside
			case 'Q':
				pos.castle |= whiteQueenside
			case 'k':
				pos.castle |= blackKingside
			case 'q':
				pos.castle |= blackQueenside
			default:
				return nil, parsePositionError("castling rights", "unrecognized character '"+string(ch)+"'")
			}
		}
	}

	if fields[3] != "-" {
		sq, err := AlgebraicToSquare(fields[3])
		if err != nil {
			return nil, parsePositionError("en passant target", err.Error())
		}
		pos.epTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, parsePositionError("halfmove clock", "expected a non-negative integer")
	}
	pos.halfmove = uint8(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove <= 0 {
		return nil, parsePositionError("fullmove counter", "expected a positive integer")
	}
	pos.fullmove = uint16(fullmove)

	pos.hash = recomputeHash(&pos)
	pos.invalidateAttackCache()
	return &pos, nil
}

// String serializes the position back to its six-field FEN representation
// (spec.md 8 item 8: loading a FEN and re-serializing yields the same six
// fields).
func (pos *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := MakeSquare(uint8(f), uint8(r))
			o := pos.mailbox[sq]
			if o.piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceLetters[o.color][o.piece])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	if pos.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rightsLen := sb.Len()
	if pos.castle&whiteKingside != 0 {
		sb.WriteByte('K')
	}
	if pos.castle&whiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if pos.castle&blackKingside != 0 {
		sb.WriteByte('k')
	}
	if pos.castle&blackQueenside != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == rightsLen {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	if pos.epTarget == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.epTarget.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(pos.halfmove)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(pos.fullmove)))
	return sb.String()
}

// Clone returns a deep copy of the position, safe to hand to a separate
// worker goroutine (spec.md 5: "if parallel perft is ever layered above,
// each worker must clone the Position").
func (pos *Position) Clone() *Position {
	clone := *pos
	clone.history = append([]undoState(nil), pos.history...)
	return &clone
}
