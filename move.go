package corvid

import "fmt"

// MoveKind tags the variant of a Move (spec.md 3).
type MoveKind uint8

const (
	Quiet MoveKind = iota
	CaptureMove
	DoublePush
	EnPassantCapture
	CastleKingside
	CastleQueenside
	PromotionMove
	PromotionCaptureMove
)

// Move is a packed (from, to, kind, promoted piece, captured piece) record.
// Where the teacher (IlikeChooros-dragontoothmg) packs only from/to/promote
// into a uint16 and re-derives capture/en-passant/castle status at apply
// time by re-examining the board, spec.md 3 models MoveKind as part of the
// move itself; the encoding widens to a uint32 to carry it directly.
//
//	bits 0-5:   to square
//	bits 6-11:  from square
//	bits 12-14: MoveKind
//	bits 15-17: promoted piece (PromotionMove/PromotionCaptureMove only)
//	bits 18-20: captured piece (CaptureMove/PromotionCaptureMove only)
type Move uint32

const (
	moveToMask       = 0x3F
	moveFromShift    = 6
	moveFromMask     = 0x3F << moveFromShift
	moveKindShift    = 12
	moveKindMask     = 0x7 << moveKindShift
	movePromoShift   = 15
	movePromoMask    = 0x7 << movePromoShift
	moveCapturedSh   = 18
	moveCapturedMask = 0x7 << moveCapturedSh
)

// NewMove builds a Move from its fields.
func NewMove(from, to Square, kind MoveKind, promoted, captured Piece) Move {
	return Move(uint32(to)&moveToMask) |
		Move(uint32(from)<<moveFromShift)&moveFromMask |
		Move(uint32(kind)<<moveKindShift)&moveKindMask |
		Move(uint32(promoted)<<movePromoShift)&movePromoMask |
		Move(uint32(captured)<<moveCapturedSh)&moveCapturedMask
}

// To returns the destination square.
func (m Move) To() Square { return Square(m & moveToMask) }

// From returns the origin square.
func (m Move) From() Square { return Square((m & moveFromMask) >> moveFromShift) }

// Kind returns the move's variant tag.
func (m Move) Kind() MoveKind { return MoveKind((m & moveKindMask) >> moveKindShift) }

// Promoted returns the piece a pawn promotes to; only meaningful when Kind
// is PromotionMove or PromotionCaptureMove.
func (m Move) Promoted() Piece { return Piece((m & movePromoMask) >> movePromoShift) }

// Captured returns the piece kind captured; only meaningful when Kind is
// CaptureMove or PromotionCaptureMove. En-passant's captured piece is
// always a Pawn and is not stored since it is derivable from the move.
func (m Move) Captured() Piece { return Piece((m & moveCapturedMask) >> moveCapturedSh) }

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	switch m.Kind() {
	case CaptureMove, PromotionCaptureMove, EnPassantCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind() == PromotionMove || m.Kind() == PromotionCaptureMove
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind() == CastleKingside || m.Kind() == CastleQueenside
}

// EnPassantCaptureSquare returns the square of the pawn captured en
// passant: one rank behind the destination square, toward the mover.
// Only meaningful when Kind is EnPassantCapture.
func (m Move) EnPassantCaptureSquare(mover Color) Square {
	if mover == White {
		return Square(int(m.To()) - 8)
	}
	return Square(int(m.To()) + 8)
}

// promotionLetter maps a promoted piece kind to its long-algebraic suffix.
var promotionLetter = map[Piece]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}

func (m Move) String() string {
	if m == 0 {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", m.From(), m.To())
	if m.IsPromotion() {
		s += string(promotionLetter[m.Promoted()])
	}
	return s
}

// promotionPieces lists the four kinds a pawn may promote to, in the order
// spec.md 4.3 enumerates them.
var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}
