package corvid

// apply.go implements Make/Unmake (spec.md 4.6): reversible state
// transitions over a Position, recording just enough in undoState to
// restore the pre-move state byte-for-byte. Grounded on
// IlikeChooros-dragontoothmg/apply.go's Make/Undo and its History struct,
// but shortened substantially: because Move already carries its MoveKind
// and captured piece (move.go), Unmake never needs to re-derive what kind
// of move it is undoing the way the teacher's determinePieceType does.

// undoState is the snapshot Make takes of everything Unmake cannot
// recover from the move encoding alone (spec.md 4.6 step 1).
type undoState struct {
	epTarget Square
	castle   castleRights
	halfmove uint8
	hash     uint64
}

// castleRookSquares returns the rook's home and post-castle squares for a
// castling move by color us.
func castleRookSquares(us Color, kind MoveKind) (from, to Square) {
	if us == White {
		if kind == CastleKingside {
			return whiteKingsideRookHome, Square(5)
		}
		return whiteQueensideRookHome, Square(3)
	}
	if kind == CastleKingside {
		return blackKingsideRookHome, Square(61)
	}
	return blackQueensideRookHome, Square(59)
}

// updateCastleRightsForMove revokes rights per spec.md 4.6 step 6: a king
// move strips both of its side's rights; a rook move off its home square
// strips that side's right.
func (pos *Position) updateCastleRightsForMove(us Color, piece Piece, from Square) {
	if piece == King {
		pos.castle = pos.castle.clear(us, true).clear(us, false)
		return
	}
	if piece != Rook {
		return
	}
	switch from {
	case whiteKingsideRookHome:
		pos.castle = pos.castle.clear(White, true)
	case whiteQueensideRookHome:
		pos.castle = pos.castle.clear(White, false)
	case blackKingsideRookHome:
		pos.castle = pos.castle.clear(Black, true)
	case blackQueensideRookHome:
		pos.castle = pos.castle.clear(Black, false)
	}
}

// updateCastleRightsForCapture revokes the captured side's right when a
// rook is captured sitting on its own home square (spec.md 4.6 step 6 /
// the castling-right-revocation Open Question resolved in DESIGN.md).
func (pos *Position) updateCastleRightsForCapture(them Color, captured Piece, to Square) {
	if captured != Rook {
		return
	}
	switch to {
	case whiteKingsideRookHome:
		pos.castle = pos.castle.clear(White, true)
	case whiteQueensideRookHome:
		pos.castle = pos.castle.clear(White, false)
	case blackKingsideRookHome:
		pos.castle = pos.castle.clear(Black, true)
	case blackQueensideRookHome:
		pos.castle = pos.castle.clear(Black, false)
	}
}

// Make applies m to the position. m must be a legal move generated from
// this exact position; behavior is undefined otherwise (spec.md 4.6).
func (pos *Position) Make(m Move) {
	us := pos.sideToMove
	them := us.Other()

	pos.history = append(pos.history, undoState{
		epTarget: pos.epTarget,
		castle:   pos.castle,
		halfmove: pos.halfmove,
		hash:     pos.hash,
	})

	from, to := m.From(), m.To()
	piece, _ := pos.PieceAt(from)

	switch m.Kind() {
	case EnPassantCapture:
		pos.removePiece(them, Pawn, m.EnPassantCaptureSquare(us))
		pos.movePiece(us, Pawn, from, to)
	case CastleKingside, CastleQueenside:
		pos.movePiece(us, King, from, to)
		rookFrom, rookTo := castleRookSquares(us, m.Kind())
		pos.movePiece(us, Rook, rookFrom, rookTo)
	case PromotionMove:
		pos.removePiece(us, Pawn, from)
		pos.addPiece(us, m.Promoted(), to)
	case PromotionCaptureMove:
		pos.removePiece(them, m.Captured(), to)
		pos.removePiece(us, Pawn, from)
		pos.addPiece(us, m.Promoted(), to)
	case CaptureMove:
		pos.removePiece(them, m.Captured(), to)
		pos.movePiece(us, piece, from, to)
	default: // Quiet, DoublePush
		pos.movePiece(us, piece, from, to)
	}

	if piece == Pawn || m.IsCapture() {
		pos.halfmove = 0
	} else {
		pos.halfmove++
	}

	oldCastle := pos.castle
	pos.updateCastleRightsForMove(us, piece, from)
	if m.Kind() == CaptureMove || m.Kind() == PromotionCaptureMove {
		pos.updateCastleRightsForCapture(them, m.Captured(), to)
	}
	pos.hash ^= castleZobrist[oldCastle] ^ castleZobrist[pos.castle]

	oldEp := pos.epTarget
	newEp := NoSquare
	if m.Kind() == DoublePush {
		if us == White {
			newEp = Square(int(from) + 8)
		} else {
			newEp = Square(int(from) - 8)
		}
	}
	pos.epTarget = newEp
	pos.hash ^= enPassantZobrist[oldEp] ^ enPassantZobrist[newEp]

	pos.hash ^= sideToMoveZobrist
	pos.sideToMove = them
	if us == Black {
		pos.fullmove++
	}

	pos.invalidateAttackCache()
	pos.debugAssertInvariants()
}

// Unmake reverses m, which must be the most recently made move on this
// Position. After Unmake, the Position is bit-identical to its state
// before the matching Make (spec.md 4.6, 8 item 7).
func (pos *Position) Unmake(m Move) {
	n := len(pos.history)
	undo := pos.history[n-1]
	pos.history = pos.history[:n-1]

	them := pos.sideToMove
	us := them.Other()
	pos.sideToMove = us
	if us == Black {
		pos.fullmove--
	}

	from, to := m.From(), m.To()

	switch m.Kind() {
	case EnPassantCapture:
		pos.movePiece(us, Pawn, to, from)
		pos.addPiece(them, Pawn, m.EnPassantCaptureSquare(us))
	case CastleKingside, CastleQueenside:
		rookFrom, rookTo := castleRookSquares(us, m.Kind())
		pos.movePiece(us, Rook, rookTo, rookFrom)
		pos.movePiece(us, King, to, from)
	case PromotionMove:
		pos.removePiece(us, m.Promoted(), to)
		pos.addPiece(us, Pawn, from)
	case PromotionCaptureMove:
		pos.removePiece(us, m.Promoted(), to)
		pos.addPiece(us, Pawn, from)
		pos.addPiece(them, m.Captured(), to)
	case CaptureMove:
		piece, _ := pos.PieceAt(to)
		pos.movePiece(us, piece, to, from)
		pos.addPiece(them, m.Captured(), to)
	default: // Quiet, DoublePush
		piece, _ := pos.PieceAt(to)
		pos.movePiece(us, piece, to, from)
	}

	// The piece-placement calls above each XOR the piece-square Zobrist
	// terms incrementally; overwrite with the exact pre-make snapshot
	// last so that drift in that bookkeeping can never leak out.
	pos.epTarget = undo.epTarget
	pos.castle = undo.castle
	pos.halfmove = undo.halfmove
	pos.hash = undo.hash

	pos.invalidateAttackCache()
	pos.debugAssertInvariants()
}
