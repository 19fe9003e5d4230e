package corvid

// movegen.go implements pseudo-legal generation per piece kind, check/pin
// detection, and legal-move filtering (spec.md 4.2-4.5), re-expressed over
// the ray-walk attacks in attacks.go. Algorithm shape (pin-aware generation
// split per piece, allowDest/nonpinned masks threaded through every
// generator) is grounded on IlikeChooros-dragontoothmg/movegen.go's
// GenerateMovesForPiece/generatePinnedMoves/pawnPushes/pawnCaptures.

import "github.com/corvidchess/corvid/internal/corelog"

var movegenLog = corelog.Get("corvid/movegen")

// pinEntry records, for one pinned piece, the ray (king through pinner,
// inclusive) it is constrained to move along.
type pinEntry struct {
	sq  Square
	ray Bitboard
}

func pinRayFor(pins []pinEntry, sq Square) Bitboard {
	for _, p := range pins {
		if p.sq == sq {
			return p.ray
		}
	}
	return Empty
}

// computeCheckersAndPins walks the 8 rays from the king square plus the
// knight/pawn attack patterns to find every piece giving check, the
// check ray (squares between king and a lone checker, inclusive), and every
// absolutely pinned piece with its pin ray (spec.md 4.5).
func (pos *Position) computeCheckersAndPins(us Color, kingSq Square) (checkers, checkRay, pinnedBB Bitboard, pins []pinEntry) {
	them := us.Other()
	occ := pos.Occupied()
	ourPieces := pos.color[us]

	if knightCheckers := knightAttacks[kingSq] & pos.pieces(them, Knight); knightCheckers != 0 {
		checkers |= knightCheckers
		checkRay |= knightCheckers
	}
	if pawnCheckers := pawnAttacksFrom(kingSq, us) & pos.pieces(them, Pawn); pawnCheckers != 0 {
		checkers |= pawnCheckers
		checkRay |= pawnCheckers
	}

	for _, dir := range allDirections {
		d := rayDeltas[dir]
		f, r := int8(kingSq.File())+d.df, int8(kingSq.Rank())+d.dr
		var firstOwn Square = NoSquare
		var rayBits Bitboard
		for onBoard(f, r) {
			sq := MakeSquare(uint8(f), uint8(r))
			rayBits = rayBits.Set(sq)
			if occ.Has(sq) {
				if ourPieces.Has(sq) {
					if firstOwn == NoSquare {
						firstOwn = sq
						f += d.df
						r += d.dr
						continue
					}
					break // a second own piece blocks the ray entirely
				}
				compatible := isCompatibleSlider(pos, sq, dir)
				if firstOwn == NoSquare {
					if compatible {
						checkers |= sq.Bit()
						checkRay |= rayBits
					}
				} else if compatible {
					pinnedBB |= firstOwn.Bit()
					pins = append(pins, pinEntry{sq: firstOwn, ray: rayBits})
				}
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return
}

func isCompatibleSlider(pos *Position, sq Square, dir rayDirection) bool {
	p, _ := pos.PieceAt(sq)
	if dir.isDiagonal() {
		return p == Bishop || p == Queen
	}
	return p == Rook || p == Queen
}

// InCheck reports whether the side to move's king is currently attacked.
func (pos *Position) InCheck() bool {
	us := pos.sideToMove
	return pos.Attacks(us.Other()).Has(pos.KingSquare(us))
}

// GenerateLegalMoves returns every legal move for the side to move.
// Iteration is over ascending square index throughout, so output order is
// deterministic for a given position (spec.md 4.5).
func (pos *Position) GenerateLegalMoves() []Move {
	us := pos.sideToMove
	kingSq := pos.KingSquare(us)
	checkers, checkRay, pinnedBB, pins := pos.computeCheckersAndPins(us, kingSq)
	moves := make([]Move, 0, 48)

	if checkers.Count() >= 2 {
		pos.genKingMoves(&moves, us, kingSq)
		return moves
	}

	allowDest := Full
	if checkers != 0 {
		allowDest = checkRay
		movegenLog.Debugf("%s to move, %d checker(s)", us, checkers.Count())
	}

	pos.genPawnMoves(&moves, us, pinnedBB, pins, allowDest)
	pos.genKnightMoves(&moves, us, pinnedBB, allowDest)
	pos.genSliderMoves(&moves, us, Bishop, pinnedBB, pins, allowDest)
	pos.genSliderMoves(&moves, us, Rook, pinnedBB, pins, allowDest)
	pos.genSliderMoves(&moves, us, Queen, pinnedBB, pins, allowDest)
	pos.genKingMoves(&moves, us, kingSq)
	if checkers == 0 {
		pos.genCastlingMoves(&moves, us)
	}
	return moves
}

// emitTargets converts a targets bitboard into moves from a single origin.
func (pos *Position) emitTargets(moveList *[]Move, from Square, targets Bitboard) {
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		if captured, _ := pos.PieceAt(to); captured != NoPiece {
			*moveList = append(*moveList, NewMove(from, to, CaptureMove, NoPiece, captured))
		} else {
			*moveList = append(*moveList, NewMove(from, to, Quiet, NoPiece, NoPiece))
		}
	}
}

func (pos *Position) genKnightMoves(moveList *[]Move, us Color, pinnedBB, allowDest Bitboard) {
	ourPieces := pos.color[us]
	// A pinned knight has no legal move: it cannot stay on its pin ray
	// while making an L-shaped jump, so pinned knights are excluded here.
	knights := pos.pieces(us, Knight) &^ pinnedBB
	for knights != 0 {
		var sq Square
		sq, knights = knights.PopLSB()
		targets := knightAttacks[sq] &^ ourPieces & allowDest
		pos.emitTargets(moveList, sq, targets)
	}
}

func (pos *Position) genSliderMoves(moveList *[]Move, us Color, kind Piece, pinnedBB Bitboard, pins []pinEntry, allowDest Bitboard) {
	ourPieces := pos.color[us]
	occ := pos.Occupied()
	bb := pos.pieces(us, kind)
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		var targets Bitboard
		switch kind {
		case Bishop:
			targets = bishopAttacks(sq, occ)
		case Rook:
			targets = rookAttacks(sq, occ)
		case Queen:
			targets = queenAttacks(sq, occ)
		}
		targets &^= ourPieces
		targets &= allowDest
		if pinnedBB.Has(sq) {
			targets &= pinRayFor(pins, sq)
		}
		pos.emitTargets(moveList, sq, targets)
	}
}

func (pos *Position) genKingMoves(moveList *[]Move, us Color, kingSq Square) {
	them := us.Other()
	ourPieces := pos.color[us]
	// Remove the king from occupancy so a slider's X-ray through the
	// king's current square is correctly treated as attacking the
	// destination (spec.md 4.5).
	occWithoutKing := pos.Occupied() &^ kingSq.Bit()
	oppAttacks := pos.AttacksBy(them, occWithoutKing)
	// oppAttacks already covers the squares touching the opponent king
	// (AttacksBy adds the king's reach), but not the opponent king's own
	// square unless another piece defends it. Both are also masked out
	// explicitly, so the kings are never computed as adjacent or as one
	// capturing the other.
	oppKingSq := pos.pieces(them, King).LSB()
	targets := kingAttacks[kingSq] &^ ourPieces &^ oppAttacks &^ kingAttacks[oppKingSq] &^ oppKingSq.Bit()
	pos.emitTargets(moveList, kingSq, targets)
}

// Fixed castling squares for standard chess (no Chess960 support).
const (
	whiteKingHome          = Square(4)
	whiteKingsideRookHome  = Square(7)
	whiteKingsideKingDest  = Square(6)
	whiteQueensideRookHome = Square(0)
	whiteQueensideKingDest = Square(2)
	blackKingHome          = Square(60)
	blackKingsideRookHome  = Square(63)
	blackKingsideKingDest  = Square(62)
	blackQueensideRookHome = Square(56)
	blackQueensideKingDest = Square(58)
)

func (pos *Position) genCastlingMoves(moveList *[]Move, us Color) {
	them := us.Other()
	occ := pos.Occupied()

	tryCastle := func(kingside bool, kingHome, rookHome, kingDest Square, pathEmpty Bitboard, traversed []Square) {
		if !pos.CanCastle(us, kingside) {
			return
		}
		if occ&pathEmpty != 0 {
			return
		}
		if !pos.pieces(us, Rook).Has(rookHome) {
			return
		}
		attacked := pos.AttacksBy(them, occ)
		for _, sq := range traversed {
			if attacked.Has(sq) {
				return
			}
		}
		kind := CastleKingside
		if !kingside {
			kind = CastleQueenside
		}
		*moveList = append(*moveList, NewMove(kingHome, kingDest, kind, NoPiece, NoPiece))
	}

	if us == White {
		tryCastle(true, whiteKingHome, whiteKingsideRookHome, whiteKingsideKingDest,
			Square(5).Bit()|Square(6).Bit(),
			[]Square{whiteKingHome, Square(5), whiteKingsideKingDest})
		tryCastle(false, whiteKingHome, whiteQueensideRookHome, whiteQueensideKingDest,
			Square(1).Bit()|Square(2).Bit()|Square(3).Bit(),
			[]Square{whiteKingHome, Square(3), whiteQueensideKingDest})
	} else {
		tryCastle(true, blackKingHome, blackKingsideRookHome, blackKingsideKingDest,
			Square(61).Bit()|Square(62).Bit(),
			[]Square{blackKingHome, Square(61), blackKingsideKingDest})
		tryCastle(false, blackKingHome, blackQueensideRookHome, blackQueensideKingDest,
			Square(57).Bit()|Square(58).Bit()|Square(59).Bit(),
			[]Square{blackKingHome, Square(59), blackQueensideKingDest})
	}
}

// genPawnMoves generates pushes, double pushes, diagonal captures,
// en-passant captures, and promotions (spec.md 4.3).
func (pos *Position) genPawnMoves(moveList *[]Move, us Color, pinnedBB Bitboard, pins []pinEntry, allowDest Bitboard) {
	them := us.Other()
	occ := pos.Occupied()

	forwardDelta := int8(8)
	startRank := uint8(1)
	promoRank := uint8(7)
	if us == Black {
		forwardDelta = -8
		startRank = 6
		promoRank = 0
	}

	pawns := pos.pieces(us, Pawn)
	for pawns != 0 {
		var sq Square
		sq, pawns = pawns.PopLSB()
		rayMask := Full
		if pinnedBB.Has(sq) {
			rayMask = pinRayFor(pins, sq)
		}

		oneStep := Square(int8(sq) + forwardDelta)
		if !occ.Has(oneStep) {
			if rayMask.Has(oneStep) && allowDest.Has(oneStep) {
				pos.emitPawnAdvance(moveList, sq, oneStep, promoRank, Quiet, NoPiece)
			}
			if sq.Rank() == startRank {
				twoStep := Square(int8(sq) + 2*forwardDelta)
				if !occ.Has(twoStep) && rayMask.Has(twoStep) && allowDest.Has(twoStep) {
					*moveList = append(*moveList, NewMove(sq, twoStep, DoublePush, NoPiece, NoPiece))
				}
			}
		}

		for _, target := range pawnCaptureSquares(sq, us) {
			if captured, color := pos.PieceAt(target); captured != NoPiece && color == them {
				if rayMask.Has(target) && allowDest.Has(target) {
					pos.emitPawnAdvance(moveList, sq, target, promoRank, CaptureMove, captured)
				}
				continue
			}
			if pos.epTarget != NoSquare && target == pos.epTarget {
				capturedSq := Square(int8(target) - forwardDelta)
				epAllowed := allowDest.Has(target) || allowDest.Has(capturedSq)
				if rayMask.Has(target) && epAllowed && pos.enPassantLegal(sq, capturedSq, us) {
					*moveList = append(*moveList, NewMove(sq, target, EnPassantCapture, NoPiece, NoPiece))
				}
			}
		}
	}
}

func (pos *Position) emitPawnAdvance(moveList *[]Move, from, to Square, promoRank uint8, kind MoveKind, captured Piece) {
	if to.Rank() == promoRank {
		promoKind := PromotionMove
		if kind == CaptureMove {
			promoKind = PromotionCaptureMove
		}
		for _, p := range promotionPieces {
			*moveList = append(*moveList, NewMove(from, to, promoKind, p, captured))
		}
		return
	}
	*moveList = append(*moveList, NewMove(from, to, kind, NoPiece, captured))
}

func pawnCaptureSquares(sq Square, us Color) []Square {
	f, r := int8(sq.File()), int8(sq.Rank())
	dr := int8(1)
	if us == Black {
		dr = -1
	}
	var out []Square
	for _, df := range [2]int8{-1, 1} {
		if nf, nr := f+df, r+dr; onBoard(nf, nr) {
			out = append(out, MakeSquare(uint8(nf), uint8(nr)))
		}
	}
	return out
}

// enPassantLegal checks the horizontal-pin case spec.md 8 calls out, and
// any other discovered slider line: with the capturing pawn moved from its
// origin to the target square and the captured pawn removed, no rook,
// bishop, or queen may have a clear line to the king. Only sliders can
// newly attack the king as a result of this occupancy change; knight,
// king, and pawn attacks are unaffected by it.
func (pos *Position) enPassantLegal(from, capturedSq Square, us Color) bool {
	them := us.Other()
	kingSq := pos.KingSquare(us)
	target := Square(int8(capturedSq) + 8)
	if us == Black {
		target = Square(int8(capturedSq) - 8)
	}
	occAfter := pos.Occupied().Clear(from).Clear(capturedSq).Set(target)

	diagSliders := pos.pieces(them, Bishop) | pos.pieces(them, Queen)
	if bishopAttacks(kingSq, occAfter)&diagSliders != 0 {
		return false
	}
	orthoSliders := pos.pieces(them, Rook) | pos.pieces(them, Queen)
	if rookAttacks(kingSq, occAfter)&orthoSliders != 0 {
		return false
	}
	return true
}
