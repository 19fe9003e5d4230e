package corvid

// attacks.go implements the precomputed king/knight reach tables and the
// sliding-attack ray walk (spec.md 4.1/4.2), plus the per-color attack cache
// (spec.md 3) that InCheck reads. King legality and castling call AttacksBy
// directly with the occupancy they need rather than reading the cache.
//
// The teacher this repo is built from (IlikeChooros-dragontoothmg) computes
// slider reach with magic-bitboard multiplication; the magic tables that
// back it were not part of the retrieved slice, and spec.md 4.2 separately
// mandates the classic one-step-at-a-time ray walk, so that is what this
// file implements instead (see DESIGN.md).

import "github.com/corvidchess/corvid/internal/corelog"

var attackLog = corelog.Get("corvid/attacks")

var kingAttacks [64]Bitboard
var knightAttacks [64]Bitboard

// whitePawnAttacks[sq] / blackPawnAttacks[sq] are the diagonal squares a
// pawn of that color standing on sq would attack.
var whitePawnAttacks [64]Bitboard
var blackPawnAttacks [64]Bitboard

type rayStep struct{ df, dr int8 }

var rayDeltas = [8]rayStep{
	dirNorth:     {0, 1},
	dirSouth:     {0, -1},
	dirEast:      {1, 0},
	dirWest:      {-1, 0},
	dirNorthEast: {1, 1},
	dirNorthWest: {-1, 1},
	dirSouthEast: {1, -1},
	dirSouthWest: {-1, -1},
}

func onBoard(f, r int8) bool {
	return f >= 0 && f < 8 && r >= 0 && r < 8
}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		kingAttacks[sq] = computeKingMask(sq)
		knightAttacks[sq] = computeKnightMask(sq)
		whitePawnAttacks[sq] = computePawnMask(sq, White)
		blackPawnAttacks[sq] = computePawnMask(sq, Black)
	}
}

func computeKingMask(sq Square) Bitboard {
	var bb Bitboard
	f, r := int8(sq.File()), int8(sq.Rank())
	for df := int8(-1); df <= 1; df++ {
		for dr := int8(-1); dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if nf, nr := f+df, r+dr; onBoard(nf, nr) {
				bb = bb.Set(MakeSquare(uint8(nf), uint8(nr)))
			}
		}
	}
	return bb
}

func computeKnightMask(sq Square) Bitboard {
	var bb Bitboard
	f, r := int8(sq.File()), int8(sq.Rank())
	deltas := [8][2]int8{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, d := range deltas {
		if nf, nr := f+d[0], r+d[1]; onBoard(nf, nr) {
			bb = bb.Set(MakeSquare(uint8(nf), uint8(nr)))
		}
	}
	return bb
}

func computePawnMask(sq Square, c Color) Bitboard {
	var bb Bitboard
	f, r := int8(sq.File()), int8(sq.Rank())
	dr := int8(1)
	if c == Black {
		dr = -1
	}
	for _, df := range [2]int8{-1, 1} {
		if nf, nr := f+df, r+dr; onBoard(nf, nr) {
			bb = bb.Set(MakeSquare(uint8(nf), uint8(nr)))
		}
	}
	return bb
}

// slidingAttacks walks each ray in dirs one square at a time from sq,
// accepting every empty step and the first blocked step, stopping there.
// Same-color subtraction is the caller's job (spec.md 4.2).
func slidingAttacks(sq Square, occ Bitboard, dirs []rayDirection) Bitboard {
	var bb Bitboard
	f0, r0 := int8(sq.File()), int8(sq.Rank())
	for _, dir := range dirs {
		d := rayDeltas[dir]
		f, r := f0+d.df, r0+d.dr
		for onBoard(f, r) {
			target := MakeSquare(uint8(f), uint8(r))
			bb = bb.Set(target)
			if occ.Has(target) {
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return bb
}

func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	return slidingAttacks(sq, occ, diagonalDirections[:])
}

func rookAttacks(sq Square, occ Bitboard) Bitboard {
	return slidingAttacks(sq, occ, orthogonalDirections[:])
}

func queenAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}

func pawnAttacksFrom(sq Square, c Color) Bitboard {
	if c == White {
		return whitePawnAttacks[sq]
	}
	return blackPawnAttacks[sq]
}

// AttacksBy computes every square attacked-or-defended by color by, under
// occupancy occ (spec.md 3's "Attack cache"). It is a pure function of its
// arguments: callers decide what occ to pass, which is what lets king
// legality exclude the moving king from occupancy (spec.md 4.5) without any
// hidden mutable state.
func (pos *Position) AttacksBy(by Color, occ Bitboard) Bitboard {
	var bb Bitboard
	for pawns := pos.pieces(by, Pawn); pawns != 0; {
		var sq Square
		sq, pawns = pawns.PopLSB()
		bb |= pawnAttacksFrom(sq, by)
	}
	for knights := pos.pieces(by, Knight); knights != 0; {
		var sq Square
		sq, knights = knights.PopLSB()
		bb |= knightAttacks[sq]
	}
	diagSliders := pos.pieces(by, Bishop) | pos.pieces(by, Queen)
	for diagSliders != 0 {
		var sq Square
		sq, diagSliders = diagSliders.PopLSB()
		bb |= bishopAttacks(sq, occ)
	}
	orthoSliders := pos.pieces(by, Rook) | pos.pieces(by, Queen)
	for orthoSliders != 0 {
		var sq Square
		sq, orthoSliders = orthoSliders.PopLSB()
		bb |= rookAttacks(sq, occ)
	}
	if sq := pos.pieces(by, King).LSB(); sq != NoSquare {
		bb |= kingAttacks[sq]
	}
	return bb
}

// Attacks returns the cached attack set for color c against the position's
// current occupancy, recomputing it on demand and memoizing the result
// (invalidated by Make/Unmake). This is the on-demand restatement of the
// attack cache spec.md 9 allows as an alternative to rebuilding it as a
// side-effect of move generation.
func (pos *Position) Attacks(c Color) Bitboard {
	if pos.attackCacheValid[c] {
		return pos.attackCache[c]
	}
	bb := pos.AttacksBy(c, pos.Occupied())
	pos.attackCache[c] = bb
	pos.attackCacheValid[c] = true
	attackLog.Debugf("rebuilt attack cache for %s: %d squares", c, bb.Count())
	return bb
}

func (pos *Position) invalidateAttackCache() {
	pos.attackCacheValid[White] = false
	pos.attackCacheValid[Black] = false
}
