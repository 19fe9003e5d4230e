//go:build corvid_debug

package corvid

import "fmt"

// assertInvariants checks the properties spec.md 8 lists as always holding
// for a reachable Position. Compiled in only under the corvid_debug build
// tag (spec.md 7: "Invariant checks should be compiled in under debug
// builds and may be elided in release builds"). A violation is a
// programming error, not a recoverable condition, so this panics.
func assertInvariants(pos *Position) {
	if pos.color[White]&pos.color[Black] != 0 {
		panic("corvid: invariant violated: color[White] & color[Black] != empty")
	}
	var kindUnion Bitboard
	for p := Pawn; p <= King; p++ {
		kindUnion |= pos.kind[p]
	}
	if kindUnion != pos.Occupied() {
		panic("corvid: invariant violated: union of kind boards != union of color boards")
	}
	for _, c := range [2]Color{White, Black} {
		if pos.pieces(c, King).Count() != 1 {
			panic(fmt.Sprintf("corvid: invariant violated: %s does not have exactly one king", c))
		}
	}
	for sq := Square(0); sq < 64; sq++ {
		o := pos.mailbox[sq]
		if o.piece == NoPiece {
			if pos.Occupied().Has(sq) {
				panic(fmt.Sprintf("corvid: invariant violated: mailbox empty at %s but bitboards occupied", sq))
			}
			continue
		}
		if !pos.pieces(o.color, o.piece).Has(sq) {
			panic(fmt.Sprintf("corvid: invariant violated: mailbox/bitboard disagreement at %s", sq))
		}
	}
	if pos.pieces(White, Pawn)&(onlyRank[0]|onlyRank[7]) != 0 {
		panic("corvid: invariant violated: white pawn on rank 1 or 8")
	}
	if pos.pieces(Black, Pawn)&(onlyRank[0]|onlyRank[7]) != 0 {
		panic("corvid: invariant violated: black pawn on rank 1 or 8")
	}
}
