package corvid

import (
	"fmt"
	"strings"
)

// Square is a board coordinate in the range 0..63, using little-endian
// rank-file mapping: square 0 is a1, square 63 is h8.
//
//	56 57 58 59 60 61 62 63
//	48 49 50 51 52 53 54 55
//	40 41 42 43 44 45 46 47
//	32 33 34 35 36 37 38 39
//	24 25 26 27 28 29 30 31
//	16 17 18 19 20 21 22 23
//	 8  9 10 11 12 13 14 15
//	 0  1  2  3  4  5  6  7
type Square uint8

// NoSquare marks the absence of a square, e.g. an inactive en-passant target.
const NoSquare Square = 64

// File returns the file (0 = a, 7 = h) of the square.
func (s Square) File() uint8 {
	return uint8(s) & 7
}

// Rank returns the rank (0 = rank 1, 7 = rank 8) of the square.
func (s Square) Rank() uint8 {
	return uint8(s) >> 3
}

// Bit returns the single-bit mask for the square.
func (s Square) Bit() Bitboard {
	return Bitboard(1) << uint(s)
}

func (s Square) String() string {
	if s > 63 {
		return "-"
	}
	file := rune('a' + s.File())
	rank := '1' + rune(s.Rank())
	return fmt.Sprintf("%c%c", file, rank)
}

// MakeSquare builds a Square from a zero-based file and rank.
func MakeSquare(file, rank uint8) Square {
	return Square(rank*8 + file)
}

// AlgebraicToSquare parses a two-character algebraic coordinate (e.g. "e4")
// into a Square. It fails on anything outside the a1..h8 board.
func AlgebraicToSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q must be 2 characters", ErrParseMove, alg)
	}
	file := strings.ToLower(alg)[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: square %q out of range", ErrParseMove, alg)
	}
	return MakeSquare(file-'a', rank-'1'), nil
}

// onlyFile[f] is the bitboard of every square on file f (0 = a, 7 = h).
var onlyFile [8]Bitboard

// onlyRank[r] is the bitboard of every square on rank r (0 = rank 1, 7 = rank 8).
var onlyRank [8]Bitboard

func init() {
	for f := uint8(0); f < 8; f++ {
		var bb Bitboard
		for r := uint8(0); r < 8; r++ {
			bb |= MakeSquare(f, r).Bit()
		}
		onlyFile[f] = bb
	}
	for r := uint8(0); r < 8; r++ {
		var bb Bitboard
		for f := uint8(0); f < 8; f++ {
			bb |= MakeSquare(f, r).Bit()
		}
		onlyRank[r] = bb
	}
}

var (
	notAFileMask Bitboard
	notHFileMask Bitboard
)

func init() {
	notAFileMask = ^onlyFile[0]
	notHFileMask = ^onlyFile[7]
}
