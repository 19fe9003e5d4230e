package corvid

import "testing"

func TestBitboardSetClearHas(t *testing.T) {
	var b Bitboard
	b = b.Set(10)
	if !b.Has(10) {
		t.Error("expected square 10 to be set")
	}
	b = b.Clear(10)
	if b.Has(10) {
		t.Error("expected square 10 to be cleared")
	}
}

func TestBitboardCount(t *testing.T) {
	b := Bitboard(0).Set(0).Set(1).Set(63)
	if b.Count() != 3 {
		t.Errorf("Count() = %d, want 3", b.Count())
	}
}

func TestBitboardLSBAndPopLSB(t *testing.T) {
	b := Bitboard(0).Set(5).Set(20).Set(40)
	if b.LSB() != 5 {
		t.Errorf("LSB() = %d, want 5", b.LSB())
	}
	sq, rest := b.PopLSB()
	if sq != 5 || rest.Has(5) {
		t.Errorf("PopLSB() = (%d, %v), square 5 should be removed", sq, rest)
	}
	if Empty.LSB() != NoSquare {
		t.Errorf("Empty.LSB() = %d, want NoSquare", Empty.LSB())
	}
}

func TestBitboardShifts(t *testing.T) {
	a1 := Bitboard(0).Set(0)
	if a1.ShiftNorth() != Bitboard(0).Set(8) {
		t.Error("ShiftNorth from a1 should land on a2")
	}
	hFile := onlyFile[7]
	if hFile.ShiftEast() != 0 {
		t.Error("ShiftEast on the h-file should wrap to nothing")
	}
	aFile := onlyFile[0]
	if aFile.ShiftWest() != 0 {
		t.Error("ShiftWest on the a-file should wrap to nothing")
	}
}
