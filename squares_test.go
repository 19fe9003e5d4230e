package corvid

import "testing"

func TestMakeSquareFileRank(t *testing.T) {
	cases := []struct {
		file, rank uint8
		want       Square
	}{
		{0, 0, 0},
		{7, 0, 7},
		{0, 7, 56},
		{7, 7, 63},
		{4, 3, 28},
	}
	for _, c := range cases {
		sq := MakeSquare(c.file, c.rank)
		if sq != c.want {
			t.Errorf("MakeSquare(%d, %d) = %d, want %d", c.file, c.rank, sq, c.want)
		}
		if sq.File() != c.file {
			t.Errorf("Square(%d).File() = %d, want %d", sq, sq.File(), c.file)
		}
		if sq.Rank() != c.rank {
			t.Errorf("Square(%d).Rank() = %d, want %d", sq, sq.Rank(), c.rank)
		}
	}
}

func TestSquareString(t *testing.T) {
	cases := map[Square]string{0: "a1", 7: "h1", 56: "a8", 63: "h8", 28: "e4"}
	for sq, want := range cases {
		if got := sq.String(); got != want {
			t.Errorf("Square(%d).String() = %q, want %q", sq, got, want)
		}
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q, want %q", NoSquare.String(), "-")
	}
}

func TestAlgebraicToSquare(t *testing.T) {
	sq, err := AlgebraicToSquare("e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sq != 28 {
		t.Errorf("AlgebraicToSquare(e4) = %d, want 28", sq)
	}
	for _, bad := range []string{"", "e", "e45", "i4", "e9", "E4x"} {
		if _, err := AlgebraicToSquare(bad); err == nil {
			t.Errorf("AlgebraicToSquare(%q): expected error, got nil", bad)
		}
	}
}

func TestOnlyFileAndRankMasks(t *testing.T) {
	if onlyFile[0].Count() != 8 {
		t.Errorf("onlyFile[0] has %d squares, want 8", onlyFile[0].Count())
	}
	if !onlyFile[0].Has(0) || !onlyFile[0].Has(56) {
		t.Errorf("onlyFile[0] should contain a1 and a8")
	}
	if !onlyRank[0].Has(0) || !onlyRank[0].Has(7) {
		t.Errorf("onlyRank[0] should contain a1 and h1")
	}
	if notAFileMask.Has(0) {
		t.Errorf("notAFileMask should exclude the a-file")
	}
	if notHFileMask.Has(7) {
		t.Errorf("notHFileMask should exclude the h-file")
	}
}
