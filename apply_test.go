package corvid

import "testing"

// findMove is a test helper around matchLegalMove that fails the test if
// the requested move is not legal in the given position.
func findMove(t *testing.T, pos *Position, from, to string, promoted Piece) Move {
	t.Helper()
	fromSq, err := AlgebraicToSquare(from)
	if err != nil {
		t.Fatalf("AlgebraicToSquare(%q): %v", from, err)
	}
	toSq, err := AlgebraicToSquare(to)
	if err != nil {
		t.Fatalf("AlgebraicToSquare(%q): %v", to, err)
	}
	m, ok := pos.matchLegalMove(fromSq, toSq, promoted)
	if !ok {
		t.Fatalf("%s%s is not legal in position %s", from, to, pos)
	}
	return m
}

func assertUnmakeRestores(t *testing.T, fen string, m Move) {
	t.Helper()
	pos, err := ParseFen(fen)
	if err != nil {
		t.Fatalf("ParseFen: %v", err)
	}
	before := pos.String()
	beforeHash := pos.Hash()

	pos.Make(m)
	if pos.String() == before {
		t.Fatalf("Make(%s) did not change the position", m)
	}

	pos.Unmake(m)
	if pos.String() != before {
		t.Fatalf("Unmake did not restore the FEN: got %s, want %s", pos, before)
	}
	if pos.Hash() != beforeHash {
		t.Fatalf("Unmake did not restore the hash: got %#x, want %#x", pos.Hash(), beforeHash)
	}
}

func TestMakeUnmakeQuietAndDoublePush(t *testing.T) {
	pos, _ := ParseFen(Startpos)
	m := findMove(t, pos, "e2", "e4", NoPiece)
	assertUnmakeRestores(t, Startpos, m)

	pos.Make(m)
	if pos.EnPassantTarget() != MakeSquare(4, 2) {
		t.Errorf("en-passant target after e2e4 = %s, want e3", pos.EnPassantTarget())
	}
	if pos.SideToMove() != Black {
		t.Errorf("side to move after e2e4 = %s, want black", pos.SideToMove())
	}
}

func TestMakeUnmakeCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"
	pos, _ := ParseFen(fen)
	m := findMove(t, pos, "e4", "d5", NoPiece)
	if !m.IsCapture() {
		t.Fatalf("e4d5 should be encoded as a capture")
	}
	assertUnmakeRestores(t, fen, m)
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	pos, _ := ParseFen(fen)
	m := findMove(t, pos, "e5", "d6", NoPiece)
	if m.Kind() != EnPassantCapture {
		t.Fatalf("e5d6 should be encoded as en passant, got %v", m.Kind())
	}
	assertUnmakeRestores(t, fen, m)

	pos.Make(m)
	if p, _ := pos.PieceAt(MakeSquare(3, 4)); p != NoPiece {
		t.Errorf("captured pawn square d5 should be empty after en passant")
	}
}

func TestMakeUnmakeCastleKingside(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	pos, _ := ParseFen(fen)
	m := findMove(t, pos, "e1", "g1", NoPiece)
	if m.Kind() != CastleKingside {
		t.Fatalf("e1g1 should be encoded as kingside castle, got %v", m.Kind())
	}
	assertUnmakeRestores(t, fen, m)

	pos.Make(m)
	if p, _ := pos.PieceAt(MakeSquare(5, 0)); p != Rook {
		t.Errorf("rook should stand on f1 after kingside castling")
	}
	if pos.CanCastle(White, true) || pos.CanCastle(White, false) {
		t.Errorf("castling should strip both white rights after the king moves")
	}
}

func TestMakeUnmakePromotion(t *testing.T) {
	fen := "8/P7/8/8/8/8/8/k6K w - - 0 1"
	pos, _ := ParseFen(fen)
	m := findMove(t, pos, "a7", "a8", Queen)
	if !m.IsPromotion() {
		t.Fatalf("a7a8q should be encoded as a promotion")
	}
	assertUnmakeRestores(t, fen, m)

	pos.Make(m)
	if p, _ := pos.PieceAt(MakeSquare(0, 7)); p != Queen {
		t.Errorf("a8 should hold a queen after promotion")
	}
}

func TestMakeUnmakeRookCaptureRevokesCastling(t *testing.T) {
	// Black's rook still sits on its queenside home square a8; a white
	// knight captures it there directly.
	fen := "r3k3/2N5/8/8/8/8/8/4K3 w q - 0 1"
	pos, _ := ParseFen(fen)
	if !pos.CanCastle(Black, false) {
		t.Fatal("test position should start with black's queenside right held")
	}

	m := findMove(t, pos, "c7", "a8", NoPiece)
	if !m.IsCapture() || m.Captured() != Rook {
		t.Fatalf("c7a8 should capture the rook, got kind=%v captured=%v", m.Kind(), m.Captured())
	}
	assertUnmakeRestores(t, fen, m)

	pos.Make(m)
	if pos.CanCastle(Black, false) {
		t.Errorf("capturing the rook on a8 should revoke black's queenside right")
	}
}
