package corvid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFenStartpos(t *testing.T) {
	pos, err := ParseFen(Startpos)
	require.NoError(t, err)
	require.Equal(t, White, pos.SideToMove())
	require.Equal(t, Square(4), pos.KingSquare(White))
	require.Equal(t, Square(60), pos.KingSquare(Black))
	require.True(t, pos.CanCastle(White, true))
	require.True(t, pos.CanCastle(White, false))
	require.True(t, pos.CanCastle(Black, true))
	require.True(t, pos.CanCastle(Black, false))
	require.Equal(t, NoSquare, pos.EnPassantTarget())
	require.Equal(t, uint8(0), pos.HalfmoveClock())
	require.Equal(t, uint16(1), pos.FullmoveNumber())
	require.Equal(t, recomputeHash(pos), pos.Hash())
}

func TestParseFenRoundTrip(t *testing.T) {
	fens := []string{
		Startpos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RQ1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"6nq/6p1/2B4n/1rB2r1R/5q2/2P5/1Q4n1/2B5 w - h8 6 12",
	}
	for _, fen := range fens {
		pos, err := ParseFen(fen)
		require.NoError(t, err, fen)
		require.Equal(t, fen, pos.String(), "round trip of %s", fen)
	}
}

func TestParseFenRejectsMalformedInput(t *testing.T) {
	badFens := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPX/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range badFens {
		_, err := ParseFen(fen)
		require.Error(t, err, fen)
		require.ErrorIs(t, err, ErrParsePosition)
	}
}

func TestParseFenNeverMutatesOnFailure(t *testing.T) {
	// A parse failure must return before any local state is exposed to the
	// caller; there is nothing to assert against a nil Position except that
	// it is in fact nil.
	pos, err := ParseFen("not a fen")
	require.Error(t, err)
	require.Nil(t, pos)
}

func TestPositionClone(t *testing.T) {
	pos, err := ParseFen(Startpos)
	require.NoError(t, err)
	clone := pos.Clone()
	require.Equal(t, pos.String(), clone.String())

	m, ok := pos.matchLegalMove(MakeSquare(4, 1), MakeSquare(4, 3), NoPiece)
	require.True(t, ok, "e2e4 should be a legal opening move")
	clone.Make(m)

	require.NotEqual(t, pos.String(), clone.String(), "mutating the clone must not affect the original")
	require.Equal(t, Startpos, pos.String())
}
