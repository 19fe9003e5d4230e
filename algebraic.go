package corvid

// algebraic.go implements the long-algebraic move notation and the
// load_position(fen, moves) external request (spec.md 6/7): decode a move
// string, resolve it against the current legal-move list, and replay a
// sequence of them against a freshly loaded position.

var promotionFromLetter = map[byte]Piece{'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight}

// decodeLongAlgebraic parses the syntactic shape of a move string
// (<from><to>[promotion]) without reference to any position. A promotion
// to King, or any letter outside qrbn, is rejected here.
func decodeLongAlgebraic(movestr string) (from, to Square, promoted Piece, err error) {
	if len(movestr) != 4 && len(movestr) != 5 {
		return 0, 0, NoPiece, parseMoveError(movestr, "expected 4 or 5 characters")
	}
	from, err = AlgebraicToSquare(movestr[0:2])
	if err != nil {
		return 0, 0, NoPiece, parseMoveError(movestr, err.Error())
	}
	to, err = AlgebraicToSquare(movestr[2:4])
	if err != nil {
		return 0, 0, NoPiece, parseMoveError(movestr, err.Error())
	}
	promoted = NoPiece
	if len(movestr) == 5 {
		p, ok := promotionFromLetter[movestr[4]]
		if !ok {
			return 0, 0, NoPiece, parseMoveError(movestr, "promotion letter must be one of q, r, b, n")
		}
		promoted = p
	}
	return from, to, promoted, nil
}

// matchLegalMove resolves decoded (from, to, promoted) fields against the
// position's current legal moves, recovering the MoveKind and captured
// piece that the bare string does not carry.
func (pos *Position) matchLegalMove(from, to Square, promoted Piece) (Move, bool) {
	for _, m := range pos.GenerateLegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if m.Promoted() != promoted {
				continue
			}
		} else if promoted != NoPiece {
			continue
		}
		return m, true
	}
	return 0, false
}

// LoadPosition parses fen and replays moves against it in order, matching
// each against the legal moves of the position at that point. If any move
// string is malformed it fails with ErrParseMove; if a move is
// syntactically valid but not legal in the position reached so far, it
// fails with IllegalMoveError naming its index, and the returned Position
// is nil (spec.md 7: "the Position is rolled back to the state before
// replay began").
func LoadPosition(fen string, moves []string) (*Position, error) {
	pos, err := ParseFen(fen)
	if err != nil {
		return nil, err
	}
	for i, movestr := range moves {
		from, to, promoted, err := decodeLongAlgebraic(movestr)
		if err != nil {
			return nil, err
		}
		m, ok := pos.matchLegalMove(from, to, promoted)
		if !ok {
			return nil, &IllegalMoveError{Index: i, Move: NewMove(from, to, Quiet, promoted, NoPiece)}
		}
		pos.Make(m)
	}
	return pos, nil
}
