package validate

import (
	"github.com/0x5844/chessvalidator/chess"
	"github.com/0x5844/chessvalidator/setup"
)

// referenceBoard is one color's working copy of the starting position.
// Matched squares are cleared from remaining; whatever is left is missing.
type referenceBoard struct {
	order     []chess.Square
	expected  [chess.NumOfSquaresInBoard]chess.PieceType
	remaining chess.Bitboard
}

func newReferenceBoard(entries []setup.Entry) referenceBoard {
	rb := referenceBoard{order: make([]chess.Square, 0, len(entries))}
	for _, e := range entries {
		rb.order = append(rb.order, e.Square)
		rb.expected[e.Square] = e.Type
		rb.remaining = rb.remaining.Set(e.Square)
	}
	return rb
}

// lookup returns the unmatched piece type expected on sq.
func (rb *referenceBoard) lookup(sq chess.Square) (chess.PieceType, bool) {
	if !rb.remaining.Occupied(sq) {
		return chess.NoPieceType, false
	}
	return rb.expected[sq], true
}

func (rb *referenceBoard) match(sq chess.Square) {
	rb.remaining = rb.remaining.Clear(sq)
}

// missing lists the unmatched entries in setup order.
func (rb *referenceBoard) missing() []MissingPiece {
	out := make([]MissingPiece, 0, rb.remaining.PopCount())
	for _, sq := range rb.order {
		if rb.remaining.Occupied(sq) {
			out = append(out, MissingPiece{Type: rb.expected[sq], Square: sq})
		}
	}
	return out
}

// occupancy records which piece last claimed each square during a run.
type occupancy struct {
	claimed   chess.Bitboard
	claimants [chess.NumOfSquaresInBoard]chess.Piece
}

func (o *occupancy) claimant(sq chess.Square) (chess.Piece, bool) {
	if !o.claimed.Occupied(sq) {
		return chess.NoPiece, false
	}
	return o.claimants[sq], true
}

// claim registers p on sq. An existing claimant is replaced unless
// keepFirst is set.
func (o *occupancy) claim(sq chess.Square, p chess.Piece, keepFirst bool) {
	if keepFirst && o.claimed.Occupied(sq) {
		return
	}
	o.claimed = o.claimed.Set(sq)
	o.claimants[sq] = p
}

func (o *occupancy) board() *chess.Board {
	m := make(map[chess.Square]chess.Piece, o.claimed.PopCount())
	for _, sq := range o.claimed.Scan() {
		m[sq] = o.claimants[sq]
	}
	return chess.NewBoard(m)
}
