package chess

import (
	"strconv"
	"strings"
)

// A Board represents a chess board and its relationship between squares and pieces using bitboards.
type Board struct {
	// one bitboard per piece, indexed by Piece; index 0 (NoPiece) is unused
	bbs [numPieces]Bitboard

	// Convenience Bitboards
	whiteSqs Bitboard // Combined white pieces
	blackSqs Bitboard // Combined black pieces
}

// NewBoard returns a board initialized from a square-to-piece mapping.
// Invalid squares and NoPiece entries are skipped.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		if !sq.Valid() || p <= NoPiece || p >= numPieces {
			continue
		}
		b.bbs[p] |= SquareBB(sq)
	}
	b.calcConvienceBBs()
	return b
}

// SquareMap returns a mapping of squares to pieces derived from the bitboard representation.
// Only occupied squares are included in the map.
func (b *Board) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for _, sq := range b.Occupancy().Scan() {
		m[sq] = b.Piece(sq)
	}
	return m
}

// Piece returns the piece located on the given square.
// Returns NoPiece if the square is empty or invalid.
func (b *Board) Piece(sq Square) Piece {
	sqBB := SquareBB(sq)
	if sqBB&b.Occupancy() == EmptyBB {
		return NoPiece
	}
	for p := WhiteKing; p < numPieces; p++ {
		if b.bbs[p]&sqBB != 0 {
			return p
		}
	}
	return NoPiece
}

// Pieces returns the bitboard of squares holding the given piece.
func (b *Board) Pieces(p Piece) Bitboard {
	if p <= NoPiece || p >= numPieces {
		return EmptyBB
	}
	return b.bbs[p]
}

// Occupancy returns the bitboard of all occupied squares.
func (b *Board) Occupancy() Bitboard {
	return b.whiteSqs | b.blackSqs
}

// ColorOccupancy returns the bitboard of squares held by pieces of color c.
func (b *Board) ColorOccupancy(c Color) Bitboard {
	switch c {
	case White:
		return b.whiteSqs
	case Black:
		return b.blackSqs
	}
	return EmptyBB
}

// calcConvienceBBs updates the combined white and black square bitboards.
func (b *Board) calcConvienceBBs() {
	b.whiteSqs, b.blackSqs = EmptyBB, EmptyBB
	for p := WhiteKing; p <= WhitePawn; p++ {
		b.whiteSqs |= b.bbs[p]
	}
	for p := BlackKing; p <= BlackPawn; p++ {
		b.blackSqs |= b.bbs[p]
	}
}

// Draw returns visual representation of the board useful for debugging.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  A B C D E F G H\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String() + " ")
		for f := FileA; f <= FileH; f++ {
			sq := NewSquare(f, r)
			p := b.Piece(sq)
			switch {
			case p != NoPiece:
				sb.WriteString(p.String() + " ")
			case SquareColor(sq) == White:
				sb.WriteString(". ")
			default:
				sb.WriteString("+ ")
			}
		}
		sb.WriteString(r.String() + "\n")
	}
	sb.WriteString("  A B C D E F G H\n")
	return sb.String()
}

// String implements the fmt.Stringer interface and returns
// a string in the FEN board format: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
func (b *Board) String() string {
	var fen strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		emptyCount := 0
		for f := FileA; f <= FileH; f++ {
			p := b.Piece(NewSquare(f, r))
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				fen.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			fen.WriteByte(p.fenChar())
		}
		if emptyCount > 0 {
			fen.WriteString(strconv.Itoa(emptyCount))
		}
		if r != Rank1 {
			fen.WriteByte('/')
		}
	}
	return fen.String()
}

// MarshalText implements the encoding.TextMarshaler interface. Returns FEN board string.
func (b *Board) MarshalText() (text []byte, err error) {
	return []byte(b.String()), nil
}
