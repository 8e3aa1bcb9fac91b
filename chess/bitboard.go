package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square with A1 as the least
// significant bit.
type Bitboard uint64

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfFiles          = 8  // Number of files (columns).
	NumOfPieces         = 6  // Number of piece types (K, Q, R, B, N, P).
)

const (
	EmptyBB Bitboard = 0

	// A1 is dark (0), B1 is light (1)... H8 is dark (0)
	LightSquaresBB Bitboard = 0x55AA55AA55AA55AA
)

// SquareColor returns the color of the square (White for light, Black for dark).
func SquareColor(sq Square) Color {
	if !sq.Valid() {
		return NoColor
	}
	if LightSquaresBB.Occupied(sq) {
		return White
	}
	return Black
}

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	if !sq.Valid() {
		return EmptyBB
	}
	return 1 << uint(sq)
}

// Set sets the bit corresponding to the square.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Occupied checks if the square's bit is set.
func (b Bitboard) Occupied(sq Square) bool {
	return (b & SquareBB(sq)) != 0
}

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// PopLSB finds and removes the least significant bit.
// Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	if b == 0 {
		return NoSquare, b, false
	}
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1), true
}

// Scan returns the squares of all set bits, ordered A1 to H8.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for tmp := b; tmp != 0; {
		sq, next, _ := tmp.PopLSB()
		squares = append(squares, sq)
		tmp = next
	}
	return squares
}

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(NumOfSquaresInBoard)
	for i := NumOfSquaresInBoard - 1; i >= 0; i-- {
		if (uint64(b)>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
