package chess

// A Square is one of the 64 squares on a chess board.
// Squares are indexed rank-major starting at A1 (A1=0, H1=7, A8=56, H8=63).
type Square int8

// NoSquare represents an absent or illegal square.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// A File is the column of a square.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the upper-case file letter.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "?"
	}
	return string(rune('A' + f))
}

// A Rank is the row of a square.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the rank digit, "1" through "8".
func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "?"
	}
	return string(rune('1' + r))
}

// NewSquare returns the square at the given file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*NumOfFiles + int(f))
}

// File returns the square's file.
func (sq Square) File() File {
	return File(int(sq) % NumOfFiles)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(int(sq) / NumOfFiles)
}

// Valid reports whether sq is one of the 64 board squares.
func (sq Square) Valid() bool {
	return sq >= A1 && sq <= H8
}

// String returns the square name in upper case, for example "E1".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// ParseSquare parses an upper-case two character square name such as "E1".
// Lower-case names and anything outside A1 to H8 are rejected.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'A' || f > 'H' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return NewSquare(File(f-'A'), Rank(r-'1')), true
}
