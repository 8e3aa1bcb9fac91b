package chess

// Color represents the color of a chess piece.
type Color int8

const (
	// NoColor represents no color
	NoColor Color = iota
	// White represents the color white
	White
	// Black represents the color black
	Black
)

// Colors returns both colors in report order.
func Colors() []Color {
	return []Color{White, Black}
}

// String implements the fmt.Stringer interface and returns
// the color's name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// ParseColor parses a color name. Only the exact names "White" and "Black"
// are accepted.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "White":
		return White, true
	case "Black":
		return Black, true
	}
	return NoColor, false
}

// PieceType is the type of a piece. The constants are declared in
// display order, King first.
type PieceType int8

const (
	// NoPieceType represents a lack of piece type
	NoPieceType PieceType = iota
	// King represents a king
	King
	// Queen represents a queen
	Queen
	// Rook represents a rook
	Rook
	// Bishop represents a bishop
	Bishop
	// Knight represents a knight
	Knight
	// Pawn represents a pawn
	Pawn
)

// PieceTypes returns a slice of all piece types in display order.
func PieceTypes() []PieceType {
	return []PieceType{King, Queen, Rook, Bishop, Knight, Pawn}
}

// String returns the piece type name, for example "Knight".
func (p PieceType) String() string {
	switch p {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	}
	return "No Piece Type"
}

// ParsePieceType parses a capitalized piece type name such as "Queen".
func ParsePieceType(s string) (PieceType, bool) {
	for _, t := range PieceTypes() {
		if t.String() == s {
			return t, true
		}
	}
	return NoPieceType, false
}

func (p PieceType) fenChar() byte {
	switch p {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	}
	return '?'
}

// Piece is a piece type with a color.
type Piece int8

const (
	// NoPiece represents no piece
	NoPiece Piece = iota
	// WhiteKing is a white king
	WhiteKing
	// WhiteQueen is a white queen
	WhiteQueen
	// WhiteRook is a white rook
	WhiteRook
	// WhiteBishop is a white bishop
	WhiteBishop
	// WhiteKnight is a white knight
	WhiteKnight
	// WhitePawn is a white pawn
	WhitePawn
	// BlackKing is a black king
	BlackKing
	// BlackQueen is a black queen
	BlackQueen
	// BlackRook is a black rook
	BlackRook
	// BlackBishop is a black bishop
	BlackBishop
	// BlackKnight is a black knight
	BlackKnight
	// BlackPawn is a black pawn
	BlackPawn

	numPieces = iota
)

// NewPiece returns the piece matching the PieceType and Color.
// NoPiece is returned if the PieceType or Color isn't valid.
func NewPiece(t PieceType, c Color) Piece {
	if t < King || t > Pawn {
		return NoPiece
	}
	switch c {
	case White:
		return Piece(t)
	case Black:
		return Piece(int(t) + NumOfPieces)
	}
	return NoPiece
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	switch {
	case p >= WhiteKing && p <= WhitePawn:
		return PieceType(p)
	case p >= BlackKing && p <= BlackPawn:
		return PieceType(int(p) - NumOfPieces)
	}
	return NoPieceType
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	switch {
	case p >= WhiteKing && p <= WhitePawn:
		return White
	case p >= BlackKing && p <= BlackPawn:
		return Black
	}
	return NoColor
}

// Name returns the color and type, for example "White Pawn".
func (p Piece) Name() string {
	if p == NoPiece {
		return "No Piece"
	}
	return p.Color().String() + " " + p.Type().String()
}

// String implements the fmt.Stringer interface and returns the
// piece's unicode symbol.
func (p Piece) String() string {
	if p < NoPiece || p >= numPieces {
		return pieceUnicodes[NoPiece]
	}
	return pieceUnicodes[p]
}

var pieceUnicodes = [numPieces]string{
	NoPiece:     " ",
	WhiteKing:   "♔",
	WhiteQueen:  "♕",
	WhiteRook:   "♖",
	WhiteBishop: "♗",
	WhiteKnight: "♘",
	WhitePawn:   "♙",
	BlackKing:   "♚",
	BlackQueen:  "♛",
	BlackRook:   "♜",
	BlackBishop: "♝",
	BlackKnight: "♞",
	BlackPawn:   "♟",
}

// fenChar returns the FEN letter, upper case for white.
func (p Piece) fenChar() byte {
	ch := p.Type().fenChar()
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}
