package validate

import (
	"strings"

	"github.com/0x5844/chessvalidator/chess"
)

// recordFields is the number of whitespace separated tokens in a record.
const recordFields = 3

// Record is a raw "Color Piece Position" triple as read from the input.
// Its fields are not checked until the record is validated.
type Record struct {
	Color    string
	Piece    string
	Position string
}

// String joins the triple with single spaces.
func (r Record) String() string {
	return r.Color + " " + r.Piece + " " + r.Position
}

// ParseRecord splits line on whitespace into a Record. A line that does not
// hold exactly three tokens yields a MalformedRecord Violation.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != recordFields {
		return Record{}, Violation{Kind: MalformedRecord, Line: line, Square: chess.NoSquare}
	}
	return Record{Color: fields[0], Piece: fields[1], Position: fields[2]}, nil
}

// Placement is a record whose color, piece and square have been recognized.
type Placement struct {
	Color  chess.Color
	Type   chess.PieceType
	Square chess.Square
}

// Piece returns the colored piece of the placement.
func (p Placement) Piece() chess.Piece {
	return chess.NewPiece(p.Type, p.Color)
}

// String renders the placement in record form, for example "White King E1".
func (p Placement) String() string {
	return p.Color.String() + " " + p.Type.String() + " " + p.Square.String()
}

// parsePlacement recognizes the fields of r. The returned kind is empty on
// success and names the violation otherwise; the position is checked first.
func parsePlacement(r Record) (Placement, Kind) {
	sq, ok := chess.ParseSquare(r.Position)
	if !ok {
		return Placement{Square: chess.NoSquare}, OutOfBoundsPosition
	}
	c, okColor := chess.ParseColor(r.Color)
	pt, okPiece := chess.ParsePieceType(r.Piece)
	if !okColor || !okPiece {
		return Placement{Square: sq}, UnknownPiece
	}
	return Placement{Color: c, Type: pt, Square: sq}, ""
}
