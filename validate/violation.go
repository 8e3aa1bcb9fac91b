package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0x5844/chessvalidator/chess"
)

// Kind classifies a rejected record.
type Kind string

const (
	// MalformedRecord indicates a record that does not split into exactly three tokens.
	MalformedRecord Kind = "malformed-record"
	// OutOfBoundsPosition indicates a position outside A1 to H8.
	OutOfBoundsPosition Kind = "out-of-bounds-position"
	// UnknownPiece indicates a color or piece name that is not recognized.
	UnknownPiece Kind = "unknown-piece"
	// OccupiedConflict indicates a square already claimed by an earlier record.
	OccupiedConflict Kind = "occupied-conflict"
	// DuplicateReferenceConflict indicates the wrong piece on a starting square.
	DuplicateReferenceConflict Kind = "duplicate-reference-conflict"
)

// Violation describes one rejected record. Error renders the message used
// in the report's error section.
//
//nolint:errname // reported as a classification, not a failure
type Violation struct {
	Kind Kind
	// Line is the raw input line, set for MalformedRecord.
	Line string
	// Record is the raw triple, set for every other kind.
	Record Record
	// Square is the parsed position; NoSquare when it could not be parsed.
	Square chess.Square
	// Claimant is the piece holding the square, set for OccupiedConflict.
	Claimant chess.Piece
	// Expected is the starting-position piece, set for DuplicateReferenceConflict.
	Expected chess.PieceType
}

// Error formats the violation as a report line without the leading dash.
func (v Violation) Error() string {
	switch v.Kind {
	case MalformedRecord:
		return "Invalid input format: " + v.Line
	case OutOfBoundsPosition:
		return fmt.Sprintf("Invalid Position: \"%s\" - Position must be within A1 to H8.", v.Record)
	case UnknownPiece:
		return fmt.Sprintf("Invalid Piece: \"%s\" - Expected White or Black and one of %s.", v.Record, pieceNames())
	case OccupiedConflict:
		return fmt.Sprintf("Invalid Position: \"%s\" - Position already occupied by \"%s\".", v.Record, v.Claimant.Name())
	case DuplicateReferenceConflict:
		conflict := Record{Color: v.Record.Color, Piece: v.Expected.String(), Position: v.Record.Position}
		return fmt.Sprintf("Duplicate Position: \"%s\" - Conflicts with \"%s\".", v.Record, conflict)
	}
	return fmt.Sprintf("[%s] %s", v.Kind, v.Record)
}

func pieceNames() string {
	names := make([]string, 0, chess.NumOfPieces)
	for _, pt := range chess.PieceTypes() {
		names = append(names, pt.String())
	}
	return strings.Join(names, ", ")
}

// ViolationList is an error that wraps one or more violations.
type ViolationList []Violation //nolint:errname // list of classifications

// Error returns a compact summary of the violations.
func (l ViolationList) Error() string {
	switch len(l) {
	case 0:
		return "no violations"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Count returns how many violations of kind k the list holds.
func (l ViolationList) Count(k Kind) int {
	n := 0
	for _, v := range l {
		if v.Kind == k {
			n++
		}
	}
	return n
}

// AsViolations extracts violations from an error produced by this package.
func AsViolations(err error) ([]Violation, bool) {
	if err == nil {
		return nil, false
	}
	var list ViolationList
	if errors.As(err, &list) {
		return []Violation(list), true
	}
	var v Violation
	if errors.As(err, &v) {
		return []Violation{v}, true
	}
	return nil, false
}
