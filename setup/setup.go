// Package setup provides the standard chess starting position as an
// ordered reference table.
package setup

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sync"

	_ "embed"

	"github.com/0x5844/chessvalidator/chess"
)

//go:embed standard.tsv
var standardData []byte

const (
	columnColor     = 0
	columnPiece     = 1
	columnSquare    = 2
	expectedColumns = 3
)

// An Entry is one piece of the starting position.
type Entry struct {
	Color  chess.Color
	Type   chess.PieceType
	Square chess.Square
}

// Piece returns the colored piece of the entry.
func (e Entry) Piece() chess.Piece {
	return chess.NewPiece(e.Type, e.Color)
}

// Layout is an ordered starting position. Entries keep the order of the
// source table: King, Queen, Rooks, Bishops, Knights, then Pawns A to H,
// White before Black. Layout is safe for concurrent use.
type Layout struct {
	entries []Entry
	byColor map[chess.Color][]Entry
}

var (
	standardOnce   sync.Once
	standardLayout *Layout
	standardErr    error
)

// Standard returns the standard starting position. It panics if the
// embedded table is malformed.
func Standard() *Layout {
	standardOnce.Do(func() {
		standardLayout, standardErr = Parse(standardData)
	})
	if standardErr != nil {
		panic(fmt.Sprintf("setup: embedded standard layout: %v", standardErr))
	}
	return standardLayout
}

// Parse reads a tab separated color/piece/square table with a header row.
func Parse(data []byte) (*Layout, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read layout data: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("layout data is empty")
	}

	l := &Layout{byColor: map[chess.Color][]Entry{}}
	var seen [chess.NumOfSquaresInBoard]bool
	for i, record := range records[1:] {
		row := i + 2
		if len(record) != expectedColumns {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", row, expectedColumns, len(record))
		}
		c, ok := chess.ParseColor(record[columnColor])
		if !ok {
			return nil, fmt.Errorf("row %d: unknown color %q", row, record[columnColor])
		}
		pt, ok := chess.ParsePieceType(record[columnPiece])
		if !ok {
			return nil, fmt.Errorf("row %d: unknown piece %q", row, record[columnPiece])
		}
		sq, ok := chess.ParseSquare(record[columnSquare])
		if !ok {
			return nil, fmt.Errorf("row %d: invalid square %q", row, record[columnSquare])
		}
		if seen[sq] {
			return nil, fmt.Errorf("row %d: square %s listed twice", row, sq)
		}
		seen[sq] = true

		e := Entry{Color: c, Type: pt, Square: sq}
		l.entries = append(l.entries, e)
		l.byColor[c] = append(l.byColor[c], e)
	}
	return l, nil
}

// ForColor returns the entries of one color in table order.
func (l *Layout) ForColor(c chess.Color) []Entry {
	src := l.byColor[c]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// Board returns the layout as a board.
func (l *Layout) Board() *chess.Board {
	m := make(map[chess.Square]chess.Piece, len(l.entries))
	for _, e := range l.entries {
		m[e.Square] = e.Piece()
	}
	return chess.NewBoard(m)
}
