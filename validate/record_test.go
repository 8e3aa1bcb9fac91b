package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x5844/chessvalidator/chess"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
		bad  bool
	}{
		{name: "plain", line: "White King E1", want: Record{"White", "King", "E1"}},
		{name: "extra spaces", line: "  Black\tPawn   A7 ", want: Record{"Black", "Pawn", "A7"}},
		{name: "unchecked names", line: "Green Wizard Z9", want: Record{"Green", "Wizard", "Z9"}},
		{name: "two tokens", line: "White King", bad: true},
		{name: "four tokens", line: "White King E1 now", bad: true},
		{name: "empty", line: "", bad: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.line)
			if !tt.bad {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var v Violation
			require.True(t, errors.As(err, &v))
			assert.Equal(t, MalformedRecord, v.Kind)
			assert.Equal(t, tt.line, v.Line)
			assert.Equal(t, Record{}, got)
		})
	}
}

func TestParsePlacement(t *testing.T) {
	p, kind := parsePlacement(Record{"Black", "Knight", "G8"})
	assert.Empty(t, kind)
	assert.Equal(t, Placement{Color: chess.Black, Type: chess.Knight, Square: chess.G8}, p)
	assert.Equal(t, chess.BlackKnight, p.Piece())
	assert.Equal(t, "Black Knight G8", p.String())

	// the position is checked before the names
	_, kind = parsePlacement(Record{"Green", "Wizard", "J9"})
	assert.Equal(t, OutOfBoundsPosition, kind)
	_, kind = parsePlacement(Record{"Green", "King", "E1"})
	assert.Equal(t, UnknownPiece, kind)
}

func TestAsViolations(t *testing.T) {
	_, ok := AsViolations(nil)
	assert.False(t, ok)
	_, ok = AsViolations(errors.New("plain"))
	assert.False(t, ok)

	_, err := ParseRecord("x")
	list, ok := AsViolations(err)
	require.True(t, ok)
	assert.Len(t, list, 1)

	var empty ViolationList
	assert.Equal(t, "no violations", empty.Error())
}
