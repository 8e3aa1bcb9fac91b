package validate

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/0x5844/chessvalidator/chess"
	"github.com/0x5844/chessvalidator/setup"
)

func standardEntries() []setup.Entry {
	layout := setup.Standard()
	return append(layout.ForColor(chess.White), layout.ForColor(chess.Black)...)
}

func standardLines() []string {
	entries := standardEntries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Color.String() + " " + e.Type.String() + " " + e.Square.String()
	}
	return lines
}

func consumeAll(v *Validator, lines ...string) []Outcome {
	out := make([]Outcome, len(lines))
	for i, l := range lines {
		out[i] = v.Consume(l)
	}
	return out
}

func TestStandardSetupIsComplete(t *testing.T) {
	v := New()
	for i, o := range consumeAll(v, standardLines()...) {
		require.Equalf(t, Matched, o, "line %d", i)
	}
	r := v.Finalize()

	assert.Empty(t, r.Missing(chess.White))
	assert.Empty(t, r.Missing(chess.Black))
	assert.Empty(t, r.Violations())
	assert.NoError(t, r.Err())
	for _, e := range standardEntries() {
		assert.Containsf(t, r.Valid(e.Color, e.Type), e.Square, "%s %s", e.Color, e.Type)
	}
	assert.Equal(t, setup.Standard().Board().String(), r.Board().String())
	assert.Equal(t, 32, r.Records())
}

func TestOutOfBoundsLeavesStateAlone(t *testing.T) {
	v := New()
	require.Equal(t, Rejected, v.Consume("White King J9"))

	r := v.Finalize()
	require.Len(t, r.Violations(), 1)
	got := r.Violations()[0]
	assert.Equal(t, OutOfBoundsPosition, got.Kind)
	assert.Equal(t, `Invalid Position: "White King J9" - Position must be within A1 to H8.`, got.Error())
	assert.Len(t, r.Missing(chess.White), 16)
	assert.True(t, r.Board().Occupancy().IsEmpty())
	assert.Empty(t, r.Valid(chess.White, chess.King))
}

func TestLowerCaseSquareIsOutOfBounds(t *testing.T) {
	v := New()
	v.Consume("White King e1")
	r := v.Finalize()
	require.Len(t, r.Violations(), 1)
	assert.Equal(t, OutOfBoundsPosition, r.Violations()[0].Kind)
}

func TestOccupiedConflictNamesClaimant(t *testing.T) {
	v := New()
	assert.Equal(t, []Outcome{Placed, Rejected}, consumeAll(v, "White Pawn E4", "Black Pawn E4"))

	errs := v.Violations()
	require.Len(t, errs, 1)
	assert.Equal(t, OccupiedConflict, errs[0].Kind)
	assert.Equal(t, chess.WhitePawn, errs[0].Claimant)
	assert.Equal(t, `Invalid Position: "Black Pawn E4" - Position already occupied by "White Pawn".`, errs[0].Error())
	assert.Equal(t, []chess.Square{chess.E4}, v.Finalize().Valid(chess.White, chess.Pawn))
	assert.Empty(t, v.Finalize().Valid(chess.Black, chess.Pawn))
}

func TestDuplicateReferenceConflict(t *testing.T) {
	v := New()
	require.Equal(t, Rejected, v.Consume("White Bishop E1"))

	r := v.Finalize()
	require.Len(t, r.Violations(), 1)
	got := r.Violations()[0]
	assert.Equal(t, DuplicateReferenceConflict, got.Kind)
	assert.Equal(t, chess.King, got.Expected)
	assert.Equal(t, `Duplicate Position: "White Bishop E1" - Conflicts with "White King E1".`, got.Error())
	assert.Contains(t, r.Missing(chess.White), MissingPiece{Type: chess.King, Square: chess.E1})
	assert.Equal(t, chess.SquareBB(chess.E1), r.Conflicts())
}

func TestExactMatchWinsOverOccupancy(t *testing.T) {
	v := New()
	assert.Equal(t, []Outcome{Rejected, Matched}, consumeAll(v, "White Bishop E1", "White King E1"))

	r := v.Finalize()
	assert.NotContains(t, r.Missing(chess.White), MissingPiece{Type: chess.King, Square: chess.E1})
	assert.Equal(t, []chess.Square{chess.E1}, r.Valid(chess.White, chess.King))
	assert.Equal(t, chess.WhiteKing, r.Board().Piece(chess.E1))
}

func TestRepeatedExactMatchIsOccupied(t *testing.T) {
	v := New()
	assert.Equal(t, []Outcome{Matched, Rejected}, consumeAll(v, "Black Queen D8", "Black Queen D8"))
	errs := v.Violations()
	require.Len(t, errs, 1)
	assert.Equal(t, `Invalid Position: "Black Queen D8" - Position already occupied by "Black Queen".`, errs[0].Error())
}

func TestOtherColorsStartingSquare(t *testing.T) {
	// E8 is not a white starting square, so a white piece there is placed,
	// and an exact black match on it still wins.
	v := New()
	assert.Equal(t, []Outcome{Placed, Rejected, Matched}, consumeAll(v, "White Queen E8", "Black Queen E8", "Black King E8"))
	errs := v.Violations()
	require.Len(t, errs, 1)
	assert.Equal(t, OccupiedConflict, errs[0].Kind)
	assert.Equal(t, chess.WhiteQueen, errs[0].Claimant)
	r := v.Finalize()
	assert.NotContains(t, r.Missing(chess.Black), MissingPiece{Type: chess.King, Square: chess.E8})
	assert.Equal(t, []chess.Square{chess.E8}, r.Valid(chess.White, chess.Queen))
	assert.Equal(t, []chess.Square{chess.E8}, r.Valid(chess.Black, chess.King))
}

func TestConflictOverwritesClaimant(t *testing.T) {
	lines := []string{"White Pawn E4", "Black Pawn E4", "Black Knight E4"}

	v := New()
	consumeAll(v, lines...)
	errs := v.Violations()
	require.Len(t, errs, 2)
	assert.Equal(t, chess.BlackPawn, errs[1].Claimant)
	assert.Equal(t, chess.BlackKnight, v.Finalize().Board().Piece(chess.E4))

	v = New(KeepFirstClaimant(true))
	consumeAll(v, lines...)
	errs = v.Violations()
	require.Len(t, errs, 2)
	assert.Equal(t, chess.WhitePawn, errs[1].Claimant)
	assert.Equal(t, chess.WhitePawn, v.Finalize().Board().Piece(chess.E4))
}

func TestUnknownNames(t *testing.T) {
	v := New()
	assert.Equal(t, []Outcome{Rejected, Rejected}, consumeAll(v, "Green King E1", "White Wizard E4"))

	r := v.Finalize()
	require.Len(t, r.Violations(), 2)
	assert.Equal(t, 2, r.Violations().Count(UnknownPiece))
	assert.Equal(t,
		`Invalid Piece: "White Wizard E4" - Expected White or Black and one of King, Queen, Rook, Bishop, Knight, Pawn.`,
		r.Violations()[1].Error())
	assert.True(t, r.Board().Occupancy().IsEmpty())
}

func TestMalformedRecord(t *testing.T) {
	v := New()
	require.Equal(t, Rejected, v.Consume("White King"))

	r := v.Finalize()
	require.Len(t, r.Violations(), 1)
	assert.Equal(t, MalformedRecord, r.Violations()[0].Kind)
	assert.Equal(t, "Invalid input format: White King", r.Violations()[0].Error())
	assert.Len(t, r.Missing(chess.White), 16)
	assert.Equal(t, 1, r.Records())
}

func TestReferenceAndValidAreDisjoint(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	colors := []string{"White", "Black"}
	v := New()
	for i := 0; i < 500; i++ {
		sq := chess.Square(rng.IntN(chess.NumOfSquaresInBoard))
		v.Validate(Record{
			Color:    colors[rng.IntN(2)],
			Piece:    names[rng.IntN(len(names))],
			Position: sq.String(),
		})
	}
	r := v.Finalize()
	for _, c := range chess.Colors() {
		var valid chess.Bitboard
		for _, pt := range chess.PieceTypes() {
			for _, sq := range r.Valid(c, pt) {
				valid = valid.Set(sq)
			}
		}
		for _, m := range r.Missing(c) {
			assert.Falsef(t, valid.Occupied(m.Square), "%s %s is both missing and valid", c, m.Square)
		}
	}
}

func TestOrderIndependence(t *testing.T) {
	lines := append(standardLines()[4:], "White Knight E4", "Black Pawn D5", "White Queen A5")
	sections := func(r *Report) []string {
		ls := r.Lines()
		for i, l := range ls {
			if l == "Errors Detected:" {
				return ls[:i]
			}
		}
		return ls
	}

	v := New()
	consumeAll(v, lines...)
	want := sections(v.Finalize())

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), lines...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		v := New()
		consumeAll(v, shuffled...)
		if diff := cmp.Diff(want, sections(v.Finalize())); diff != "" {
			t.Fatalf("shuffle %d changed the report (-want +got):\n%s", i, diff)
		}
	}
}

func TestRejectionsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	v := New(WithLogger(zap.New(core)), WithRunID("run-1"))
	consumeAll(v, "White King J9", "White King E1")
	v.Finalize()

	rejected := logs.FilterMessage("record rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, "run-1", fields["run"])
	assert.Equal(t, string(OutOfBoundsPosition), fields["kind"])
	assert.Equal(t, 1, logs.FilterMessage("run finalized").Len())
}

func TestRunIDDefaultsToUUID(t *testing.T) {
	a, b := New(), New()
	assert.Len(t, a.RunID(), 36)
	assert.NotEqual(t, a.RunID(), b.RunID())
	assert.Equal(t, "fixed", New(WithRunID("fixed")).Finalize().RunID())
}
