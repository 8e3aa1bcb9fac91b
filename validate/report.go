package validate

import (
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/0x5844/chessvalidator/chess"
)

// MissingPiece is a starting-position piece no record matched.
type MissingPiece struct {
	Type   chess.PieceType
	Square chess.Square
}

// String renders the piece as "1 King (E1)".
func (m MissingPiece) String() string {
	return "1 " + m.Type.String() + " (" + m.Square.String() + ")"
}

// Report is the finalized result of a run. It does not change after
// Finalize returns it.
type Report struct {
	runID      string
	records    int
	missing    map[chess.Color][]MissingPiece
	valid      map[chess.Color]map[chess.PieceType][]chess.Square
	violations ViolationList
	board      *chess.Board
}

// Finalize derives the missing pieces, sorts the accepted squares and
// returns the report. The Validator keeps its state and may be fed more
// records afterwards; a later Finalize reflects them.
func (v *Validator) Finalize() *Report {
	r := &Report{
		runID:      v.runID,
		records:    v.records,
		missing:    make(map[chess.Color][]MissingPiece, 2),
		valid:      make(map[chess.Color]map[chess.PieceType][]chess.Square, 2),
		violations: v.Violations(),
		board:      v.occupied.board(),
	}
	for _, c := range chess.Colors() {
		r.missing[c] = v.reference[c].missing()
		byType := make(map[chess.PieceType][]chess.Square, chess.NumOfPieces)
		for pt, sqs := range v.accepted[c] {
			sorted := slices.Clone(sqs)
			slices.SortFunc(sorted, compareSquareNames)
			byType[pt] = sorted
		}
		r.valid[c] = byType
	}
	v.opts.logger.Debug("run finalized",
		zap.String("run", r.runID),
		zap.Int("records", r.records),
		zap.Int("violations", len(r.violations)),
	)
	return r
}

// compareSquareNames orders squares by name, so file first and then rank.
func compareSquareNames(a, b chess.Square) int {
	return strings.Compare(a.String(), b.String())
}

// RunID returns the identifier of the run that produced the report.
func (r *Report) RunID() string { return r.runID }

// Records returns how many records were fed to the run.
func (r *Report) Records() int { return r.records }

// Missing returns the unmatched starting pieces of color c in setup order.
func (r *Report) Missing(c chess.Color) []MissingPiece {
	return slices.Clone(r.missing[c])
}

// Valid returns the accepted squares for color c and piece type pt, sorted by name.
func (r *Report) Valid(c chess.Color, pt chess.PieceType) []chess.Square {
	return slices.Clone(r.valid[c][pt])
}

// Violations returns the rejected records in the order they were processed.
func (r *Report) Violations() ViolationList {
	return slices.Clone(r.violations)
}

// Err returns the violations as an error, or nil when there are none.
func (r *Report) Err() error {
	if len(r.violations) == 0 {
		return nil
	}
	return r.Violations()
}

// Board returns the final claimant of every square claimed during the run.
func (r *Report) Board() *chess.Board {
	return chess.NewBoard(r.board.SquareMap())
}

// Conflicts returns the squares named by occupied and duplicate conflicts.
func (r *Report) Conflicts() chess.Bitboard {
	var bb chess.Bitboard
	for _, v := range r.violations {
		if v.Kind == OccupiedConflict || v.Kind == DuplicateReferenceConflict {
			bb = bb.Set(v.Square)
		}
	}
	return bb
}

// Lines renders the report as text lines in three sections: missing
// pieces, position validation and errors.
func (r *Report) Lines() []string {
	lines := []string{"Missing Pieces:"}
	for _, c := range chess.Colors() {
		missing := r.missing[c]
		if len(missing) == 0 {
			continue
		}
		parts := make([]string, len(missing))
		for i, m := range missing {
			parts[i] = m.String()
		}
		lines = append(lines, "- "+c.String()+": "+strings.Join(parts, ", "))
	}

	lines = append(lines, "Position Validation:", "- Valid Positions:")
	for _, c := range chess.Colors() {
		for _, pt := range chess.PieceTypes() {
			sqs := r.valid[c][pt]
			if len(sqs) == 0 {
				continue
			}
			lines = append(lines, "  - "+c.String()+" "+pieceLabel(pt)+" "+squareGroups(pt, sqs))
		}
	}

	lines = append(lines, "Errors Detected:")
	for _, v := range r.violations {
		lines = append(lines, "- "+v.Error())
	}
	return lines
}

// pieceLabel returns the name used in the valid positions section. Pawns
// are always listed in the plural.
func pieceLabel(pt chess.PieceType) string {
	if pt == chess.Pawn {
		return "Pawns"
	}
	return pt.String()
}

// squareGroups renders pawn squares as one group, "(A2, C2)", and the
// squares of other pieces as one group each, "(A1), (H1)".
func squareGroups(pt chess.PieceType, sqs []chess.Square) string {
	names := make([]string, len(sqs))
	for i, sq := range sqs {
		names[i] = sq.String()
	}
	sep := "), ("
	if pt == chess.Pawn {
		sep = ", "
	}
	return "(" + strings.Join(names, sep) + ")"
}

// String renders the report text with one trailing newline.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

// WriteTo implements io.WriterTo and writes the report text.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
