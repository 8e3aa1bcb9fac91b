// Package validate checks chess piece placements against the standard
// starting position.
//
// A Validator folds records one at a time into its board state and
// classifies each as a starting-square match, an accepted placement
// elsewhere, or a Violation. Finalize derives the missing pieces and
// returns a Report.
package validate

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0x5844/chessvalidator/chess"
	"github.com/0x5844/chessvalidator/setup"
)

// Outcome is the classification of one record.
type Outcome int

const (
	// Rejected means the record produced a Violation.
	Rejected Outcome = iota
	// Matched means the piece stands on one of its starting squares.
	Matched
	// Placed means the piece was accepted on a square no one else holds.
	Placed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Placed:
		return "placed"
	}
	return "rejected"
}

// Validator holds the state of one validation run. The order in which
// records are fed matters for conflicts, so a Validator must not be used
// from several goroutines at once.
type Validator struct {
	opts      options
	runID     string
	reference map[chess.Color]*referenceBoard
	occupied  occupancy
	accepted  map[chess.Color]map[chess.PieceType][]chess.Square
	errs      ViolationList
	records   int
}

// New returns a Validator seeded with the standard starting position.
func New(opts ...Option) *Validator {
	o := resolveOptions(opts)
	runID := o.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	v := &Validator{
		opts:      o,
		runID:     runID,
		reference: make(map[chess.Color]*referenceBoard, 2),
		accepted:  make(map[chess.Color]map[chess.PieceType][]chess.Square, 2),
	}
	layout := setup.Standard()
	for _, c := range chess.Colors() {
		rb := newReferenceBoard(layout.ForColor(c))
		v.reference[c] = &rb
		v.accepted[c] = map[chess.PieceType][]chess.Square{}
	}
	return v
}

// RunID returns the identifier of this run.
func (v *Validator) RunID() string { return v.runID }

// Consume parses line and validates the resulting record.
func (v *Validator) Consume(line string) Outcome {
	r, err := ParseRecord(line)
	if err != nil {
		v.reject(err.(Violation))
		return Rejected
	}
	return v.Validate(r)
}

// Validate classifies one record and updates the board state.
//
// A position outside the board, or an unknown color or piece, is rejected
// without touching any state. Otherwise, in order: the expected piece on
// its starting square is matched; a square claimed earlier is an
// OccupiedConflict; a wrong piece on an unclaimed starting square is a
// DuplicateReferenceConflict; anything else is placed. In every one of
// these cases the square is then claimed by the record.
func (v *Validator) Validate(r Record) Outcome {
	v.records++
	p, kind := parsePlacement(r)
	if kind != "" {
		v.reject(Violation{Kind: kind, Record: r, Square: p.Square})
		return Rejected
	}

	ref := v.reference[p.Color]
	expected, isReference := ref.lookup(p.Square)
	claimant, isClaimed := v.occupied.claimant(p.Square)

	outcome := Rejected
	switch {
	case isReference && expected == p.Type:
		v.accept(p)
		ref.match(p.Square)
		outcome = Matched
	case isClaimed:
		v.reject(Violation{Kind: OccupiedConflict, Record: r, Square: p.Square, Claimant: claimant})
	case isReference:
		v.reject(Violation{Kind: DuplicateReferenceConflict, Record: r, Square: p.Square, Expected: expected})
	default:
		v.accept(p)
		outcome = Placed
	}

	v.occupied.claim(p.Square, p.Piece(), v.opts.keepFirstClaimant)
	return outcome
}

// Violations returns the violations recorded so far, in record order.
func (v *Validator) Violations() ViolationList {
	out := make(ViolationList, len(v.errs))
	copy(out, v.errs)
	return out
}

func (v *Validator) accept(p Placement) {
	v.accepted[p.Color][p.Type] = append(v.accepted[p.Color][p.Type], p.Square)
}

func (v *Validator) reject(violation Violation) {
	if violation.Kind == MalformedRecord {
		v.records++
	}
	v.errs = append(v.errs, violation)
	v.opts.logger.Debug("record rejected",
		zap.String("run", v.runID),
		zap.String("kind", string(violation.Kind)),
		zap.String("error", violation.Error()),
	)
}
