package validate

import (
	"github.com/0x5844/chessvalidator/chess"
)

type yamlReport struct {
	RunID   string        `yaml:"run_id"`
	Records int           `yaml:"records"`
	Missing []yamlMissing `yaml:"missing"`
	Valid   []yamlValid   `yaml:"valid"`
	Errors  []yamlError   `yaml:"errors"`
	Board   *chess.Board  `yaml:"board"`
}

type yamlMissing struct {
	Color  string `yaml:"color"`
	Piece  string `yaml:"piece"`
	Square string `yaml:"square"`
}

type yamlValid struct {
	Color   string   `yaml:"color"`
	Piece   string   `yaml:"piece"`
	Squares []string `yaml:"squares,flow"`
}

type yamlError struct {
	Kind    Kind   `yaml:"kind"`
	Message string `yaml:"message"`
}

// MarshalYAML implements yaml.Marshaler. Sections keep the same order as
// the text report; the board is the claimed board, written in FEN form
// through its text marshaller.
func (r *Report) MarshalYAML() (any, error) {
	out := yamlReport{
		RunID:   r.runID,
		Records: r.records,
		Missing: []yamlMissing{},
		Valid:   []yamlValid{},
		Errors:  []yamlError{},
		Board:   r.board,
	}
	for _, c := range chess.Colors() {
		for _, m := range r.missing[c] {
			out.Missing = append(out.Missing, yamlMissing{Color: c.String(), Piece: m.Type.String(), Square: m.Square.String()})
		}
	}
	for _, c := range chess.Colors() {
		for _, pt := range chess.PieceTypes() {
			sqs := r.valid[c][pt]
			if len(sqs) == 0 {
				continue
			}
			names := make([]string, len(sqs))
			for i, sq := range sqs {
				names[i] = sq.String()
			}
			out.Valid = append(out.Valid, yamlValid{Color: c.String(), Piece: pt.String(), Squares: names})
		}
	}
	for _, v := range r.violations {
		out.Errors = append(out.Errors, yamlError{Kind: v.Kind, Message: v.Error()})
	}
	return out, nil
}
