package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0x5844/chessvalidator/chess"
	"github.com/0x5844/chessvalidator/setup"
)

func newSetupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Print the reference starting position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := setup.Standard().Board()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, b.String())
			fmt.Fprint(out, b.Draw())
			for _, c := range chess.Colors() {
				fmt.Fprintf(out, "%s: %d pieces (%s)\n", c, b.ColorOccupancy(c).PopCount(), pieceCounts(b, c))
			}
			return nil
		},
	}
}

// pieceCounts lists how many pieces of each kind color c has on b,
// for example "1 King, 1 Queen, 2 Rook".
func pieceCounts(b *chess.Board, c chess.Color) string {
	parts := make([]string, 0, chess.NumOfPieces)
	for _, pt := range chess.PieceTypes() {
		if n := b.Pieces(chess.NewPiece(pt, c)).PopCount(); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, pt))
		}
	}
	return strings.Join(parts, ", ")
}
