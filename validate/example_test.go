package validate_test

import (
	"context"
	"fmt"
	"os"

	"github.com/0x5844/chessvalidator/chess"
	"github.com/0x5844/chessvalidator/validate"
)

func ExampleValidator() {
	v := validate.New()
	v.Consume("White Pawn E4")
	v.Consume("Black Pawn E4")
	v.Consume("White Bishop E1")

	r := v.Finalize()
	fmt.Println(len(r.Missing(chess.White)))
	for _, err := range r.Violations() {
		fmt.Println(err)
	}
	// Output:
	// 16
	// Invalid Position: "Black Pawn E4" - Position already occupied by "White Pawn".
	// Duplicate Position: "White Bishop E1" - Conflicts with "White King E1".
}

func ExampleRun() {
	src := validate.StringSource("inline", "White King E1", "Black King E8", "White Queen D4")
	r, err := validate.Run(context.Background(), []validate.Source{src})
	if err != nil {
		fmt.Println(err)
		return
	}
	r.WriteTo(os.Stdout)
	// Output:
	// Missing Pieces:
	// - White: 1 Queen (D1), 1 Rook (A1), 1 Rook (H1), 1 Bishop (C1), 1 Bishop (F1), 1 Knight (B1), 1 Knight (G1), 1 Pawn (A2), 1 Pawn (B2), 1 Pawn (C2), 1 Pawn (D2), 1 Pawn (E2), 1 Pawn (F2), 1 Pawn (G2), 1 Pawn (H2)
	// - Black: 1 Queen (D8), 1 Rook (A8), 1 Rook (H8), 1 Bishop (C8), 1 Bishop (F8), 1 Knight (B8), 1 Knight (G8), 1 Pawn (A7), 1 Pawn (B7), 1 Pawn (C7), 1 Pawn (D7), 1 Pawn (E7), 1 Pawn (F7), 1 Pawn (G7), 1 Pawn (H7)
	// Position Validation:
	// - Valid Positions:
	//   - White King (E1)
	//   - White Queen (D4)
	//   - Black King (E8)
	// Errors Detected:
}
