// Package chess provides the board vocabulary shared by the validator:
// squares, colors, piece types, bitboards and a bitboard-backed Board that
// renders as FEN or as a text diagram.
package chess
