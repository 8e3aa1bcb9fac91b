// Package image renders boards as SVG diagrams.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/chessvalidator/chess"
)

const (
	sqSize     = 45
	margin     = 20
	boardWidth = 8*sqSize + 2*margin
)

// SVG writes the board as an SVG image to w. Options mark squares or
// change the square colors.
func SVG(w io.Writer, b *chess.Board, opts ...func(*encoder)) error {
	e := newEncoder(w, opts)
	return e.encode(b)
}

// SquareColors sets the light and dark square colors.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares fills the given squares with c instead of their board color.
func MarkSquares(c color.Color, sqs chess.Bitboard) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs.Scan() {
			e.marks[sq] = c
		}
	}
}

// Title sets the image title.
func Title(s string) func(*encoder) {
	return func(e *encoder) { e.title = s }
}

type encoder struct {
	w     *errWriter
	light color.Color
	dark  color.Color
	marks map[chess.Square]color.Color
	title string
}

func newEncoder(w io.Writer, opts []func(*encoder)) *encoder {
	e := &encoder{
		w:     &errWriter{w: w},
		light: color.RGBA{R: 235, G: 209, B: 166, A: 255},
		dark:  color.RGBA{R: 165, G: 117, B: 81, A: 255},
		marks: map[chess.Square]color.Color{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *encoder) encode(b *chess.Board) error {
	canvas := svg.New(e.w)
	canvas.Start(boardWidth, boardWidth)
	if e.title != "" {
		canvas.Title(e.title)
	}
	for r := chess.Rank8; r >= chess.Rank1; r-- {
		y := margin + int(chess.Rank8-r)*sqSize
		for f := chess.FileA; f <= chess.FileH; f++ {
			x := margin + int(f)*sqSize
			sq := chess.NewSquare(f, r)
			canvas.Rect(x, y, sqSize, sqSize, "fill:"+hex(e.fill(sq)))
			if p := b.Piece(sq); p != chess.NoPiece {
				canvas.Text(x+sqSize/2, y+sqSize*3/4, p.String(),
					"text-anchor:middle;font-size:36px;font-family:serif")
			}
		}
		canvas.Text(margin/2, y+sqSize/2+5, r.String(), "text-anchor:middle;font-size:12px")
	}
	for f := chess.FileA; f <= chess.FileH; f++ {
		x := margin + int(f)*sqSize + sqSize/2
		canvas.Text(x, boardWidth-margin/2+4, f.String(), "text-anchor:middle;font-size:12px")
	}
	canvas.End()
	return e.w.err
}

func (e *encoder) fill(sq chess.Square) color.Color {
	if c, ok := e.marks[sq]; ok {
		return c
	}
	if chess.SquareColor(sq) == chess.White {
		return e.light
	}
	return e.dark
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
