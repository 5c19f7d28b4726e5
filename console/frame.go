package console

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

// Frame is the logical matrix surface. Games and the session draw in
// (x,y) coordinates; the serpentine wiring of the LED chain is applied
// only inside Present and never leaks past this type.
type Frame struct {
	buf [MatrixCount]types.RGB
	out board.PixelStrip
}

func NewFrame(out board.PixelStrip) *Frame {
	return &Frame{out: out}
}

// Clear fills every cell.
func (f *Frame) Clear(c types.RGB) {
	for i := range f.buf {
		f.buf[i] = c
	}
}

// Set writes one cell. Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c types.RGB) {
	if x < 0 || x >= MatrixW || y < 0 || y >= MatrixH {
		return
	}
	f.buf[y*MatrixW+x] = c
}

// At reads one cell, black outside the grid.
func (f *Frame) At(x, y int) types.RGB {
	if x < 0 || x >= MatrixW || y < 0 || y >= MatrixH {
		return types.Off
	}
	return f.buf[y*MatrixW+x]
}

// physIndex maps logical coordinates to the position on the wire.
// Even rows run left to right, odd rows are reversed.
func physIndex(x, y int) int {
	if y%2 == 0 {
		return y*MatrixW + x
	}
	return y*MatrixW + (MatrixW - 1 - x)
}

// Present pushes the buffer to the strip.
func (f *Frame) Present() error {
	for y := 0; y < MatrixH; y++ {
		for x := 0; x < MatrixW; x++ {
			f.out.SetIndex(physIndex(x, y), f.buf[y*MatrixW+x])
		}
	}
	return f.out.Flush()
}
