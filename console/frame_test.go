package console

import (
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func TestFrame_SerpentineMapping(t *testing.T) {
	hp := &board.HostPixels{}
	f := NewFrame(hp)

	red := types.RGB{R: 0xFF}
	f.Set(1, 0, red) // even row: left to right
	f.Set(1, 1, red) // odd row: reversed
	f.Set(0, 1, red)
	if err := f.Present(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		idx  int
		want types.RGB
	}{
		{1, red},                 // (1,0)
		{8 + (MatrixW - 2), red}, // (1,1) -> 14
		{8 + (MatrixW - 1), red}, // (0,1) -> 15
		{0, types.Off},
		{9, types.Off},
	}
	for _, c := range cases {
		if hp.Shown[c.idx] != c.want {
			t.Fatalf("physical index %d = %v, want %v", c.idx, hp.Shown[c.idx], c.want)
		}
	}
}

func TestFrame_OutOfBoundsIgnored(t *testing.T) {
	hp := &board.HostPixels{}
	f := NewFrame(hp)

	f.Set(-1, 0, types.RGB{R: 1})
	f.Set(0, -1, types.RGB{R: 1})
	f.Set(MatrixW, 0, types.RGB{R: 1})
	f.Set(0, MatrixH, types.RGB{R: 1})

	for y := 0; y < MatrixH; y++ {
		for x := 0; x < MatrixW; x++ {
			if f.At(x, y) != types.Off {
				t.Fatalf("out-of-bounds write landed at (%d,%d)", x, y)
			}
		}
	}
}

func TestFrame_ClearAndPresentFlushesOnce(t *testing.T) {
	hp := &board.HostPixels{}
	f := NewFrame(hp)

	grey := types.RGB{R: 10, G: 10, B: 10}
	f.Clear(grey)
	if err := f.Present(); err != nil {
		t.Fatal(err)
	}
	if hp.Flushes != 1 {
		t.Fatalf("Flushes = %d, want 1", hp.Flushes)
	}
	for i := range hp.Shown {
		if hp.Shown[i] != grey {
			t.Fatalf("index %d not cleared", i)
		}
	}
}
