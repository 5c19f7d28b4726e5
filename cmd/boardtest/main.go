// cmd/boardtest/main.go
//
// Peripheral smoke test. Flash it to check wiring before loading the
// console: sweeps the matrix through solid colors, prints to the text
// panel, steps the buzzer through a short scale, then echoes raw and
// debounced button state over debug serial until reset.
package main

import (
	"fmt"
	"time"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/errcode"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"
)

const (
	sweepDwell  = 400 * time.Millisecond
	toneDwell   = 150 * time.Millisecond
	buttonEvery = 250 * time.Millisecond
)

var sweepColors = []types.RGB{
	{R: 40},
	{G: 40},
	{B: 40},
	{R: 30, G: 30, B: 30},
	{},
}

var scaleHz = []uint32{262, 330, 392, 523}

func main() {
	time.Sleep(2 * time.Second)
	println("boardtest")

	b, err := board.Open()
	if err != nil {
		println("board:", err.Error())
		return
	}

	// Matrix sweep.
	for _, c := range sweepColors {
		for i := 0; i < console.MatrixCount; i++ {
			b.Pixels.SetIndex(i, c)
		}
		if err := b.Pixels.Flush(); err != nil {
			fmt.Fprintln(b.Debug, "matrix:", err)
		}
		time.Sleep(sweepDwell)
	}

	// Panel.
	if b.PanelStatus != errcode.OK {
		fmt.Fprintln(b.Debug, "panel:", string(b.PanelStatus))
	} else {
		b.Panel.Clear()
		b.Panel.Write(0, 0, "boardtest")
		b.Panel.Write(0, 16, "panel ok")
		if err := b.Panel.Flush(); err != nil {
			fmt.Fprintln(b.Debug, "panel:", err)
		}
	}

	// Buzzer scale.
	for _, hz := range scaleHz {
		b.Buzzer.Start(hz)
		time.Sleep(toneDwell)
	}
	b.Buzzer.Stop()

	// Button echo, raw level next to the debounced view.
	in := console.NewInput(b.Buttons)
	last := time.Now()
	for {
		in.Sample(timex.NowMs())
		if time.Since(last) >= buttonEvery {
			last = time.Now()
			for id := types.ButtonID(0); id < types.ButtonCount; id++ {
				if b.Buttons.Read(id) || in.Held(id) {
					fmt.Fprintf(b.Debug, "%s raw=%v held=%v\n", id, b.Buttons.Read(id), in.Held(id))
				}
			}
		}
		time.Sleep(time.Millisecond)
	}
}
