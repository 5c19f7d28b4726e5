//go:build !rp2040 && !rp2350

package board

import (
	"os"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/errcode"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

// Host fakes. Tests and the terminal simulator drive the console through
// these; they record enough to assert on and to draw from.

const matrixCount = 64

// Open returns a board wired to fresh host fakes.
func Open() (*Board, error) {
	return &Board{
		Pixels:      &HostPixels{},
		Panel:       &HostPanel{},
		Buzzer:      &HostBuzzer{},
		Buttons:     &HostButtons{},
		Debug:       os.Stdout,
		PanelStatus: errcode.OK,
	}, nil
}

// HostPixels records the last flushed physical LED chain.
type HostPixels struct {
	Staged  [matrixCount]types.RGB
	Shown   [matrixCount]types.RGB
	Flushes int
}

func (p *HostPixels) SetIndex(i int, c types.RGB) {
	if i < 0 || i >= matrixCount {
		return
	}
	p.Staged[i] = c
}

func (p *HostPixels) Flush() error {
	p.Shown = p.Staged
	p.Flushes++
	return nil
}

// TextWrite is one recorded TextPanel.Write call.
type TextWrite struct {
	X, Y int
	S    string
}

// HostPanel records writes; Visible holds what the last Flush showed.
type HostPanel struct {
	staged  []TextWrite
	Visible []TextWrite
	Clears  int
	Flushes int
}

func (p *HostPanel) Clear() {
	p.staged = p.staged[:0]
	p.Clears++
}

func (p *HostPanel) Write(x, y int, s string) {
	p.staged = append(p.staged, TextWrite{X: x, Y: y, S: s})
}

func (p *HostPanel) Flush() error {
	p.Visible = append(p.Visible[:0], p.staged...)
	p.Flushes++
	return nil
}

// HostBuzzer records the current tone.
type HostBuzzer struct {
	Freq   uint32
	On     bool
	Starts int
	Stops  int
}

func (z *HostBuzzer) Start(freqHz uint32) {
	z.Freq = freqHz
	z.On = true
	z.Starts++
}

func (z *HostBuzzer) Stop() {
	z.On = false
	z.Stops++
}

// HostButtons is a settable raw line level per button.
type HostButtons struct {
	Level [types.ButtonCount]bool
}

func (b *HostButtons) Read(id types.ButtonID) bool {
	if id >= types.ButtonCount {
		return false
	}
	return b.Level[id]
}

// Press and Release set the raw level; test helpers.
func (b *HostButtons) Press(id types.ButtonID)   { b.Level[id] = true }
func (b *HostButtons) Release(id types.ButtonID) { b.Level[id] = false }
