// Package console is the host core: the cooperative, single-threaded
// runtime that multiplexes the board's peripherals across game modules.
// Everything is driven from Tick; nothing in here blocks, sleeps or
// spawns goroutines.
package console

import (
	"math/rand"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
)

// Console wires the input layer, session, audio and render scheduling
// together. Construct one per boot and call Tick forever.
type Console struct {
	In      *Input
	Snd     *Tones
	Frame   *Frame
	Session *Session

	sched *Scheduler
}

// New assembles a console on top of b using the globally registered
// game modules.
func New(b *board.Board, seed int64) *Console {
	return NewWithSpecs(b, seed, Specs())
}

// NewWithSpecs is New with an explicit module list, for tests.
func NewWithSpecs(b *board.Board, seed int64, specs []Spec) *Console {
	in := NewInput(b.Buttons)
	snd := NewTones(b.Buzzer)
	fr := NewFrame(b.Pixels)
	rng := rand.New(rand.NewSource(seed))
	sess := NewSession(in, snd, rng, specs)

	c := &Console{
		In:      in,
		Snd:     snd,
		Frame:   fr,
		Session: sess,
	}
	c.sched = NewScheduler(MatrixFrameMs, PanelFrameMs,
		func(now int64) {
			sess.RenderMatrix(fr, now)
			_ = fr.Present()
		},
		func(now int64) {
			sess.RenderPanel(b.Panel, now)
		},
	)
	return c
}

// Tick runs one loop iteration. Order is fixed: sample input, session
// and module logic, audio pump, then both render cadences.
func (c *Console) Tick(now int64) {
	c.In.Sample(now)
	c.Session.Step(now)
	c.Snd.Pump(now)
	c.sched.Tick(now)
}
