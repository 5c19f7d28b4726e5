package console

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"
)

type buttonState struct {
	stable    bool // committed level after debounce
	lastRaw   bool // last raw sample, may still be bouncing
	press     bool // rising edge, cleared by TakePress
	release   bool // falling edge, cleared by TakeRelease
	changedAt int64
}

// Input polls the raw button lines once per tick and turns them into
// debounced levels and one-shot edges. A line that oscillates faster
// than the debounce window never commits; bounces are absorbed, not
// queued.
type Input struct {
	src      board.Buttons
	debounce int64
	btns     [types.ButtonCount]buttonState
}

func NewInput(src board.Buttons) *Input {
	return &Input{src: src, debounce: DebounceMs}
}

// Sample reads every line once. Call exactly once per tick, first.
func (in *Input) Sample(now int64) {
	for id := range in.btns {
		b := &in.btns[id]
		raw := in.src.Read(types.ButtonID(id))
		if raw != b.lastRaw {
			b.lastRaw = raw
			b.changedAt = now
		}
		if raw != b.stable && timex.Since(now, b.changedAt) >= in.debounce {
			b.stable = raw
			if raw {
				b.press = true
				b.release = false
			} else {
				b.release = true
				b.press = false
			}
		}
	}
}

// TakePress reports a press edge exactly once.
func (in *Input) TakePress(id types.ButtonID) bool {
	if id >= types.ButtonCount {
		return false
	}
	b := &in.btns[id]
	if b.press {
		b.press = false
		return true
	}
	return false
}

// TakeRelease reports a release edge exactly once.
func (in *Input) TakeRelease(id types.ButtonID) bool {
	if id >= types.ButtonCount {
		return false
	}
	b := &in.btns[id]
	if b.release {
		b.release = false
		return true
	}
	return false
}

// Held returns the debounced level without consuming anything.
func (in *Input) Held(id types.ButtonID) bool {
	if id >= types.ButtonCount {
		return false
	}
	return in.btns[id].stable
}

// ClearEdges drops all pending edges. The session calls this on every
// state transition so a press that started one screen never leaks into
// the next.
func (in *Input) ClearEdges() {
	for id := range in.btns {
		in.btns[id].press = false
		in.btns[id].release = false
	}
}
