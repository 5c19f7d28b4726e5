package console

import (
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func newTestInput() (*Input, *board.HostButtons) {
	hb := &board.HostButtons{}
	return NewInput(hb), hb
}

// press holds the raw line and samples past the debounce window so the
// edge commits.
func press(in *Input, hb *board.HostButtons, id types.ButtonID, now int64) int64 {
	hb.Press(id)
	in.Sample(now)
	now += DebounceMs
	in.Sample(now)
	return now
}

func release(in *Input, hb *board.HostButtons, id types.ButtonID, now int64) int64 {
	hb.Release(id)
	in.Sample(now)
	now += DebounceMs
	in.Sample(now)
	return now
}

func TestInput_PressCommitsAfterDebounce(t *testing.T) {
	in, hb := newTestInput()

	hb.Press(types.BtnUp)
	in.Sample(0)
	if in.Held(types.BtnUp) {
		t.Fatal("level committed before debounce window")
	}
	in.Sample(DebounceMs - 1)
	if in.TakePress(types.BtnUp) {
		t.Fatal("edge fired one ms early")
	}
	in.Sample(DebounceMs)
	if !in.Held(types.BtnUp) {
		t.Fatal("level not committed at debounce window")
	}
	if !in.TakePress(types.BtnUp) {
		t.Fatal("press edge missing")
	}
	if in.TakePress(types.BtnUp) {
		t.Fatal("press edge delivered twice")
	}
}

func TestInput_BouncesAbsorbed(t *testing.T) {
	in, hb := newTestInput()

	// Raw level flips pressed/released every 5 ms: faster than the
	// window, so nothing ever commits.
	lvl := false
	for now := int64(0); now <= 200; now += 5 {
		lvl = !lvl
		hb.Level[types.BtnAct] = lvl
		in.Sample(now)
		if in.Held(types.BtnAct) {
			t.Fatalf("bounce committed at t=%d", now)
		}
	}
	if in.TakePress(types.BtnAct) || in.TakeRelease(types.BtnAct) {
		t.Fatal("bounce produced an edge")
	}
}

func TestInput_ShortGlitchIgnored(t *testing.T) {
	in, hb := newTestInput()

	// Pressed for 5 ms, back up at 10 ms, then quiet.
	hb.Press(types.BtnLeft)
	in.Sample(0)
	in.Sample(5)
	hb.Release(types.BtnLeft)
	in.Sample(10)
	in.Sample(100)
	if in.Held(types.BtnLeft) || in.TakePress(types.BtnLeft) {
		t.Fatal("10 ms glitch registered as a press")
	}
}

func TestInput_SingleEdgePerHold(t *testing.T) {
	in, hb := newTestInput()

	now := press(in, hb, types.BtnDown, 0)
	if !in.TakePress(types.BtnDown) {
		t.Fatal("expected press edge")
	}

	// Holding longer produces no further edges.
	for i := 0; i < 10; i++ {
		now += 50
		in.Sample(now)
	}
	if in.TakePress(types.BtnDown) {
		t.Fatal("hold produced a second press edge")
	}
	if !in.Held(types.BtnDown) {
		t.Fatal("hold lost")
	}

	now = release(in, hb, types.BtnDown, now)
	if !in.TakeRelease(types.BtnDown) {
		t.Fatal("expected release edge")
	}
	if in.TakeRelease(types.BtnDown) {
		t.Fatal("release edge delivered twice")
	}
}

func TestInput_ClearEdges(t *testing.T) {
	in, hb := newTestInput()

	press(in, hb, types.BtnSel, 0)
	in.ClearEdges()
	if in.TakePress(types.BtnSel) {
		t.Fatal("edge survived ClearEdges")
	}
	if !in.Held(types.BtnSel) {
		t.Fatal("ClearEdges must not touch the stable level")
	}
}
