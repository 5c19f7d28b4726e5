package console

import (
	"math/rand"
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

// stubGame records calls and finishes on demand.
type stubGame struct {
	inits    int
	advances int
	scoreAt  []int // env score observed at each Advance

	scorePerAdvance int
	finish          *RoundResult
	sawAct          bool
}

func (g *stubGame) Init(env *Env) { g.inits++ }

func (g *stubGame) Advance(env *Env, now int64) (RoundResult, bool) {
	g.advances++
	g.scoreAt = append(g.scoreAt, env.Score())
	if env.In.TakePress(types.BtnAct) {
		g.sawAct = true
	}
	env.AddScore(g.scorePerAdvance)
	if g.finish != nil {
		return *g.finish, true
	}
	return RoundResult{}, false
}

func (g *stubGame) Render(env *Env, f *Frame, now int64) {}

type sessionRig struct {
	in   *Input
	hb   *board.HostButtons
	snd  *Tones
	sess *Session
	game *stubGame
	now  int64
}

func newSessionRig(t *testing.T, claimsAct bool, extraSpecs ...Spec) *sessionRig {
	t.Helper()
	r := &sessionRig{
		hb:   &board.HostButtons{},
		game: &stubGame{},
		now:  1000,
	}
	r.in = NewInput(r.hb)
	r.snd = NewTones(&board.HostBuzzer{})
	specs := append([]Spec{{
		ID:        0,
		Name:      "Stub",
		ClaimsAct: claimsAct,
		New:       func() Game { return r.game },
	}}, extraSpecs...)
	r.sess = NewSession(r.in, r.snd, rand.New(rand.NewSource(1)), specs)
	return r
}

func (r *sessionRig) tick() {
	r.now++
	r.in.Sample(r.now)
	r.sess.Step(r.now)
}

// tap presses and releases a button with full debounce, stepping the
// session along the way.
func (r *sessionRig) tap(id types.ButtonID) {
	r.hb.Press(id)
	r.tick()
	r.now += DebounceMs
	r.tick()
	r.hb.Release(id)
	r.tick()
	r.now += DebounceMs
	r.tick()
}

func dummySpec(id GameID, name string) Spec {
	return Spec{ID: id, Name: name, New: func() Game { return &stubGame{} }}
}

func TestSession_MenuWrapsBothWays(t *testing.T) {
	r := newSessionRig(t, false, dummySpec(1, "B"), dummySpec(2, "C"))

	if r.sess.MenuIndex() != 0 {
		t.Fatalf("initial index %d", r.sess.MenuIndex())
	}
	r.tap(types.BtnUp) // previous from 0 wraps to last
	if r.sess.MenuIndex() != 2 {
		t.Fatalf("up from 0: index %d, want 2", r.sess.MenuIndex())
	}
	r.tap(types.BtnDown)
	if r.sess.MenuIndex() != 0 {
		t.Fatalf("down from 2: index %d, want 0", r.sess.MenuIndex())
	}
}

func TestSession_StartResetsScoreBeforeFirstAdvance(t *testing.T) {
	r := newSessionRig(t, false)
	r.sess.sb.current = 99 // residue from a previous round

	r.tap(types.BtnAct)
	if r.sess.State() != StatePlaying {
		t.Fatalf("state = %v, want Playing", r.sess.State())
	}
	if r.game.inits != 1 {
		t.Fatalf("inits = %d", r.game.inits)
	}
	r.tick()
	if r.game.advances == 0 {
		t.Fatal("module never advanced")
	}
	if r.game.scoreAt[0] != 0 {
		t.Fatalf("score at first advance = %d, want 0", r.game.scoreAt[0])
	}
}

func TestSession_HighScoreMonotonic(t *testing.T) {
	r := newSessionRig(t, false)
	r.sess.sb.high[0] = 30

	r.game.scorePerAdvance = 50
	r.game.finish = &RoundResult{Win: false}
	r.tap(types.BtnAct) // start; the same tap's later ticks advance once
	if r.sess.State() != StateRoundOver {
		t.Fatalf("state = %v, want RoundOver", r.sess.State())
	}
	if got := r.sess.Scores().High(0); got != 50 {
		t.Fatalf("high = %d, want 50", got)
	}
	if r.sess.Scores().LastWin() || r.sess.Scores().LastMsg() != "Game Over" {
		t.Fatalf("round record wrong: %v %q", r.sess.Scores().LastWin(), r.sess.Scores().LastMsg())
	}

	// A worse round later never lowers it.
	r.tap(types.BtnAct) // leave round-over
	r.game = &stubGame{scorePerAdvance: 10, finish: &RoundResult{Win: true}}
	// re-register factory result by restarting: spec factory closes over rig
	r2 := r.sess.specs[0]
	r2.New = func() Game { return r.game }
	r.sess.specs[0] = r2
	r.tap(types.BtnAct)
	if got := r.sess.Scores().High(0); got != 50 {
		t.Fatalf("high dropped to %d", got)
	}
}

func TestSession_RoundOverTimeoutExact(t *testing.T) {
	r := newSessionRig(t, false)
	r.game.finish = &RoundResult{Win: true, Msg: "Board full"}
	r.tap(types.BtnAct)
	if r.sess.State() != StateRoundOver {
		t.Fatalf("state = %v", r.sess.State())
	}
	over := r.sess.roundOverAt

	r.now = over + RoundOverMs - 2
	r.tick() // lands at timeout-1
	if r.sess.State() != StateRoundOver {
		t.Fatal("returned to menu before the timeout")
	}
	r.tick() // exactly at timeout
	if r.sess.State() != StateMenu {
		t.Fatal("did not return to menu at the timeout")
	}
}

func TestSession_CancelBeforeTimeout(t *testing.T) {
	r := newSessionRig(t, false)
	r.game.finish = &RoundResult{}
	r.tap(types.BtnAct)
	if r.sess.State() != StateRoundOver {
		t.Fatalf("state = %v", r.sess.State())
	}
	r.tap(types.BtnSel)
	if r.sess.State() != StateMenu {
		t.Fatal("cancel in round-over ignored")
	}
}

func TestSession_GlobalCancelNotInMenu(t *testing.T) {
	r := newSessionRig(t, false)

	r.tap(types.BtnSel) // menu: ignored
	if r.sess.State() != StateMenu {
		t.Fatal("cancel did something in the menu")
	}

	r.tap(types.BtnAct) // start
	r.tap(types.BtnSel) // playing: back to menu
	if r.sess.State() != StateMenu {
		t.Fatal("global cancel ignored while playing")
	}
	if r.sess.Paused() {
		t.Fatal("pause flag survived the transition")
	}
}

func TestSession_PauseStopsAdvance(t *testing.T) {
	r := newSessionRig(t, false)
	r.tap(types.BtnAct) // start

	r.tap(types.BtnAct) // pause toggle (module does not claim Act)
	if !r.sess.Paused() {
		t.Fatal("pause did not engage")
	}
	pausedAt := r.game.advances
	for i := 0; i < 5; i++ {
		r.tick()
	}
	if r.game.advances != pausedAt {
		t.Fatal("module advanced while paused")
	}

	r.tap(types.BtnAct) // resume
	if r.sess.Paused() {
		t.Fatal("pause did not release")
	}
	r.tick()
	if r.game.advances == pausedAt {
		t.Fatal("module did not resume")
	}
}

func TestSession_ActForwardedWhenClaimed(t *testing.T) {
	r := newSessionRig(t, true)
	r.tap(types.BtnAct) // start
	r.tap(types.BtnAct) // should reach the module, not pause
	if r.sess.Paused() {
		t.Fatal("session consumed a claimed action press")
	}
	if !r.game.sawAct {
		t.Fatal("module never saw the action press")
	}
}

func TestSession_EmptyRegistryIsInert(t *testing.T) {
	in := NewInput(&board.HostButtons{})
	snd := NewTones(&board.HostBuzzer{})
	s := NewSession(in, snd, rand.New(rand.NewSource(1)), nil)
	for i := int64(0); i < 100; i++ {
		in.Sample(i)
		s.Step(i)
	}
	if s.State() != StateMenu {
		t.Fatal("empty registry left the menu")
	}
}

func TestSlot_GenerationInvalidatesOldRefs(t *testing.T) {
	env := &Env{sb: &ScoreBoard{}}
	var slot Slot

	spec := dummySpec(0, "A")
	slot.Load(spec, env)
	ref := slot.Ref()
	if !slot.Valid(ref) {
		t.Fatal("fresh ref invalid")
	}

	slot.Load(spec, env) // same module id: still a new occupancy
	if slot.Valid(ref) {
		t.Fatal("stale ref survived a reload")
	}
	if !slot.Valid(slot.Ref()) {
		t.Fatal("current ref invalid")
	}
}

func TestBoundMsg_Truncates(t *testing.T) {
	long := "this message is far too long for the panel"
	if got := boundMsg(long); len(got) != maxMsgLen {
		t.Fatalf("len = %d, want %d", len(got), maxMsgLen)
	}
	if got := boundMsg("short"); got != "short" {
		t.Fatalf("short message mangled: %q", got)
	}
}
