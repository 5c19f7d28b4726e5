package console

import (
	"math/rand"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/mathx"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"
)

// State is the top-level session state. Exactly one is active.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateRoundOver
)

// maxMsgLen bounds the round-over message to what fits on one panel
// line.
const maxMsgLen = 21

func boundMsg(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

// ScoreBoard is the volatile score bookkeeping: the running round score
// and a per-module high score that only ever goes up. Nothing here
// survives power loss.
type ScoreBoard struct {
	current int
	high    [GameCount]int
	lastWin bool
	lastMsg string
}

func (s *ScoreBoard) Current() int { return s.current }

func (s *ScoreBoard) High(id GameID) int {
	if id >= GameCount {
		return 0
	}
	return s.high[id]
}

func (s *ScoreBoard) LastWin() bool   { return s.lastWin }
func (s *ScoreBoard) LastMsg() string { return s.lastMsg }

func (s *ScoreBoard) reset() {
	s.current = 0
	s.lastWin = false
}

// Session is the top-level state machine. It owns the menu cursor, the
// pause flag, the score board and the game slot; it is the only writer
// of all four. Transitions are total: an input with no meaning in the
// current state is ignored.
type Session struct {
	in  *Input
	snd *Tones

	state State
	specs []Spec

	menuIdx int
	slot    Slot
	env     Env
	sb      ScoreBoard

	paused    bool
	claimsAct bool // active module owns the action button

	roundOverAt int64
}

func NewSession(in *Input, snd *Tones, rng *rand.Rand, specs []Spec) *Session {
	s := &Session{
		in:    in,
		snd:   snd,
		specs: specs,
	}
	s.env = Env{In: in, Snd: snd, Rand: rng, sb: &s.sb}
	return s
}

func (s *Session) State() State        { return s.state }
func (s *Session) Paused() bool        { return s.paused }
func (s *Session) MenuIndex() int      { return s.menuIdx }
func (s *Session) Scores() *ScoreBoard { return &s.sb }

// ActiveSpec returns the menu-selected spec in Menu, or the loaded one
// otherwise.
func (s *Session) ActiveSpec() (Spec, bool) {
	if len(s.specs) == 0 {
		return Spec{}, false
	}
	if s.state == StateMenu {
		return s.specs[s.menuIdx], true
	}
	for _, sp := range s.specs {
		if sp.ID == s.slot.ID() {
			return sp, true
		}
	}
	return Spec{}, false
}

// Step runs one tick of session logic. Input must have been sampled
// already this tick.
func (s *Session) Step(now int64) {
	// Global cancel, honoured everywhere except the menu itself.
	if s.state != StateMenu && s.in.TakePress(types.BtnSel) {
		s.snd.BeepButton()
		s.toMenu()
		return
	}

	switch s.state {
	case StateMenu:
		s.stepMenu(now)
	case StatePlaying:
		s.stepPlaying(now)
	case StateRoundOver:
		s.stepRoundOver(now)
	}
}

func (s *Session) toMenu() {
	s.state = StateMenu
	s.paused = false
	s.in.ClearEdges()
}

func (s *Session) stepMenu(now int64) {
	if len(s.specs) == 0 {
		return
	}

	// Left+Right together toggles mute.
	if (s.in.TakePress(types.BtnLeft) && s.in.Held(types.BtnRight)) ||
		(s.in.TakePress(types.BtnRight) && s.in.Held(types.BtnLeft)) {
		s.snd.SetMuted(!s.snd.Muted())
		s.snd.BeepButton()
		return
	}

	if s.in.TakePress(types.BtnUp) {
		s.menuIdx = mathx.WrapMod(s.menuIdx-1, len(s.specs))
		s.snd.BeepButton()
	}
	if s.in.TakePress(types.BtnDown) {
		s.menuIdx = mathx.WrapMod(s.menuIdx+1, len(s.specs))
		s.snd.BeepButton()
	}
	if s.in.TakePress(types.BtnAct) {
		s.start(s.specs[s.menuIdx])
	}
}

// start enters Playing. Score reset and the state change happen before
// the module's first Advance ever runs.
func (s *Session) start(spec Spec) {
	s.snd.BeepButton()
	s.sb.reset()
	s.paused = false
	s.claimsAct = spec.ClaimsAct
	s.state = StatePlaying
	s.slot.Load(spec, &s.env)
	s.in.ClearEdges()
	s.snd.BeepStart()
}

func (s *Session) stepPlaying(now int64) {
	if !s.claimsAct && s.in.TakePress(types.BtnAct) {
		s.paused = !s.paused
		s.snd.BeepButton()
	}
	if s.paused {
		return
	}
	g := s.slot.Game()
	if g == nil {
		return
	}
	if res, done := g.Advance(&s.env, now); done {
		s.finish(res, now)
	}
}

func (s *Session) finish(res RoundResult, now int64) {
	id := s.slot.ID()
	if id < GameCount && s.sb.current > s.sb.high[id] {
		s.sb.high[id] = s.sb.current
	}

	msg := res.Msg
	if msg == "" {
		if res.Win {
			msg = "Win"
		} else {
			msg = "Game Over"
		}
	}
	s.sb.lastWin = res.Win
	s.sb.lastMsg = boundMsg(msg)

	s.state = StateRoundOver
	s.roundOverAt = now
	s.in.ClearEdges()

	if res.Win {
		s.snd.BeepWin()
	} else {
		s.snd.BeepLose()
	}
}

func (s *Session) stepRoundOver(now int64) {
	if s.in.TakePress(types.BtnAct) || timex.Since(now, s.roundOverAt) >= RoundOverMs {
		s.snd.BeepButton()
		s.toMenu()
	}
}
