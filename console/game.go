package console

import "math/rand"

// RoundResult is the payload a game returns to end its round.
type RoundResult struct {
	Win bool
	Msg string
}

// Game is the contract every module implements. The session is the only
// caller of Init and the only owner of which module is active.
//
// Init must establish every field the module depends on and must return
// even when no legal starting position exists; such a module reports an
// immediate RoundResult from its first Advance instead of wedging the
// host.
//
// Advance runs once per unpaused tick, consumes edges from env.In and
// returns (result, true) when the round is over.
//
// Render draws the current state into the frame. It must be a function
// of state and now only, safe to call at any cadence.
type Game interface {
	Init(env *Env)
	Advance(env *Env, now int64) (RoundResult, bool)
	Render(env *Env, f *Frame, now int64)
}

// Env is the context handed to games instead of globals: input edges,
// the tone queue, the shared RNG and score access. One Env lives for the
// whole process; the session owns it.
type Env struct {
	In   *Input
	Snd  *Tones
	Rand *rand.Rand

	sb *ScoreBoard
}

// NewEnv builds an Env around a fresh score board. The session builds
// its own; this one is for driving a game directly.
func NewEnv(in *Input, snd *Tones, r *rand.Rand) *Env {
	return &Env{In: in, Snd: snd, Rand: r, sb: &ScoreBoard{}}
}

// AddScore adjusts the current round score.
func (e *Env) AddScore(n int) { e.sb.current += n }

// Score is the current round score.
func (e *Env) Score() int { return e.sb.current }
