package checkers

import (
	"math/rand"
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
)

func newEnv() *console.Env {
	in := console.NewInput(&board.HostButtons{})
	snd := console.NewTones(&board.HostBuzzer{})
	return console.NewEnv(in, snd, rand.New(rand.NewSource(2)))
}

func emptyGame(env *console.Env, ai bool) *Game {
	g := &Game{ai: ai}
	g.Init(env)
	g.board = [8][8]uint8{}
	return g
}

func TestForcedCaptureHidesQuietMoves(t *testing.T) {
	env := newEnv()
	g := emptyGame(env, false)

	g.board[5][2] = p1Man
	g.board[4][3] = p2Man

	moves := g.getMoves(2, 5)
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want the single forced capture", len(moves))
	}
	m := moves[0]
	if !m.capture || m.x != 4 || m.y != 3 {
		t.Fatalf("move = %+v, want capture landing at (4,3)", m)
	}
}

func TestManCannotMoveBackward(t *testing.T) {
	env := newEnv()
	g := emptyGame(env, false)

	g.board[4][4] = p1Man
	for _, m := range g.getMoves(4, 4) {
		if m.y > 4 {
			t.Fatalf("man offered backward move to (%d,%d)", m.x, m.y)
		}
	}

	g.board[4][4] = p1King
	down := false
	for _, m := range g.getMoves(4, 4) {
		if m.y > 4 {
			down = true
		}
	}
	if !down {
		t.Fatal("king denied backward moves")
	}
}

func TestExecuteCaptureScoresAndPromotes(t *testing.T) {
	env := newEnv()
	g := emptyGame(env, false)

	g.board[3][3] = p1Man
	g.board[2][2] = p2Man
	g.execute(env, 3, 3, 1, 1)

	if g.board[2][2] != empty {
		t.Fatal("captured piece still on the board")
	}
	if env.Score() != 10 {
		t.Fatalf("score = %d, want 10", env.Score())
	}
	if g.turn != 2 {
		t.Fatal("turn did not pass after the capture")
	}

	g.board[1][2] = p1Man
	g.turn = 1
	g.execute(env, 2, 1, 3, 0)
	if g.board[0][3] != p1King {
		t.Fatal("man reaching the back row was not crowned")
	}
}

func TestAIPrefersCapture(t *testing.T) {
	env := newEnv()
	g := emptyGame(env, true)

	g.board[2][2] = p2Man
	g.board[3][3] = p1Man
	g.board[2][6] = p2Man // quiet alternative

	if !g.aiMove(env) {
		t.Fatal("AI found no move")
	}
	if g.board[4][4] != p2Man || g.board[3][3] != empty {
		t.Fatal("AI passed up the capture")
	}
}

func TestAINoMovesMeansPlayerWin(t *testing.T) {
	env := newEnv()
	g := emptyGame(env, true)
	g.board[5][2] = p1Man
	g.turn = 2

	res, done := g.Advance(env, 0)
	if done {
		t.Fatalf("AI ended round before its think delay: %+v", res)
	}
	res, done = g.Advance(env, 600)
	if !done || !res.Win || res.Msg != "P1 Wins" {
		t.Fatalf("result = (%+v, %v), want P1 Wins", res, done)
	}
}
