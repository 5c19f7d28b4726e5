package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
)

func newEnv() *console.Env {
	in := console.NewInput(&board.HostButtons{})
	snd := console.NewTones(&board.HostBuzzer{})
	return console.NewEnv(in, snd, rand.New(rand.NewSource(11)))
}

func TestCheckWinLines(t *testing.T) {
	env := newEnv()
	g := &Game{}
	g.Init(env)

	g.board = [3][3]uint8{{1, 1, 1}, {0, 0, 0}, {0, 0, 0}}
	if g.checkWin() != resultP1 {
		t.Fatal("row win missed")
	}

	g.board = [3][3]uint8{{2, 0, 0}, {2, 0, 0}, {2, 0, 0}}
	if g.checkWin() != resultP2 {
		t.Fatal("column win missed")
	}

	g.board = [3][3]uint8{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if g.checkWin() != resultP1 {
		t.Fatal("diagonal win missed")
	}

	g.board = [3][3]uint8{{1, 2, 1}, {2, 1, 1}, {2, 1, 2}}
	if g.checkWin() != resultDraw {
		t.Fatal("full board not reported as draw")
	}

	g.board = [3][3]uint8{{1, 2, 0}, {0, 0, 0}, {0, 0, 0}}
	if g.checkWin() != resultNone {
		t.Fatal("open board reported as decided")
	}
}

func TestAITakesWinOverBlock(t *testing.T) {
	env := newEnv()
	g := &Game{ai: true}
	g.Init(env)

	// AI can win on the top row; P1 threatens the left column.
	g.board = [3][3]uint8{{2, 2, 0}, {1, 0, 0}, {1, 0, 0}}
	g.aiMove()
	if g.board[0][2] != 2 {
		t.Fatal("AI passed up the winning cell")
	}
}

func TestAIBlocksThreat(t *testing.T) {
	env := newEnv()
	g := &Game{ai: true}
	g.Init(env)

	g.board = [3][3]uint8{{1, 1, 0}, {0, 0, 0}, {0, 0, 0}}
	g.aiMove()
	if g.board[0][2] != 2 {
		t.Fatal("AI failed to block the open row")
	}
}

func TestAIPrefersCenter(t *testing.T) {
	env := newEnv()
	g := &Game{ai: true}
	g.Init(env)

	g.board = [3][3]uint8{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	g.aiMove()
	if g.board[1][1] != 2 {
		t.Fatal("AI passed up the center")
	}
}
