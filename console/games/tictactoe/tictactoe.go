// Package tictactoe implements 3x3 tic-tac-toe on the matrix, with a
// two-player mode and a win/block/center/first-free AI opponent.
package tictactoe

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameTTTAI,
		Name:      "TicTacToe AI",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{ai: true} },
	})
	console.Register(console.Spec{
		ID:        console.GameTTT2P,
		Name:      "TicTacToe 2P",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
}

const (
	resultNone = 0
	resultP1   = 1
	resultP2   = 2
	resultDraw = 3
)

type Game struct {
	ai    bool
	board [3][3]uint8
	cx    int
	cy    int
	turn  uint8

	waitingAI bool
	aiTime    int64
}

func (g *Game) Init(env *console.Env) {
	g.board = [3][3]uint8{}
	g.cx, g.cy = 1, 1
	g.turn = 1
	g.waitingAI = false
}

func (g *Game) checkWin() int {
	b := &g.board
	for i := 0; i < 3; i++ {
		if b[i][0] != 0 && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return int(b[i][0])
		}
		if b[0][i] != 0 && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return int(b[0][i])
		}
	}
	if b[0][0] != 0 && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return int(b[0][0])
	}
	if b[0][2] != 0 && b[0][2] == b[1][1] && b[1][1] == b[2][0] {
		return int(b[0][2])
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if b[y][x] == 0 {
				return resultNone
			}
		}
	}
	return resultDraw
}

// aiMove plays for player 2: win if possible, else block, else center,
// else the first free cell.
func (g *Game) aiMove() {
	for _, p := range [2]uint8{2, 1} {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if g.board[y][x] != 0 {
					continue
				}
				g.board[y][x] = p
				if g.checkWin() == int(p) {
					g.board[y][x] = 2
					return
				}
				g.board[y][x] = 0
			}
		}
	}
	if g.board[1][1] == 0 {
		g.board[1][1] = 2
		return
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if g.board[y][x] == 0 {
				g.board[y][x] = 2
				return
			}
		}
	}
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if g.ai && g.waitingAI {
		if now >= g.aiTime {
			g.waitingAI = false
			g.aiMove()
			g.turn = 1
			switch g.checkWin() {
			case resultP1:
				env.AddScore(5)
				return console.RoundResult{Win: true, Msg: "You Win"}, true
			case resultP2:
				return console.RoundResult{Msg: "AI Wins"}, true
			case resultDraw:
				return console.RoundResult{Msg: "Draw"}, true
			}
		}
		return console.RoundResult{}, false
	}

	in := env.In
	if in.TakePress(types.BtnUp) && g.cy > 0 {
		g.cy--
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnDown) && g.cy < 2 {
		g.cy++
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnLeft) && g.cx > 0 {
		g.cx--
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnRight) && g.cx < 2 {
		g.cx++
		env.Snd.BeepButton()
	}

	if in.TakePress(types.BtnAct) {
		if g.board[g.cy][g.cx] != 0 {
			env.Snd.BeepHit()
			return console.RoundResult{}, false
		}
		g.board[g.cy][g.cx] = g.turn
		env.AddScore(1)
		env.Snd.BeepButton()
		switch g.checkWin() {
		case resultP1:
			env.AddScore(5)
			return console.RoundResult{Win: true, Msg: "P1 Wins"}, true
		case resultP2:
			return console.RoundResult{Win: true, Msg: "P2 Wins"}, true
		case resultDraw:
			return console.RoundResult{Msg: "Draw"}, true
		}

		if g.ai {
			g.turn = 2
			g.waitingAI = true
			g.aiTime = now + 500
		} else {
			g.turn = 3 - g.turn
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)

	grid := types.RGB{R: 8, G: 8, B: 8}
	for i := 0; i < 8; i++ {
		f.Set(2, i, grid)
		f.Set(5, i, grid)
		f.Set(i, 2, grid)
		f.Set(i, 5, grid)
	}

	coords := [3]int{1, 3, 6}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			gx, gy := coords[x], coords[y]
			switch g.board[y][x] {
			case 1:
				f.Set(gx, gy, types.RGB{G: 52})
			case 2:
				f.Set(gx, gy, types.RGB{R: 55})
			}
			if x == g.cx && y == g.cy && (!g.ai || g.turn == 1) {
				if g.board[y][x] != 0 {
					f.Set(gx, gy, types.RGB{R: 65, G: 65, B: 65})
				} else {
					f.Set(gx, gy, types.RGB{B: 65})
				}
			}
		}
	}
}
