// Package minesweeper implements 8x8 minesweeper with ten mines. A
// short press of the action button flags the cursor cell, a long press
// (500ms) reveals it. The first reveal is always safe.
package minesweeper

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/mathx"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameMinesweeper,
		Name:      "Minesweeper",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
}

const (
	mineCount = 10
	mine      = 9 // board value; 0-8 are neighbor counts

	hidden   = 0
	revealed = 1
	flagged  = 2

	longPressMs = 500
)

type Game struct {
	board [8][8]uint8
	state [8][8]uint8

	cx, cy   int
	first    bool
	toReveal int

	actStart int64
	actHeld  bool
}

func (g *Game) Init(env *console.Env) {
	g.board = [8][8]uint8{}
	g.state = [8][8]uint8{}
	g.cx, g.cy = 4, 4
	g.first = true
	g.toReveal = 64 - mineCount
	g.actHeld = false
}

// placeMines scatters mines everywhere but the first-revealed cell,
// then fills the neighbor counts.
func (g *Game) placeMines(env *console.Env, safeX, safeY int) {
	count := 0
	for count < mineCount {
		x, y := env.Rand.Intn(8), env.Rand.Intn(8)
		if g.board[y][x] != mine && (x != safeX || y != safeY) {
			g.board[y][x] = mine
			count++
		}
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] == mine {
				continue
			}
			c := uint8(0)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx >= 0 && nx < 8 && ny >= 0 && ny < 8 && g.board[ny][nx] == mine {
						c++
					}
				}
			}
			g.board[y][x] = c
		}
	}
}

func (g *Game) flood(env *console.Env, x, y int) {
	if x < 0 || x > 7 || y < 0 || y > 7 || g.state[y][x] != hidden {
		return
	}
	g.state[y][x] = revealed
	g.toReveal--
	env.AddScore(1)
	if g.board[y][x] == 0 {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				g.flood(env, x+dx, y+dy)
			}
		}
	}
}

func (g *Game) reveal(env *console.Env) (console.RoundResult, bool) {
	if g.state[g.cy][g.cx] != hidden {
		return console.RoundResult{}, false
	}
	if g.first {
		g.placeMines(env, g.cx, g.cy)
		g.first = false
	}
	if g.board[g.cy][g.cx] == mine {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if g.board[y][x] == mine {
					g.state[y][x] = revealed
				}
			}
		}
		env.Snd.BeepHit()
		return console.RoundResult{Msg: "Boom"}, true
	}
	env.Snd.BeepScore()
	g.flood(env, g.cx, g.cy)
	if g.toReveal == 0 {
		return console.RoundResult{Win: true, Msg: "Cleared"}, true
	}
	return console.RoundResult{}, false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	in := env.In
	if in.TakePress(types.BtnUp) {
		g.cy = mathx.WrapMod(g.cy-1, 8)
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnDown) {
		g.cy = mathx.WrapMod(g.cy+1, 8)
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnLeft) {
		g.cx = mathx.WrapMod(g.cx-1, 8)
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnRight) {
		g.cx = mathx.WrapMod(g.cx+1, 8)
		env.Snd.BeepButton()
	}

	if in.Held(types.BtnAct) {
		if !g.actHeld {
			g.actStart = now
			g.actHeld = true
		} else if now-g.actStart >= longPressMs {
			g.actHeld = false
			res, done := g.reveal(env)
			if done {
				return res, true
			}
		}
	} else if g.actHeld {
		if now-g.actStart < longPressMs {
			switch g.state[g.cy][g.cx] {
			case hidden:
				g.state[g.cy][g.cx] = flagged
				env.Snd.BeepButton()
			case flagged:
				g.state[g.cy][g.cx] = hidden
				env.Snd.BeepButton()
			}
		}
		g.actHeld = false
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			switch g.state[y][x] {
			case hidden:
				f.Set(x, y, types.RGB{R: 15, G: 15, B: 15})
			case flagged:
				f.Set(x, y, types.RGB{B: 90})
			default:
				switch v := g.board[y][x]; v {
				case mine:
					f.Set(x, y, types.RGB{R: 100})
				case 0:
					f.Set(x, y, types.RGB{R: 40, B: 40})
				case 1:
					f.Set(x, y, types.RGB{G: 50})
				case 2:
					f.Set(x, y, types.RGB{R: 50, G: 50})
				default:
					f.Set(x, y, types.RGB{R: v * 15})
				}
			}
		}
	}

	if (now/250)%2 == 1 {
		f.Set(g.cx, g.cy, types.RGB{R: 100, G: 100, B: 100})
	}
}
