// Package pong implements single-player pong against a tracking AI
// paddle on the top row.
package pong

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:   console.GamePong,
		Name: "Pong",
		New:  func() console.Game { return &Game{} },
	})
}

type Game struct {
	px, ax int // player and AI paddle left edge
	bx, by int
	vx, vy int

	moveInt   int64
	lastMove  int64
	lastPMove int64
	lastAMove int64
	warmed    bool
}

func (g *Game) Init(env *console.Env) {
	g.px, g.ax = 3, 3
	g.bx, g.by = 4, 4
	g.vx = 1
	if env.Rand.Intn(2) == 0 {
		g.vx = -1
	}
	g.vy = 1
	g.moveInt = 155
	g.warmed = false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
		g.lastPMove = now
		g.lastAMove = now
	}

	in := env.In
	if in.Held(types.BtnLeft) && now-g.lastPMove >= 60 {
		g.lastPMove = now
		if g.px > 0 {
			g.px--
		}
	}
	if in.Held(types.BtnRight) && now-g.lastPMove >= 60 {
		g.lastPMove = now
		if g.px < 5 {
			g.px++
		}
	}

	if now-g.lastAMove >= 110 {
		g.lastAMove = now
		tx := g.bx - 1
		if g.ax < tx && g.ax < 5 {
			g.ax++
		} else if g.ax > tx && g.ax > 0 {
			g.ax--
		}
	}

	if now-g.lastMove < g.moveInt {
		return console.RoundResult{}, false
	}
	g.lastMove = now

	nx, ny := g.bx+g.vx, g.by+g.vy
	if nx < 0 {
		nx, g.vx = 0, 1
	} else if nx > 7 {
		nx, g.vx = 7, -1
	}

	if ny >= 7 {
		if g.px <= nx && nx < g.px+3 {
			ny = 6
			g.vy = -1
			hit := nx - (g.px + 1)
			if hit != 0 {
				g.vx = hit
			}
			env.AddScore(1)
			env.Snd.BeepButton()
		} else {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Missed"}, true
		}
	} else if ny <= 0 {
		if g.ax <= nx && nx < g.ax+3 {
			ny = 1
			g.vy = 1
			hit := nx - (g.ax + 1)
			if hit != 0 {
				g.vx = hit
			}
			env.Snd.BeepButton()
		} else {
			env.AddScore(20)
			env.Snd.BeepScore()
			g.bx, g.by = 4, 4
			g.vy = 1
			g.moveInt--
			if g.moveInt < 50 {
				g.moveInt = 50
			}
			return console.RoundResult{}, false
		}
	}

	g.bx, g.by = nx, ny
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for i := 0; i < 3; i++ {
		f.Set(g.px+i, 7, types.RGB{G: 80})
		f.Set(g.ax+i, 0, types.RGB{R: 80})
	}
	f.Set(g.bx, g.by, types.RGB{R: 80, G: 80, B: 80})
}
