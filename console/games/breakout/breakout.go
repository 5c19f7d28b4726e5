// Package breakout implements brick breaking with a 3-wide paddle.
// Clearing the wall respawns it faster.
package breakout

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:   console.GameBreakout,
		Name: "Breakout",
		New:  func() console.Game { return &Game{} },
	})
}

type Game struct {
	bricks [3][8]bool
	px     int
	bx, by int
	vx, vy int

	moveInt   int64
	lastMove  int64
	lastPMove int64
	warmed    bool
}

func (g *Game) resetBricks() {
	for y := range g.bricks {
		for x := range g.bricks[y] {
			g.bricks[y][x] = true
		}
	}
}

func (g *Game) Init(env *console.Env) {
	g.resetBricks()
	g.px = 2
	g.bx, g.by = 3, 6
	g.vx = 1
	if env.Rand.Intn(2) == 0 {
		g.vx = -1
	}
	g.vy = -1
	g.moveInt = 200
	g.warmed = false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
		g.lastPMove = now
	}

	in := env.In
	if in.Held(types.BtnLeft) && now-g.lastPMove >= 80 {
		g.lastPMove = now
		if g.px > 0 {
			g.px--
			env.Snd.BeepButton()
		}
	}
	if in.Held(types.BtnRight) && now-g.lastPMove >= 80 {
		g.lastPMove = now
		if g.px < 5 {
			g.px++
			env.Snd.BeepButton()
		}
	}

	if now-g.lastMove < g.moveInt {
		return console.RoundResult{}, false
	}
	g.lastMove = now

	nx, ny := g.bx+g.vx, g.by+g.vy
	if nx < 0 || nx > 7 {
		g.vx = -g.vx
		nx = g.bx + g.vx
	}
	if ny < 0 {
		g.vy = 1
		ny = g.by + g.vy
	}

	if ny >= 0 && ny < 3 && g.bricks[ny][nx] {
		g.bricks[ny][nx] = false
		g.vy = -g.vy
		ny = g.by + g.vy
		env.AddScore(1)
		env.Snd.BeepScore()
	}

	if ny >= 7 {
		if g.px <= nx && nx < g.px+3 {
			g.vy = -1
			ny = 6
			hit := nx - (g.px + 1)
			if hit != 0 {
				g.vx = hit
			}
			env.Snd.BeepButton()
		} else {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Missed ball"}, true
		}
	}

	g.bx, g.by = nx, ny

	any := false
	for y := range g.bricks {
		for x := range g.bricks[y] {
			if g.bricks[y][x] {
				any = true
			}
		}
	}
	if !any {
		env.AddScore(5)
		env.Snd.BeepWin()
		g.resetBricks()
		g.bx, g.by = 3, 6
		g.moveInt -= 12
		if g.moveInt < 80 {
			g.moveInt = 80
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			if g.bricks[y][x] {
				f.Set(x, y, types.RGB{R: uint8(35 + y*6), G: uint8(10 + y*4)})
			}
		}
	}
	for i := 0; i < 3; i++ {
		f.Set(g.px+i, 7, types.RGB{G: 48, B: 50})
	}
	f.Set(g.bx, g.by, types.RGB{R: 65, G: 65, B: 65})
}
