// Package dino implements the endless runner: jump over ground
// obstacles, crouch under floating ones. Vertical motion runs in
// eighths of a pixel and scales with the current tick rate so jumps
// keep the same arc as the game speeds up.
package dino

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:   console.GameDino,
		Name: "Dino Run",
		New:  func() console.Game { return &Game{} },
	})
}

const groundY8 = 56

type Game struct {
	y8, v8 int
	crouch bool

	ox, oy int
	ow, oh int
	otype  int
	passed bool

	moveInt  int64
	lastMove int64
	warmed   bool
}

func (g *Game) newObs(env *console.Env) {
	g.otype = env.Rand.Intn(2)
	g.ow = 1 + env.Rand.Intn(2)
	g.ox = -g.ow
	if g.otype == 0 { // ground obstacle
		g.oh = 1 + env.Rand.Intn(3)
		g.oy = 7
	} else { // floating
		g.oh = 1 + env.Rand.Intn(2)
		g.oy = 4 + env.Rand.Intn(2)
	}
	g.passed = false
}

func (g *Game) Init(env *console.Env) {
	g.y8 = groundY8
	g.v8 = 0
	g.crouch = false
	g.moveInt = 150
	g.warmed = false
	g.newObs(env)
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
	}

	in := env.In
	py := g.y8 / 8
	g.crouch = in.Held(types.BtnDown) && py == 7

	if in.TakePress(types.BtnUp) && py == 7 && !g.crouch {
		g.v8 = int(-28.0 * (150.0 / float64(g.moveInt)))
		env.Snd.BeepButton()
	}

	if in.TakePress(types.BtnDown) && py < 7 {
		g.v8 += 30 // fast fall
	}

	if now-g.lastMove < g.moveInt {
		return console.RoundResult{}, false
	}
	g.lastMove = now

	g.v8 += int(6.0 * (150.0 / float64(g.moveInt)))
	if g.v8 > 24 {
		g.v8 = 24
	}
	g.y8 += g.v8
	if g.y8 >= groundY8 {
		g.y8 = groundY8
		g.v8 = 0
	}

	g.ox++
	if !g.passed && g.ox > 6 {
		g.passed = true
		env.AddScore(1)
		env.Snd.BeepScore()
		if g.moveInt > 60 {
			g.moveInt -= 4
		}
	}
	if g.ox > 8 {
		g.newObs(env)
	}

	py = g.y8 / 8
	if g.crouch {
		py = 7
	}
	if g.ox <= 6 && 6 < g.ox+g.ow {
		top, bot := 8-g.oh, 7
		if g.otype != 0 {
			top, bot = g.oy, g.oy+g.oh-1
		}
		if py >= top && py <= bot {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Ouch"}, true
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)

	offset := int(now / 100)
	for i := 0; i < 8; i++ {
		c := types.RGB{R: 10, G: 10, B: 10}
		if ((i-offset)%4+4)%4 < 2 {
			c = types.RGB{R: 20, G: 20, B: 20}
		}
		f.Set(i, 7, c)
	}

	py := g.y8 / 8
	if g.crouch {
		py = 7
		f.Set(6, py, types.RGB{G: 40, B: 10})
	} else {
		f.Set(6, py, types.RGB{G: 80, B: 20})
	}

	for w := 0; w < g.ow; w++ {
		px := g.ox + w
		if px < 0 || px > 7 {
			continue
		}
		for h := 0; h < g.oh; h++ {
			oy := 7 - h
			if g.otype != 0 {
				oy = g.oy + h
			}
			f.Set(px, oy, types.RGB{R: 80, G: 40})
		}
	}
}
