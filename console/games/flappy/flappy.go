// Package flappy implements the pipe-dodging game. Easy mode moves the
// bird in whole pixels; hard mode runs physics in eighths of a pixel
// with a two-wide pipe and a faster tick.
package flappy

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameFlappyEasy,
		Name:      "Flappy Easy",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
	console.Register(console.Spec{
		ID:        console.GameFlappyHard,
		Name:      "Flappy Hard",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{hard: true} },
	})
}

type Game struct {
	hard bool

	// Hard mode position and velocity in eighths.
	y8, vel8 int

	pipeX  int
	gapY   int
	scored bool

	// Easy mode.
	birdY   int
	vel     int
	gapSize int

	moveInterval int64
	lastMove     int64
	warmed       bool
}

func (g *Game) newPipe(env *console.Env) {
	if g.hard {
		g.pipeX = 8
	} else {
		g.pipeX = 7
	}
	g.gapY = 1 + env.Rand.Intn(4)
	g.scored = false
}

func (g *Game) Init(env *console.Env) {
	if g.hard {
		g.y8 = 28
		g.vel8 = 0
		g.moveInterval = 125
	} else {
		g.birdY = 4
		g.vel = 0
		g.moveInterval = 200
	}
	g.gapSize = 3
	g.warmed = false
	g.newPipe(env)
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
	}

	if env.In.TakePress(types.BtnUp) || env.In.TakePress(types.BtnAct) {
		if g.hard {
			g.vel8 = -14
		} else {
			g.vel = -2
		}
		env.Snd.BeepButton()
	}

	if now-g.lastMove < g.moveInterval {
		return console.RoundResult{}, false
	}
	g.lastMove = now

	if g.hard {
		g.vel8 += 4
		if g.vel8 > 18 {
			g.vel8 = 18
		}
		g.y8 += g.vel8
		birdY := g.y8 / 8

		g.pipeX--
		if g.pipeX < -2 {
			g.newPipe(env)
		}

		if !g.scored && g.pipeX+1 < 2 {
			g.scored = true
			env.AddScore(1)
			env.Snd.BeepScore()
		}

		if g.y8 < 0 || birdY > 7 {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Crashed"}, true
		}

		if 2 >= g.pipeX && 2 < g.pipeX+2 {
			if birdY < g.gapY || birdY >= g.gapY+3 {
				env.Snd.BeepHit()
				return console.RoundResult{Msg: "Hit pipe"}, true
			}
		}

		g.moveInterval = 125 - int64(env.Score())*2
		if g.moveInterval < 65 {
			g.moveInterval = 65
		}
	} else {
		g.vel++
		g.birdY += g.vel
		if g.birdY < 0 || g.birdY > 7 {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Crashed"}, true
		}

		g.pipeX--
		if g.pipeX < 0 {
			g.newPipe(env)
			env.AddScore(10)
			env.Snd.BeepScore()
		}

		if g.pipeX == 0 {
			if g.birdY < g.gapY || g.birdY >= g.gapY+g.gapSize {
				env.Snd.BeepHit()
				return console.RoundResult{Msg: "Hit pipe"}, true
			}
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	if g.hard {
		for x := g.pipeX; x < g.pipeX+2; x++ {
			for y := 0; y < console.MatrixH; y++ {
				if y < g.gapY || y >= g.gapY+3 {
					f.Set(x, y, types.RGB{G: 35, B: 8})
				}
			}
		}
		f.Set(2, g.y8/8, types.RGB{R: 70, G: 55})
	} else {
		f.Set(0, g.birdY, types.RGB{R: 70, G: 55})
		for y := 0; y < console.MatrixH; y++ {
			if y < g.gapY || y >= g.gapY+g.gapSize {
				f.Set(g.pipeX, y, types.RGB{G: 55})
			}
		}
	}
}
