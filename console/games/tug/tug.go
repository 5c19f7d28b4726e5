// Package tug implements two-player tug of war: mash Up/Left against
// Down/Right to drag the marker to your edge.
package tug

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:   console.GameTug,
		Name: "Tug of War",
		New:  func() console.Game { return &Game{} },
	})
}

type Game struct {
	pos    int
	p1Last int64
	p2Last int64
	warmed bool
}

func (g *Game) Init(env *console.Env) {
	g.pos = 4
	g.warmed = false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.p1Last = now
		g.p2Last = now
	}

	in := env.In
	if (in.TakePress(types.BtnUp) || in.TakePress(types.BtnLeft)) && now-g.p1Last >= 80 {
		g.p1Last = now
		g.pos--
		env.AddScore(1)
		env.Snd.BeepButton()
	}
	if (in.TakePress(types.BtnDown) || in.TakePress(types.BtnRight)) && now-g.p2Last >= 80 {
		g.p2Last = now
		g.pos++
		env.AddScore(1)
		env.Snd.BeepButton()
	}

	if g.pos <= 0 {
		return console.RoundResult{Win: true, Msg: "P1 Wins"}, true
	}
	if g.pos >= 7 {
		return console.RoundResult{Win: true, Msg: "P2 Wins"}, true
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for x := 0; x < 8; x++ {
		f.Set(x, 3, types.RGB{R: 8, G: 8, B: 8})
	}
	f.Set(0, 3, types.RGB{G: 50})
	f.Set(7, 3, types.RGB{R: 50})
	f.Set(g.pos, 3, types.RGB{R: 65, G: 55})
}
