// Package snake implements the two snake variants: walls kill, or the
// field wraps around.
package snake

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:   console.GameSnakeWall,
		Name: "Snake (Wall)",
		New:  func() console.Game { return &Game{} },
	})
	console.Register(console.Spec{
		ID:   console.GameSnakeWrap,
		Name: "Snake (Wrap)",
		New:  func() console.Game { return &Game{wrap: true} },
	})
}

type point struct{ x, y int }

type Game struct {
	wrap bool

	body   [console.MatrixCount]point // head first
	length int

	dx, dy         int
	nextDX, nextDY int

	food point

	moveInterval int64
	lastMove     int64
	warmed       bool
}

func (g *Game) Init(env *console.Env) {
	g.length = 3
	g.body[0] = point{4, 4}
	g.body[1] = point{3, 4}
	g.body[2] = point{2, 4}
	g.dx, g.dy = 1, 0
	g.nextDX, g.nextDY = 1, 0
	g.moveInterval = 280
	g.warmed = false
	g.placeFood(env)
}

func (g *Game) placeFood(env *console.Env) {
	for try := 0; try < 100; try++ {
		fx := env.Rand.Intn(console.MatrixW)
		fy := env.Rand.Intn(console.MatrixH)
		hit := false
		for i := 0; i < g.length; i++ {
			if g.body[i].x == fx && g.body[i].y == fy {
				hit = true
				break
			}
		}
		if !hit {
			g.food = point{fx, fy}
			return
		}
	}
	g.food = point{}
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
	}

	in := env.In
	switch {
	case in.TakePress(types.BtnUp) && g.dy != 1:
		g.nextDX, g.nextDY = 0, -1
		env.Snd.BeepButton()
	case in.TakePress(types.BtnDown) && g.dy != -1:
		g.nextDX, g.nextDY = 0, 1
		env.Snd.BeepButton()
	case in.TakePress(types.BtnLeft) && g.dx != 1:
		g.nextDX, g.nextDY = -1, 0
		env.Snd.BeepButton()
	case in.TakePress(types.BtnRight) && g.dx != -1:
		g.nextDX, g.nextDY = 1, 0
		env.Snd.BeepButton()
	}

	if now-g.lastMove < g.moveInterval {
		return console.RoundResult{}, false
	}
	g.lastMove = now

	g.dx, g.dy = g.nextDX, g.nextDY
	nx := g.body[0].x + g.dx
	ny := g.body[0].y + g.dy

	if g.wrap {
		nx = (nx + console.MatrixW) % console.MatrixW
		ny = (ny + console.MatrixH) % console.MatrixH
	} else if nx < 0 || nx >= console.MatrixW || ny < 0 || ny >= console.MatrixH {
		env.Snd.BeepHit()
		return console.RoundResult{Msg: "Hit wall"}, true
	}

	for i := 0; i < g.length; i++ {
		if g.body[i].x == nx && g.body[i].y == ny {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Hit body"}, true
		}
	}

	ate := nx == g.food.x && ny == g.food.y
	if ate && g.length < console.MatrixCount {
		g.length++
	}

	for i := g.length - 1; i > 0; i-- {
		g.body[i] = g.body[i-1]
	}
	g.body[0] = point{nx, ny}

	if ate {
		env.AddScore(10)
		env.Snd.BeepScore()
		if g.length == console.MatrixCount {
			return console.RoundResult{Win: true, Msg: "Board full"}, true
		}
		g.placeFood(env)
		if g.moveInterval > 100 {
			g.moveInterval -= 10
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)

	head := types.RGB{R: 30, G: 130, B: 30}
	bodyC := types.RGB{R: 20, G: 70, B: 20}
	foodC := types.RGB{R: 85, G: 12, B: 12}
	if g.wrap {
		head = types.RGB{R: 150, G: 20, B: 150}
		bodyC = types.RGB{R: 90, G: 35, B: 90}
		foodC = types.RGB{G: 85, B: 85}
	}

	f.Set(g.food.x, g.food.y, foodC)
	for i := 0; i < g.length; i++ {
		c := bodyC
		if i == 0 {
			c = head
		}
		f.Set(g.body[i].x, g.body[i].y, c)
	}
}
