// Package tetris implements a falling-blocks game on the 8x8 field.
// Five piece kinds, soft drop on Down, rotate on the action button.
package tetris

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameTetris,
		Name:      "Tetris",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
}

// shapes[kind][rotation] holds four x offsets then four y offsets.
var shapes = [5][4][2][4]int{
	{ // I
		{{0, 1, 2, 3}, {1, 1, 1, 1}},
		{{2, 2, 2, 2}, {0, 1, 2, 3}},
		{{0, 1, 2, 3}, {2, 2, 2, 2}},
		{{1, 1, 1, 1}, {0, 1, 2, 3}},
	},
	{ // O
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
	},
	{ // T
		{{1, 0, 1, 2}, {0, 1, 1, 1}},
		{{1, 1, 2, 1}, {0, 1, 1, 2}},
		{{0, 1, 2, 1}, {1, 1, 1, 2}},
		{{1, 0, 1, 1}, {0, 1, 1, 2}},
	},
	{ // L
		{{0, 0, 0, 1}, {0, 1, 2, 2}},
		{{0, 1, 2, 2}, {1, 1, 1, 0}},
		{{0, 1, 1, 1}, {0, 0, 1, 2}},
		{{0, 0, 1, 2}, {2, 1, 1, 1}},
	},
	{ // Z
		{{1, 2, 0, 1}, {0, 0, 1, 1}},
		{{1, 1, 2, 2}, {0, 1, 1, 2}},
		{{1, 2, 0, 1}, {1, 1, 2, 2}},
		{{0, 0, 1, 1}, {0, 1, 1, 2}},
	},
}

var cellColors = [6]types.RGB{
	{},
	{B: 0x22},
	{R: 0x22, G: 0x11},
	{G: 0x22},
	{R: 0x22},
	{G: 0x11, B: 0x22},
}

type Game struct {
	board [console.MatrixH][console.MatrixW]uint8

	px, py int
	ptype  int
	prot   int

	dropInterval int64
	lastDrop     int64
	softDropAt   int64
	warmed       bool

	over *console.RoundResult
}

func (g *Game) Init(env *console.Env) {
	g.board = [console.MatrixH][console.MatrixW]uint8{}
	g.dropInterval = 640
	g.warmed = false
	g.over = nil
	g.spawn(env)
}

func (g *Game) canPlace(x, y, t, r int) bool {
	s := &shapes[t][r]
	for i := 0; i < 4; i++ {
		bx := x + s[0][i]
		by := y + s[1][i]
		if bx < 0 || bx >= console.MatrixW || by < 0 || by >= console.MatrixH {
			return false
		}
		if g.board[by][bx] != 0 {
			return false
		}
	}
	return true
}

func (g *Game) spawn(env *console.Env) {
	g.ptype = env.Rand.Intn(5)
	g.prot = 0
	g.px, g.py = 2, 0
	if !g.canPlace(g.px, g.py, g.ptype, g.prot) {
		env.Snd.BeepHit()
		g.over = &console.RoundResult{Msg: "Stacked out"}
	}
}

func (g *Game) lock() {
	s := &shapes[g.ptype][g.prot]
	for i := 0; i < 4; i++ {
		bx := g.px + s[0][i]
		by := g.py + s[1][i]
		if bx >= 0 && bx < console.MatrixW && by >= 0 && by < console.MatrixH {
			g.board[by][bx] = uint8(g.ptype + 1)
		}
	}
}

func (g *Game) clearLines(env *console.Env) {
	lines := 0
	for y := console.MatrixH - 1; y >= 0; {
		full := true
		for x := 0; x < console.MatrixW; x++ {
			if g.board[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			y--
			continue
		}
		lines++
		for row := y; row > 0; row-- {
			g.board[row] = g.board[row-1]
		}
		g.board[0] = [console.MatrixW]uint8{}
		// Same row again: the line above just dropped into it.
	}
	if lines > 0 {
		env.AddScore(lines * 10)
		env.Snd.BeepScore()
	}
}

func (g *Game) drop(env *console.Env) {
	if g.canPlace(g.px, g.py+1, g.ptype, g.prot) {
		g.py++
		return
	}
	g.lock()
	g.clearLines(env)
	g.spawn(env)
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if g.over != nil {
		return *g.over, true
	}
	if !g.warmed {
		g.warmed = true
		g.lastDrop = now
		g.softDropAt = now
	}

	in := env.In
	if in.TakePress(types.BtnLeft) && g.canPlace(g.px-1, g.py, g.ptype, g.prot) {
		g.px--
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnRight) && g.canPlace(g.px+1, g.py, g.ptype, g.prot) {
		g.px++
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnAct) {
		nr := (g.prot + 1) % 4
		if g.canPlace(g.px, g.py, g.ptype, nr) {
			g.prot = nr
			env.Snd.BeepButton()
		}
	}

	if in.TakePress(types.BtnDown) || (in.Held(types.BtnDown) && now-g.softDropAt >= 90) {
		g.softDropAt = now
		g.drop(env)
	}

	if now-g.lastDrop >= g.dropInterval {
		g.lastDrop = now
		g.drop(env)
	}

	if g.over != nil {
		return *g.over, true
	}

	g.dropInterval = 640 - int64(env.Score())*3
	if g.dropInterval < 120 {
		g.dropInterval = 120
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for y := 0; y < console.MatrixH; y++ {
		for x := 0; x < console.MatrixW; x++ {
			if g.board[y][x] != 0 {
				f.Set(x, y, cellColors[g.board[y][x]])
			}
		}
	}
	s := &shapes[g.ptype][g.prot]
	for i := 0; i < 4; i++ {
		f.Set(g.px+s[0][i], g.py+s[1][i], types.RGB{R: 60, G: 60, B: 60})
	}
}
