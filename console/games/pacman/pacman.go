// Package pacman implements the pellet chase. Easy mode is an open
// wrapping field with a simple axis-chasing ghost; hard mode walks a
// sequence of four walled worlds with a breadth-greedy ghost.
package pacman

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/mathx"
)

func init() {
	console.Register(console.Spec{
		ID:   console.GamePacmanEasy,
		Name: "Pac-Man Easy",
		New:  func() console.Game { return &Game{} },
	})
	console.Register(console.Spec{
		ID:   console.GamePacmanHard,
		Name: "Pac-Man Hard",
		New:  func() console.Game { return &Game{hard: true} },
	})
}

// worlds holds one row bitmap per line, bit set = walkable pellet cell.
var worlds = [4][8]uint8{
	{0x00, 0x7E, 0x52, 0x7A, 0x5E, 0x62, 0x7E, 0x00},
	{0x00, 0x7E, 0x56, 0x76, 0x5C, 0x6E, 0x7A, 0x00},
	{0x00, 0x76, 0x5C, 0x6A, 0x3E, 0x56, 0x7E, 0x00},
	{0x00, 0x7E, 0x52, 0x7E, 0x54, 0x7E, 0x6A, 0x00},
}

const (
	cellWall   = 0
	cellPellet = 1
	cellEmpty  = 2
)

type Game struct {
	hard bool

	px, py         int
	gx, gy         int
	dx, dy         int
	nextDX, nextDY int

	pellets     [8][8]bool // easy mode
	cells       [8][8]uint8
	pelletsLeft int
	worldIdx    int

	pacInt, ghostInt   int64
	lastPac, lastGhost int64
	warmed             bool
}

func (g *Game) loadWorld() {
	g.pelletsLeft = 0
	if g.hard {
		m := worlds[g.worldIdx]
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if (m[y]>>(7-x))&1 != 0 {
					g.cells[y][x] = cellPellet
					g.pelletsLeft++
				} else {
					g.cells[y][x] = cellWall
				}
			}
		}
		if g.cells[g.py][g.px] == cellPellet {
			g.cells[g.py][g.px] = cellEmpty
			g.pelletsLeft--
		}
		if g.cells[g.gy][g.gx] == cellPellet {
			g.cells[g.gy][g.gx] = cellEmpty
			g.pelletsLeft--
		}
	} else {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				g.pellets[y][x] = true
				g.pelletsLeft++
			}
		}
		g.pellets[g.py][g.px] = false
		g.pelletsLeft--
	}
}

func (g *Game) Init(env *console.Env) {
	if g.hard {
		g.px, g.py = 1, 1
		g.gx, g.gy = 6, 6
		g.pacInt, g.ghostInt = 210, 360
	} else {
		g.px, g.py = 4, 4
		g.gx, g.gy = 0, 0
		g.pacInt, g.ghostInt = 250, 400
	}
	g.dx, g.dy = 1, 0
	g.nextDX, g.nextDY = 1, 0
	g.worldIdx = 0
	g.warmed = false
	g.loadWorld()
}

func (g *Game) isWall(x, y int) bool {
	if x < 0 || x > 7 || y < 0 || y > 7 {
		return true
	}
	if g.hard {
		return g.cells[y][x] == cellWall
	}
	return false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastPac = now
		g.lastGhost = now
	}

	in := env.In
	switch {
	case in.TakePress(types.BtnUp):
		g.nextDX, g.nextDY = 0, -1
		env.Snd.BeepButton()
	case in.TakePress(types.BtnDown):
		g.nextDX, g.nextDY = 0, 1
		env.Snd.BeepButton()
	case in.TakePress(types.BtnLeft):
		g.nextDX, g.nextDY = -1, 0
		env.Snd.BeepButton()
	case in.TakePress(types.BtnRight):
		g.nextDX, g.nextDY = 1, 0
		env.Snd.BeepButton()
	}

	if now-g.lastPac >= g.pacInt {
		g.lastPac = now
		if !g.hard {
			g.px = mathx.WrapMod(g.px+g.nextDX, 8)
			g.py = mathx.WrapMod(g.py+g.nextDY, 8)
			if g.pellets[g.py][g.px] {
				g.pellets[g.py][g.px] = false
				g.pelletsLeft--
				env.AddScore(10)
				env.Snd.BeepScore()
				if g.pelletsLeft == 0 {
					env.AddScore(100)
					g.loadWorld()
				}
			}
		} else {
			if !g.isWall(g.px+g.nextDX, g.py+g.nextDY) {
				g.dx, g.dy = g.nextDX, g.nextDY
			}
			nx, ny := g.px+g.dx, g.py+g.dy
			if !g.isWall(nx, ny) {
				g.px, g.py = nx, ny
			}
			if g.cells[g.py][g.px] == cellPellet {
				g.cells[g.py][g.px] = cellEmpty
				g.pelletsLeft--
				env.AddScore(1)
				env.Snd.BeepScore()
			}
		}
	}

	if now-g.lastGhost >= g.ghostInt {
		g.lastGhost = now
		if !g.hard {
			if mathx.Abs(g.gx-g.px) > mathx.Abs(g.gy-g.py) {
				if g.gx < g.px {
					g.gx++
				} else {
					g.gx--
				}
			} else {
				if g.gy < g.py {
					g.gy++
				} else {
					g.gy--
				}
			}
			g.gx = mathx.WrapMod(g.gx, 8)
			g.gy = mathx.WrapMod(g.gy, 8)
		} else {
			bestD := 999
			bx, by := g.gx, g.gy
			for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
				nx, ny := g.gx+d[0], g.gy+d[1]
				if g.isWall(nx, ny) {
					continue
				}
				dist := mathx.Abs(nx-g.px) + mathx.Abs(ny-g.py)
				if dist < bestD || (dist == bestD && env.Rand.Intn(2) == 1) {
					bestD = dist
					bx, by = nx, ny
				}
			}
			g.gx, g.gy = bx, by
		}
	}

	if g.px == g.gx && g.py == g.gy {
		env.Snd.BeepHit()
		return console.RoundResult{Msg: "Caught"}, true
	}

	if g.hard && g.pelletsLeft == 0 {
		if g.worldIdx < 3 {
			g.worldIdx++
			env.AddScore(25)
			env.Snd.BeepScore()
			g.px, g.py = 1, 1
			g.gx, g.gy = 6, 6
			g.dx, g.dy = 1, 0
			g.nextDX, g.nextDY = 1, 0
			g.ghostInt = mathx.Max(120, g.ghostInt-18)
			g.pacInt = mathx.Max(145, g.pacInt-10)
			g.loadWorld()
		} else {
			env.AddScore(100)
			return console.RoundResult{Win: true, Msg: "World 4 Clear"}, true
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	if g.hard {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				switch g.cells[y][x] {
				case cellWall:
					f.Set(x, y, types.RGB{B: 24})
				case cellPellet:
					f.Set(x, y, types.RGB{R: 170, G: 150, B: 55})
				}
			}
		}
	} else {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if g.pellets[y][x] {
					f.Set(x, y, types.RGB{G: 28, B: 45})
				}
			}
		}
	}
	f.Set(g.gx, g.gy, types.RGB{R: 45})
	f.Set(g.px, g.py, types.RGB{R: 255, G: 95})
}
