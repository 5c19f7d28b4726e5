// Package shooter implements the space shooter: enemies drift down and
// return fire, the ship holds the bottom row.
package shooter

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameShooter,
		Name:      "Space Shooter",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
}

type cell struct{ x, y int }

type Game struct {
	shipX    int
	pBullets []cell
	eBullets []cell
	enemies  []cell

	eInt, sInt int64

	lastMove  int64
	lastPB    int64
	lastEB    int64
	lastEStep int64
	lastSpawn int64
	lastShot  int64
	lastEShot int64
	warmed    bool
}

func (g *Game) Init(env *console.Env) {
	g.shipX = 3
	g.pBullets = g.pBullets[:0]
	g.eBullets = g.eBullets[:0]
	g.enemies = g.enemies[:0]
	g.eInt = 720
	g.sInt = 1350
	g.warmed = false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
		g.lastPB = now
		g.lastEB = now
		g.lastEStep = now
		g.lastSpawn = now
		g.lastShot = now
		g.lastEShot = now
	}

	in := env.In
	if in.Held(types.BtnLeft) && now-g.lastMove >= 125 {
		g.lastMove = now
		if g.shipX > 0 {
			g.shipX--
			env.Snd.BeepButton()
		}
	}
	if in.Held(types.BtnRight) && now-g.lastMove >= 125 {
		g.lastMove = now
		if g.shipX < 7 {
			g.shipX++
			env.Snd.BeepButton()
		}
	}

	if (in.TakePress(types.BtnUp) || in.TakePress(types.BtnAct)) && now-g.lastShot >= 320 {
		g.lastShot = now
		if len(g.pBullets) < 6 {
			g.pBullets = append(g.pBullets, cell{g.shipX, 6})
			env.Snd.BeepButton()
		}
	}

	if now-g.lastSpawn >= g.sInt {
		g.lastSpawn = now
		if len(g.enemies) < 8 {
			g.enemies = append(g.enemies, cell{env.Rand.Intn(8), 0})
		}
	}

	if now-g.lastPB >= 130 {
		g.lastPB = now
		keep := g.pBullets[:0]
		for _, b := range g.pBullets {
			b.y--
			if b.y >= 0 {
				keep = append(keep, b)
			}
		}
		g.pBullets = keep
	}

	if now-g.lastEStep >= g.eInt {
		g.lastEStep = now
		for i := range g.enemies {
			if env.Rand.Intn(4) == 0 {
				nx := g.enemies[i].x + env.Rand.Intn(3) - 1
				if nx < 0 {
					nx = 0
				} else if nx > 7 {
					nx = 7
				}
				g.enemies[i].x = nx
			}
			g.enemies[i].y++
			if g.enemies[i].y >= 7 {
				env.Snd.BeepHit()
				return console.RoundResult{Msg: "Line broken"}, true
			}
		}
	}

	if now-g.lastEShot >= 850 {
		g.lastEShot = now
		if len(g.enemies) > 0 {
			e := g.enemies[env.Rand.Intn(len(g.enemies))]
			if len(g.eBullets) < 5 {
				g.eBullets = append(g.eBullets, cell{e.x, e.y + 1})
			}
		}
	}

	if now-g.lastEB >= 190 {
		g.lastEB = now
		keep := g.eBullets[:0]
		for _, b := range g.eBullets {
			b.y++
			if b.y == 7 && b.x == g.shipX {
				env.Snd.BeepHit()
				return console.RoundResult{Msg: "Shot down"}, true
			}
			if b.y <= 7 {
				keep = append(keep, b)
			}
		}
		g.eBullets = keep
	}

	liveB := g.pBullets[:0]
	for _, b := range g.pBullets {
		hit := false
		for i, e := range g.enemies {
			if b.x == e.x && b.y == e.y {
				g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
				hit = true
				env.AddScore(1)
				env.Snd.BeepScore()
				break
			}
		}
		if !hit {
			liveB = append(liveB, b)
		}
	}
	g.pBullets = liveB

	g.eInt = 720 - int64(env.Score())*2
	if g.eInt < 300 {
		g.eInt = 300
	}
	g.sInt = 1350 - int64(env.Score())*5
	if g.sInt < 500 {
		g.sInt = 500
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for _, e := range g.enemies {
		f.Set(e.x, e.y, types.RGB{R: 46, B: 20})
	}
	for _, b := range g.pBullets {
		f.Set(b.x, b.y, types.RGB{R: 65, G: 65, B: 65})
	}
	for _, b := range g.eBullets {
		f.Set(b.x, b.y, types.RGB{R: 55, G: 10})
	}
	f.Set(g.shipX, 7, types.RGB{G: 60, B: 10})
}
