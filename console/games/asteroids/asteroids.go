// Package asteroids implements the rock-dodging shooter. Rocks fall on
// independent per-rock timers that tighten as the score climbs.
package asteroids

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameAsteroids,
		Name:      "Asteroids Hard",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
}

type bullet struct{ x, y int }

type rock struct {
	x, y     int
	interval int64
	lastMove int64
}

type Game struct {
	shipX   int
	bullets []bullet
	rocks   []rock

	spawnInterval int64
	lastMove      int64
	lastBullet    int64
	lastSpawn     int64
	lastShot      int64
	warmed        bool
}

func (g *Game) Init(env *console.Env) {
	g.shipX = 3
	g.bullets = g.bullets[:0]
	g.rocks = g.rocks[:0]
	g.spawnInterval = 900
	g.warmed = false
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if !g.warmed {
		g.warmed = true
		g.lastMove = now
		g.lastBullet = now
		g.lastSpawn = now
		g.lastShot = now
	}

	in := env.In
	if in.Held(types.BtnLeft) && now-g.lastMove >= 90 {
		g.lastMove = now
		if g.shipX > 0 {
			g.shipX--
			env.Snd.BeepButton()
		}
	}
	if in.Held(types.BtnRight) && now-g.lastMove >= 90 {
		g.lastMove = now
		if g.shipX < 7 {
			g.shipX++
			env.Snd.BeepButton()
		}
	}

	if (in.TakePress(types.BtnUp) || in.TakePress(types.BtnAct)) && now-g.lastShot >= 170 {
		g.lastShot = now
		if len(g.bullets) < 5 {
			g.bullets = append(g.bullets, bullet{g.shipX, 6})
			env.Snd.BeepButton()
		}
	}

	if now-g.lastBullet >= 85 {
		g.lastBullet = now
		keep := g.bullets[:0]
		for _, b := range g.bullets {
			b.y--
			if b.y >= 0 {
				keep = append(keep, b)
			}
		}
		g.bullets = keep
	}

	if now-g.lastSpawn >= g.spawnInterval {
		g.lastSpawn = now
		if len(g.rocks) < 8 {
			interval := int64(180+env.Rand.Intn(141)) - int64(env.Score())*2
			if interval < 90 {
				interval = 90
			}
			g.rocks = append(g.rocks, rock{x: env.Rand.Intn(8), interval: interval, lastMove: now})
		}
	}

	keep := g.rocks[:0]
	for i := range g.rocks {
		r := g.rocks[i]
		if now-r.lastMove >= r.interval {
			r.lastMove = now
			r.y++
		}
		if r.y <= 7 {
			keep = append(keep, r)
		}
	}
	g.rocks = keep

	liveB := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		for i, r := range g.rocks {
			if b.x == r.x && b.y == r.y {
				g.rocks = append(g.rocks[:i], g.rocks[i+1:]...)
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
	g.bullets = liveB

	for _, r := range g.rocks {
		if r.x == g.shipX && r.y == 7 {
			env.Snd.BeepHit()
			return console.RoundResult{Msg: "Ship hit"}, true
		}
	}

	g.spawnInterval = 900 - int64(env.Score())*16
	if g.spawnInterval < 220 {
		g.spawnInterval = 220
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for _, r := range g.rocks {
		f.Set(r.x, r.y, types.RGB{R: 70, G: 25})
	}
	for _, b := range g.bullets {
		f.Set(b.x, b.y, types.RGB{R: 65, G: 65, B: 65})
	}
	f.Set(g.shipX, 7, types.RGB{G: 60, B: 10})
}
