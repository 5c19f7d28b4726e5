// Package checkers implements draughts on the full matrix with forced
// captures and kings, in two-player and AI variants. The AI favors
// captures, then promotion, then forward progress, with a little noise
// so it does not play the same game twice.
package checkers

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

func init() {
	console.Register(console.Spec{
		ID:        console.GameCheckersAI,
		Name:      "Checkers AI",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{ai: true} },
	})
	console.Register(console.Spec{
		ID:        console.GameCheckers2P,
		Name:      "Checkers 2P",
		ClaimsAct: true,
		New:       func() console.Game { return &Game{} },
	})
}

// Cell values: 0 empty, 1 p1 man, 2 p1 king, 3 p2 man, 4 p2 king.
const (
	empty  = 0
	p1Man  = 1
	p1King = 2
	p2Man  = 3
	p2King = 4
)

type move struct {
	x, y    int
	capture bool
}

type Game struct {
	ai    bool
	board [8][8]uint8

	cx, cy int
	sx, sy int // selected piece, -1 when none
	turn   uint8

	validMoves []move

	waitingAI bool
	aiTime    int64
}

func (g *Game) Init(env *console.Env) {
	g.board = [8][8]uint8{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 1 {
				g.board[y][x] = p2Man
			}
		}
	}
	for y := 5; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 1 {
				g.board[y][x] = p1Man
			}
		}
	}
	g.cx, g.cy = 0, 5
	g.sx, g.sy = -1, -1
	g.turn = 1
	g.validMoves = nil
	g.waitingAI = false
}

var dirs = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

func (g *Game) getMoves(x, y int) []move {
	p := g.board[y][x]
	if p == empty {
		return nil
	}
	isP1 := p == p1Man || p == p1King
	isKing := p == p1King || p == p2King

	var moves []move
	for _, d := range dirs {
		if !isKing {
			if isP1 && d[1] > 0 {
				continue
			}
			if !isP1 && d[1] < 0 {
				continue
			}
		}
		mx, my := x+d[0], y+d[1]
		jx, jy := x+d[0]*2, y+d[1]*2
		if jx < 0 || jx > 7 || jy < 0 || jy > 7 {
			continue
		}
		mid := g.board[my][mx]
		theirs := (isP1 && (mid == p2Man || mid == p2King)) ||
			(!isP1 && (mid == p1Man || mid == p1King))
		if theirs && g.board[jy][jx] == empty {
			moves = append(moves, move{jx, jy, true})
		}
	}
	if len(moves) > 0 {
		return moves // forced capture
	}

	for _, d := range dirs {
		if !isKing {
			if isP1 && d[1] > 0 {
				continue
			}
			if !isP1 && d[1] < 0 {
				continue
			}
		}
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < 8 && ny >= 0 && ny < 8 && g.board[ny][nx] == empty {
			moves = append(moves, move{nx, ny, false})
		}
	}
	return moves
}

func (g *Game) execute(env *console.Env, fx, fy, tx, ty int) {
	p := g.board[fy][fx]
	g.board[ty][tx] = p
	g.board[fy][fx] = empty

	if tx-fx == 2 || fx-tx == 2 {
		g.board[(fy+ty)/2][(fx+tx)/2] = empty
		env.AddScore(10)
		env.Snd.BeepScore()
	}

	if p == p1Man && ty == 0 {
		g.board[ty][tx] = p1King
		env.Snd.BeepWin()
	}
	if p == p2Man && ty == 7 {
		g.board[ty][tx] = p2King
		env.Snd.BeepWin()
	}

	g.turn = 3 - g.turn
	g.sx, g.sy = -1, -1
	g.validMoves = nil
}

func (g *Game) aiMove(env *console.Env) bool {
	bestScore := -9999
	var best [4]int
	found := false

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] != p2Man && g.board[y][x] != p2King {
				continue
			}
			for _, m := range g.getMoves(x, y) {
				s := 0
				if m.capture {
					s += 100
				}
				if m.y == 7 {
					s += 50
				}
				s += m.y * 5
				s += env.Rand.Intn(6)
				if s > bestScore {
					bestScore = s
					best = [4]int{x, y, m.x, m.y}
					found = true
				}
			}
		}
	}

	if found {
		g.execute(env, best[0], best[1], best[2], best[3])
	}
	return found
}

func (g *Game) Advance(env *console.Env, now int64) (console.RoundResult, bool) {
	if g.ai && g.turn == 2 {
		if !g.waitingAI {
			g.waitingAI = true
			g.aiTime = now + 500
		} else if now >= g.aiTime {
			g.waitingAI = false
			if !g.aiMove(env) {
				return console.RoundResult{Win: true, Msg: "P1 Wins"}, true
			}
		}
		return console.RoundResult{}, false
	}

	in := env.In
	if in.TakePress(types.BtnUp) && g.cy > 0 {
		g.cy--
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnDown) && g.cy < 7 {
		g.cy++
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnLeft) && g.cx > 0 {
		g.cx--
		env.Snd.BeepButton()
	}
	if in.TakePress(types.BtnRight) && g.cx < 7 {
		g.cx++
		env.Snd.BeepButton()
	}

	if in.TakePress(types.BtnAct) {
		if g.sx == -1 {
			p := g.board[g.cy][g.cx]
			mine := (g.turn == 1 && (p == p1Man || p == p1King)) ||
				(g.turn == 2 && (p == p2Man || p == p2King))
			if mine {
				g.sx, g.sy = g.cx, g.cy
				g.validMoves = g.getMoves(g.sx, g.sy)
				if len(g.validMoves) == 0 {
					g.sx = -1
					env.Snd.BeepHit()
				} else {
					env.Snd.BeepButton()
				}
			} else {
				env.Snd.BeepHit()
			}
		} else if g.cx == g.sx && g.cy == g.sy {
			g.sx = -1
			g.validMoves = nil
			env.Snd.BeepButton()
		} else {
			valid := false
			for _, m := range g.validMoves {
				if m.x == g.cx && m.y == g.cy {
					g.execute(env, g.sx, g.sy, g.cx, g.cy)
					valid = true
					break
				}
			}
			if !valid {
				env.Snd.BeepHit()
			}
		}
	}
	return console.RoundResult{}, false
}

func (g *Game) Render(env *console.Env, f *console.Frame, now int64) {
	f.Clear(types.Off)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 1 {
				c := types.RGB{R: 15, G: 15, B: 15}
				switch g.board[y][x] {
				case p1Man:
					c = types.RGB{G: 70}
				case p1King:
					c = types.RGB{R: 50, G: 200, B: 50}
				case p2Man:
					c = types.RGB{R: 70}
				case p2King:
					c = types.RGB{R: 200, G: 50, B: 50}
				}
				f.Set(x, y, c)
			} else {
				f.Set(x, y, types.RGB{R: 5, G: 5, B: 5})
			}
		}
	}

	if g.sx != -1 {
		f.Set(g.sx, g.sy, types.RGB{R: 100, G: 100})
	}
	for _, m := range g.validMoves {
		f.Set(m.x, m.y, types.RGB{R: 50, G: 50})
	}

	if !g.ai || g.turn == 1 {
		if (now/300)%2 == 1 {
			f.Set(g.cx, g.cy, types.RGB{R: 80, G: 80, B: 80})
		}
	}

	if g.ai && g.waitingAI && (now/200)%2 == 1 {
		for i := 0; i < 8; i++ {
			f.Set(i, 0, types.RGB{R: 40})
			f.Set(i, 7, types.RGB{R: 40})
		}
	}
}
