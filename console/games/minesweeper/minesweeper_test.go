package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
)

func newEnv(seed int64) *console.Env {
	in := console.NewInput(&board.HostButtons{})
	snd := console.NewTones(&board.HostBuzzer{})
	return console.NewEnv(in, snd, rand.New(rand.NewSource(seed)))
}

func countMines(g *Game) int {
	n := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] == mine {
				n++
			}
		}
	}
	return n
}

func TestPlaceMinesKeepsSafeCellClear(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		env := newEnv(seed)
		g := &Game{}
		g.Init(env)
		g.placeMines(env, 4, 4)

		if got := countMines(g); got != mineCount {
			t.Fatalf("seed %d: %d mines, want %d", seed, got, mineCount)
		}
		if g.board[4][4] == mine {
			t.Fatalf("seed %d: mine on the first-reveal cell", seed)
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	env := newEnv(5)
	g := &Game{}
	g.Init(env)
	g.placeMines(env, 0, 0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] == mine {
				continue
			}
			want := uint8(0)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx >= 0 && nx < 8 && ny >= 0 && ny < 8 && g.board[ny][nx] == mine {
						want++
					}
				}
			}
			if g.board[y][x] != want {
				t.Fatalf("cell (%d,%d) count = %d, want %d", x, y, g.board[y][x], want)
			}
		}
	}
}

func TestFloodRevealsZeroRegion(t *testing.T) {
	env := newEnv(1)
	g := &Game{}
	g.Init(env)

	// Single mine in the far corner: everything else is one connected
	// zero-or-border region, so one flood reveals all 63 safe cells.
	g.board[7][7] = mine
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] == mine {
				continue
			}
			if x >= 6 && y >= 6 {
				g.board[y][x] = 1
			} else {
				g.board[y][x] = 0
			}
		}
	}
	g.first = false
	g.toReveal = 63

	g.flood(env, 0, 0)

	if g.toReveal != 0 {
		t.Fatalf("toReveal = %d after full flood, want 0", g.toReveal)
	}
	if g.state[7][7] == revealed {
		t.Fatal("flood crossed into the mine cell")
	}
	if env.Score() != 63 {
		t.Fatalf("score = %d, want 63", env.Score())
	}
}

func TestRevealMineShowsAllMines(t *testing.T) {
	env := newEnv(9)
	g := &Game{}
	g.Init(env)
	g.placeMines(env, 0, 0)
	g.first = false

	// Park the cursor on a mine and reveal it.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] == mine {
				g.cx, g.cy = x, y
			}
		}
	}
	res, done := g.reveal(env)
	if !done || res.Win {
		t.Fatalf("mine reveal result = (%+v, %v), want loss", res, done)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.board[y][x] == mine && g.state[y][x] != revealed {
				t.Fatalf("mine (%d,%d) hidden after loss", x, y)
			}
		}
	}
}
