package console

import (
	"strconv"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/mathx"
)

// Session-owned visuals. While Playing the active module draws the
// matrix; the menu and round-over screens belong to the session.

// RenderMatrix draws the frame for the current state.
func (s *Session) RenderMatrix(f *Frame, now int64) {
	switch s.state {
	case StateMenu:
		s.renderMenuMatrix(f, now)
	case StatePlaying:
		s.renderPlayingMatrix(f, now)
	case StateRoundOver:
		s.renderOverMatrix(f, now)
	}
}

func (s *Session) renderMenuMatrix(f *Frame, now int64) {
	f.Clear(types.Off)
	sweep := int((now / 140) % MatrixW)
	for y := 0; y < MatrixH; y++ {
		for x := 0; x < MatrixW; x++ {
			r := uint8((int64(x)*20 + now/9) & 0x3F)
			g := uint8((int64(y)*18 + now/13) & 0x3F)
			b := uint8((int64(x)*9 + int64(y)*11 + now/17) & 0x3F)
			if x == sweep {
				r = 70
			}
			f.Set(x, y, types.RGB{R: r / 2, G: g / 2, B: b / 2})
		}
	}
}

func (s *Session) renderPlayingMatrix(f *Frame, now int64) {
	if g := s.slot.Game(); g != nil {
		g.Render(&s.env, f, now)
	}
	if s.paused && (now/200)%2 == 1 {
		c := types.RGB{R: 50, G: 50}
		for i := 0; i < MatrixW; i++ {
			f.Set(0, i, c)
			f.Set(MatrixW-1, i, c)
			f.Set(i, 0, c)
			f.Set(i, MatrixH-1, c)
		}
	}
}

func (s *Session) renderOverMatrix(f *Frame, now int64) {
	f.Clear(types.Off)
	pat := (now / 240) % 2
	c := types.RGB{R: 55}
	if s.sb.lastWin {
		c = types.RGB{G: 45}
	}
	for y := 0; y < MatrixH; y++ {
		for x := 0; x < MatrixW; x++ {
			if ((x+y)%2 == 0) == (pat == 0) {
				f.Set(x, y, c)
			}
		}
	}
}

// RenderPanel draws the text panel for the current state. A nil panel
// (absent at boot) is a no-op; the session never notices.
func (s *Session) RenderPanel(p board.TextPanel, now int64) {
	if p == nil {
		return
	}
	p.Clear()
	switch s.state {
	case StateMenu:
		s.renderMenuPanel(p)
	case StatePlaying:
		s.renderPlayingPanel(p)
	case StateRoundOver:
		s.renderOverPanel(p)
	}
	_ = p.Flush()
}

const menuRows = 5

func (s *Session) renderMenuPanel(p board.TextPanel) {
	p.Write(0, 0, "NB6_Boy")
	if s.snd.Muted() {
		p.Write(92, 0, "MUTE")
	} else {
		p.Write(92, 0, "SND")
	}

	start := mathx.Clamp(s.menuIdx-2, 0, mathx.Max(0, len(s.specs)-menuRows))
	for i := 0; i < menuRows; i++ {
		idx := start + i
		if idx >= len(s.specs) {
			break
		}
		prefix := "  "
		if idx == s.menuIdx {
			prefix = "> "
		}
		p.Write(0, 14+i*10, prefix+s.specs[idx].Name)
	}
}

func (s *Session) renderPlayingPanel(p board.TextPanel) {
	if sp, ok := s.ActiveSpec(); ok {
		p.Write(0, 0, sp.Name)
	}
	if s.snd.Muted() {
		p.Write(98, 0, "MUTE")
	}

	if s.paused {
		p.Write(0, 16, "*** PAUSED ***")
		p.Write(0, 28, "PAUSE to resume")
	} else {
		p.Write(0, 16, "Score: "+strconv.Itoa(s.sb.current))
		p.Write(0, 28, "Best: "+strconv.Itoa(s.sb.High(s.slot.ID())))
	}
	p.Write(0, 50, "SEL -> Menu")
}

func (s *Session) renderOverPanel(p board.TextPanel) {
	if s.sb.lastWin {
		p.Write(0, 0, "Round Complete")
	} else {
		p.Write(0, 0, "Game Over")
	}
	if sp, ok := s.ActiveSpec(); ok {
		p.Write(0, 12, sp.Name)
	}
	p.Write(0, 24, s.sb.lastMsg)
	p.Write(0, 36, "Score: "+strconv.Itoa(s.sb.current))
	p.Write(0, 48, "Best: "+strconv.Itoa(s.sb.High(s.slot.ID())))
}
