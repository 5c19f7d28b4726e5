package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

// Terminals deliver key-down events only, so a key press becomes a
// synthetic hold on the raw line for this long.
const keyHoldMs = 120

// tickMsg drives one simulation step.
type tickMsg time.Time

type model struct {
	b *board.Board
	c *console.Console

	pixels  *board.HostPixels
	panel   *board.HostPanel
	buzzer  *board.HostBuzzer
	buttons *board.HostButtons

	// releaseAt[id] is when the synthetic hold on that line ends.
	releaseAt [types.ButtonCount]int64

	interval time.Duration
}

func newModel(b *board.Board, c *console.Console, interval time.Duration) *model {
	return &model{
		b:        b,
		c:        c,
		pixels:   b.Pixels.(*board.HostPixels),
		panel:    b.Panel.(*board.HostPanel),
		buzzer:   b.Buzzer.(*board.HostBuzzer),
		buttons:  b.Buttons.(*board.HostButtons),
		interval: interval,
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return m.tick() }

func (m *model) hold(now int64, ids ...types.ButtonID) {
	for _, id := range ids {
		m.buttons.Press(id)
		m.releaseAt[id] = now + keyHoldMs
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := time.Now().UnixMilli()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "w":
			m.hold(now, types.BtnUp)
		case "down", "s":
			m.hold(now, types.BtnDown)
		case "left", "a":
			m.hold(now, types.BtnLeft)
		case "right", "d":
			m.hold(now, types.BtnRight)
		case " ", "z":
			m.hold(now, types.BtnAct)
		case "esc", "x":
			m.hold(now, types.BtnSel)
		case "m":
			// Mute chord.
			m.hold(now, types.BtnLeft, types.BtnRight)
		}
		return m, nil

	case tickMsg:
		for id := types.ButtonID(0); id < types.ButtonCount; id++ {
			if m.buttons.Level[id] && now >= m.releaseAt[id] {
				m.buttons.Release(id)
			}
		}
		m.c.Tick(now)
		return m, m.tick()
	}
	return m, nil
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Faint(true)
	toneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// matrixView renders the logical 8x8 grid. Shown is in physical chain
// order, so odd rows read right to left.
func (m *model) matrixView() string {
	var sb strings.Builder
	for y := 0; y < console.MatrixH; y++ {
		for x := 0; x < console.MatrixW; x++ {
			idx := y*console.MatrixW + x
			if y%2 == 1 {
				idx = y*console.MatrixW + (console.MatrixW - 1 - x)
			}
			c := m.pixels.Shown[idx]
			hex := fmt.Sprintf("#%02x%02x%02x", scale(c.R), scale(c.G), scale(c.B))
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
		}
		if y < console.MatrixH-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// scale lifts LED brightness values into the visible terminal range.
// The firmware runs the matrix dim; a terminal block at 40/255 is
// nearly black.
func scale(v uint8) uint8 {
	s := int(v) * 2
	if v != 0 && s < 60 {
		s = 60
	}
	if s > 255 {
		s = 255
	}
	return uint8(s)
}

// panelView lays recorded text writes onto a 21x8 character cell grid,
// one cell per 6x8 pixel glyph box.
func (m *model) panelView() string {
	var grid [8][21]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for _, w := range m.panel.Visible {
		cx, cy := w.X/6, w.Y/8
		if cy < 0 || cy >= 8 {
			continue
		}
		for i := 0; i < len(w.S); i++ {
			if cx+i >= 0 && cx+i < 21 {
				grid[cy][cx+i] = w.S[i]
			}
		}
	}
	lines := make([]string, len(grid))
	for y := range grid {
		lines[y] = string(grid[y][:])
	}
	return strings.Join(lines, "\n")
}

func (m *model) View() string {
	tone := " "
	if m.buzzer.On {
		tone = toneStyle.Render(fmt.Sprintf("♪ %d Hz", m.buzzer.Freq))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		frameStyle.Render(m.matrixView()),
		" ",
		frameStyle.Render(m.panelView()),
	)
	help := helpStyle.Render("arrows/wasd move · space/z action · esc/x select · m mute · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, tone, help)
}
