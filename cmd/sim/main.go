// sim runs the console in a terminal: the LED matrix as colored
// blocks, the text panel beside it, buttons on the keyboard.
//
// Usage:
//
//	sim [--seed N] [--fps N]
//
// Keys:
//
//	Arrows / WASD  - D-pad
//	Space / Z      - action button
//	Esc / X        - select (hold-to-cancel is a tap here)
//	M              - mute (Left+Right chord in the menu)
//	Q / Ctrl+C     - quit
package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/all"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"
)

var (
	flagSeed int64
	flagFPS  int
)

var rootCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game console in the terminal",
	Run:   runSim,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from the clock)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "simulation tick rate")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("sim failed", "err", err)
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, args []string) {
	b, err := board.Open()
	if err != nil {
		log.Fatal("board", "err", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = timex.NowMs()
	}
	if flagFPS < 1 {
		flagFPS = 1
	}

	m := newModel(b, console.New(b, seed), time.Second/time.Duration(flagFPS))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal("tui", "err", err)
	}
}
