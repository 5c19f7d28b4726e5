package main

import (
	"fmt"
	"time"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/all"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/errcode"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	b, err := board.Open()
	if err != nil {
		println("board:", err.Error())
		return
	}
	if b.PanelStatus != errcode.OK {
		// The console runs fine without the text panel; note it and move on.
		fmt.Fprintln(b.Debug, "panel:", string(b.PanelStatus))
	}

	c := console.New(b, timex.NowMs())
	for {
		c.Tick(timex.NowMs())
		time.Sleep(time.Millisecond)
	}
}
