// Package all pulls in every game so a single blank import fills the
// registry in menu order.
package all

import (
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/asteroids"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/breakout"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/checkers"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/dino"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/flappy"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/minesweeper"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/pacman"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/pong"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/shooter"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/snake"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/tetris"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/tictactoe"
	_ "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/console/games/tug"
)
