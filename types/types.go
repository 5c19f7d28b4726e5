// Package types holds the small value types shared between the console
// core, the board layer and the frontends.
package types

// RGB is one 24-bit pixel colour on the matrix.
type RGB struct {
	R, G, B uint8
}

// Off is the all-black colour used to clear the matrix.
var Off = RGB{}

// ButtonID identifies one of the six logical buttons.
type ButtonID uint8

const (
	BtnUp ButtonID = iota
	BtnDown
	BtnLeft
	BtnRight
	BtnAct // action / pause
	BtnSel // select / cancel to menu
	ButtonCount
)

func (b ButtonID) String() string {
	switch b {
	case BtnUp:
		return "up"
	case BtnDown:
		return "down"
	case BtnLeft:
		return "left"
	case BtnRight:
		return "right"
	case BtnAct:
		return "act"
	case BtnSel:
		return "sel"
	default:
		return "unknown"
	}
}
