// Package board is the hardware boundary of the console. The core only
// ever talks to these interfaces; the build-tagged files in this package
// bind them to real peripherals on RP2 targets and to recording fakes on
// the host.
package board

import (
	"io"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/errcode"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
)

// PixelStrip is the raw LED chain behind the matrix. Index is the
// physical position on the wire; the serpentine mapping from logical
// coordinates lives entirely in the console's frame surface.
type PixelStrip interface {
	SetIndex(i int, c types.RGB)
	Flush() error
}

// TextPanel is the secondary character display. x/y are pixel
// coordinates of the top-left corner of the string.
type TextPanel interface {
	Clear()
	Write(x, y int, s string)
	Flush() error
}

// Buzzer is the tone primitive. Start replaces any tone already
// sounding; duration is the caller's problem.
type Buzzer interface {
	Start(freqHz uint32)
	Stop()
}

// Buttons reads the raw debounced-by-nobody line level for one logical
// button. true means pressed.
type Buttons interface {
	Read(id types.ButtonID) bool
}

// Board bundles every peripheral the console needs. Panel is nil when
// the text display was not found at boot; the session keeps running on
// the matrix alone.
type Board struct {
	Pixels  PixelStrip
	Panel   TextPanel
	Buzzer  Buzzer
	Buttons Buttons

	// Debug is a best-effort log sink (UART on hardware, stdout on the
	// host). Never nil.
	Debug io.Writer

	// PanelStatus records how the text panel came up.
	PanelStatus errcode.Code
}
