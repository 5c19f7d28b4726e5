//go:build rp2040 || rp2350

package board

import (
	"image/color"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/tone"
	"tinygo.org/x/drivers/ws2812"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/errcode"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/types"
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"
)

// XIAO RP2040 pin map. D-pin silk: D10=matrix, D3/D9/D2/D7=dpad,
// D6=act, D1=sel, D0=buzzer, D4/D5=I2C1.
const (
	pinMatrix = machine.GPIO3
	pinBuzzer = machine.GPIO26
	pinSDA    = machine.GPIO6
	pinSCL    = machine.GPIO7

	matrixCount = 64

	oledAddr   = 0x3C
	oledWidth  = 128
	oledHeight = 64
)

var buttonPins = [types.ButtonCount]machine.Pin{
	types.BtnUp:    machine.GPIO29,
	types.BtnDown:  machine.GPIO4,
	types.BtnLeft:  machine.GPIO28,
	types.BtnRight: machine.GPIO1,
	types.BtnAct:   machine.GPIO0,
	types.BtnSel:   machine.GPIO27,
}

// Open configures every peripheral and returns the assembled board.
// A missing text panel is tolerated: Panel is left nil and PanelStatus
// carries the code.
func Open() (*Board, error) {
	b := &Board{PanelStatus: errcode.OK}

	// Debug serial on UART0 default pins.
	_ = uartx.UART0.Configure(uartx.UARTConfig{BaudRate: 115200})
	b.Debug = uartx.UART0

	// Matrix.
	pinMatrix.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.Pixels = &rpPixels{dev: ws2812.NewWS2812(pinMatrix)}

	// Text panel on i2c1 @ 400 kHz.
	i2c := machine.I2C1
	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       pinSDA,
		SCL:       pinSCL,
	})
	if err == nil {
		// Probe before handing the bus to the driver so a missing
		// panel degrades instead of wedging every frame.
		err = i2c.Tx(oledAddr, []byte{0x00}, nil)
	}
	if err != nil {
		b.PanelStatus = errcode.DisplayAbsent
	} else {
		dev := ssd1306.NewI2C(i2c)
		dev.Configure(ssd1306.Config{
			Address: oledAddr,
			Width:   oledWidth,
			Height:  oledHeight,
		})
		b.Panel = &rpPanel{dev: &dev}
	}

	// Buzzer. GPIO26 sits on PWM slice 5.
	pwm := machine.PWM5
	sp, err := tone.New(pwm, pinBuzzer)
	if err != nil {
		return nil, errcode.BuzzerInit
	}
	b.Buzzer = &rpBuzzer{sp: sp}

	for _, p := range buttonPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	b.Buttons = rpButtons{}

	return b, nil
}

// ---- pixels ----

type rpPixels struct {
	dev ws2812.Device
	buf [matrixCount]color.RGBA
}

func (p *rpPixels) SetIndex(i int, c types.RGB) {
	if i < 0 || i >= matrixCount {
		return
	}
	p.buf[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (p *rpPixels) Flush() error {
	return p.dev.WriteColors(p.buf[:])
}

// ---- text panel ----

var panelWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

type rpPanel struct {
	dev *ssd1306.Device
}

func (p *rpPanel) Clear() { p.dev.ClearBuffer() }

func (p *rpPanel) Write(x, y int, s string) {
	// tinyfont draws from the baseline; callers pass the top edge.
	tinyfont.WriteLine(p.dev, &proggy.TinySZ8pt7b, int16(x), int16(y)+7, s, panelWhite)
}

func (p *rpPanel) Flush() error { return p.dev.Display() }

// ---- buzzer ----

type rpBuzzer struct {
	sp tone.Speaker
}

func (z *rpBuzzer) Start(freqHz uint32) {
	if freqHz == 0 {
		z.sp.Stop()
		return
	}
	z.sp.SetPeriod(timex.PeriodFromHz(freqHz))
}

func (z *rpBuzzer) Stop() { z.sp.Stop() }

// ---- buttons ----

type rpButtons struct{}

// Read returns true when pressed; lines are pull-up, active low.
func (rpButtons) Read(id types.ButtonID) bool {
	if id >= types.ButtonCount {
		return false
	}
	return !buttonPins[id].Get()
}
