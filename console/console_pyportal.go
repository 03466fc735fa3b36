//go:build pyportal

package console

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyterm"
)

func initTerminal() *tinyterm.Terminal {
	display := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)

	backlight := machine.TFT_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})

	display.Configure(ili9341.Config{})
	display.SetRotation(ili9341.Rotation270)
	display.FillScreen(black)

	backlight.High()

	return configure(tinyterm.NewTerminal(display))
}
