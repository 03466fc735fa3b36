//go:build wioterminal

package console

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyterm"
)

func initTerminal() *tinyterm.Terminal {
	err := machine.SPI3.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40000000,
	})
	if err != nil {
		println("SPI3 configure error:", err.Error())
		return nil
	}

	display := ili9341.NewSPI(
		machine.SPI3,
		machine.LCD_DC,
		machine.LCD_SS_PIN,
		machine.LCD_RESET,
	)

	backlight := machine.LCD_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})

	display.Configure(ili9341.Config{})
	display.SetRotation(ili9341.Rotation270)
	display.FillScreen(black)

	backlight.High()

	return configure(tinyterm.NewTerminal(display))
}
