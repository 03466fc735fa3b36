//go:build pyportal || wioterminal

// Package console picks the sink the greeting is written to.
package console

import (
	"image/color"
	"io"
	"os"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	font  = &proggy.TinySZ8pt7b
)

// New returns a console writing to both the serial console and a terminal
// scrolling on the board's display.
func New() io.Writer {
	terminal := initTerminal()
	if terminal == nil {
		println("display not available, serial console only")
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, terminal)
}

func configure(terminal *tinyterm.Terminal) *tinyterm.Terminal {
	terminal.Configure(&tinyterm.Config{
		Font:              font,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	return terminal
}
