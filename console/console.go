//go:build !(pyportal || wioterminal)

// Package console picks the sink the greeting is written to.
package console

import (
	"io"
	"os"
)

// New returns the console for the build.  On host builds this is stdout;
// under TinyGo stdout is the board's serial/USB console.
func New() io.Writer {
	return os.Stdout
}
