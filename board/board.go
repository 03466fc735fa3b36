// Package board holds the identifier of the board the program was built for.
//
// Target is fixed at build time.  TinyGo builds for the boards listed in
// the target_*.go files get the board's name from a build tag, host builds
// get "native", and TinyGo builds for any other board leave it empty so
// the program refuses to start until it is set at link time:
//
//	tinygo build -target feather-m4 -ldflags "-X github.com/merliot/hello/board.Target=feather_m4" ./cmd/hello
package board

import "unicode"

// TargetVar is the fully qualified name of Target, for -ldflags -X
const TargetVar = "github.com/merliot/hello/board.Target"

// A valid board id is a non-empty string without whitespace or control
// characters, so the greeting stays on one line.
func Valid(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return len(s) > 0
}
