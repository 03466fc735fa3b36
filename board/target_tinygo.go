//go:build tinygo && !(pyportal || wioterminal || nano_rp2040 || pico || metro_m4_airlift || matrixportal_m4 || arduino_mkrwifi1010)

package board

// Unknown board: set with -ldflags "-X github.com/merliot/hello/board.Target=<board>"
var Target string
