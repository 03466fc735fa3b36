//go:build pico

package board

var Target = "pico"
