//go:build !tinygo

package board

var Target = "native"
