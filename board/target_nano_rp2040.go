//go:build nano_rp2040

package board

var Target = "nano_rp2040"
