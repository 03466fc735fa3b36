//go:build arduino_mkrwifi1010

package board

var Target = "arduino_mkrwifi1010"
