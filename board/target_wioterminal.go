//go:build wioterminal

package board

var Target = "wioterminal"
