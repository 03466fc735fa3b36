//go:build metro_m4_airlift

package board

var Target = "metro_m4_airlift"
