//go:build matrixportal_m4

package board

var Target = "matrixportal_m4"
