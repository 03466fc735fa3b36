//go:build pyportal

package board

var Target = "pyportal"
