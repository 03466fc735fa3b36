//go:build tinygo

package hello

import (
	"sync"
)

type mutex struct {
	sync.Mutex
}
