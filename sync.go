//go:build !tinygo

package hello

import (
	sync "github.com/sasha-s/go-deadlock"
)

type mutex struct {
	sync.Mutex
}
