package main

import (
	"github.com/merliot/hello"
	"github.com/merliot/hello/board"
	"github.com/merliot/hello/console"
)

func main() {
	hello.New(board.Target, console.New()).Run()
}
