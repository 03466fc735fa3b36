// Command kconfig prints the -ldflags that build the board id into the
// hello program:
//
//	tinygo build -target feather-m4 -ldflags "$(go run ./cmd/kconfig feather_m4)" ./cmd/hello
//
// The board named on the command line wins.  Without one, the board comes
// from CONFIG_BOARD_TARGET (or CONFIG_BOARD) in $KCONFIG_CONFIG, or
// prj.conf.  If neither names a board nothing is printed, leaving the board
// to the build tag of the TinyGo target.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/merliot/hello/board"
	"github.com/merliot/hello/internal/kconfig"
)

func run(path, target string) (string, error) {
	if target != "" {
		if !board.Valid(target) {
			return "", fmt.Errorf("invalid board %q", target)
		}
		return kconfig.LDFlags(target), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cfg, err := kconfig.Parse(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	id, err := cfg.Board()
	if errors.Is(err, kconfig.ErrNoBoard) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return kconfig.LDFlags(id), nil
}

func main() {
	var target string
	switch len(os.Args) {
	case 1:
	case 2:
		target = os.Args[1]
	default:
		log.Fatalf("usage: %s [board]", os.Args[0])
	}

	flags, err := run(kconfig.Path(), target)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(flags)
}
