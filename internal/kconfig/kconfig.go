// Package kconfig reads Kconfig-style configuration files (.config,
// prj.conf) and turns the board setting into linker flags for the board
// package.
package kconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/merliot/hello/board"
)

// ErrNoBoard is returned by Config.Board when the config names no board
var ErrNoBoard = errors.New("neither CONFIG_BOARD_TARGET nor CONFIG_BOARD is set")

// Config maps symbol names (CONFIG_FOO) to values.  Symbols marked
// "is not set" are present with ok == false from Get.
type Config struct {
	values map[string]string
	unset  map[string]bool
}

func Parse(r io.Reader) (Config, error) {
	cfg := Config{
		values: make(map[string]string),
		unset:  make(map[string]bool),
	}

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			// "# CONFIG_FOO is not set"
			if name, ok := notSet(line); ok {
				delete(cfg.values, name)
				cfg.unset[name] = true
			}
			continue
		}
		name, value, err := parseLine(line)
		if err != nil {
			return Config{}, fmt.Errorf("line %d: %w", n, err)
		}
		delete(cfg.unset, name)
		cfg.values[name] = value
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return cfg, nil
}

func notSet(line string) (string, bool) {
	fields := strings.Fields(strings.TrimPrefix(line, "#"))
	if len(fields) == 4 && fields[2] == "not" && fields[3] == "set" &&
		fields[1] == "is" && strings.HasPrefix(fields[0], "CONFIG_") {
		return fields[0], true
	}
	return "", false
}

func parseLine(line string) (name, value string, err error) {
	name, raw, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("missing '=' in %q", line)
	}
	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "CONFIG_") || len(name) == len("CONFIG_") {
		return "", "", fmt.Errorf("bad symbol name %q", name)
	}

	tokens, err := shlex.Split(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", name, err)
	}
	switch len(tokens) {
	case 0:
		return name, "", nil
	case 1:
		return name, tokens[0], nil
	}
	return "", "", fmt.Errorf("%s: more than one value in %q", name, raw)
}

// Get returns the value of symbol name
func (c Config) Get(name string) (string, bool) {
	value, ok := c.values[name]
	return value, ok
}

// Board returns the board id from CONFIG_BOARD_TARGET, or from CONFIG_BOARD
// if the target isn't set
func (c Config) Board() (string, error) {
	id, ok := c.Get("CONFIG_BOARD_TARGET")
	if !ok || id == "" {
		id, ok = c.Get("CONFIG_BOARD")
	}
	if !ok || id == "" {
		return "", ErrNoBoard
	}
	if !board.Valid(id) {
		return "", fmt.Errorf("invalid board %q", id)
	}
	return id, nil
}

// LDFlags returns the -ldflags value that sets the board id at link time
func LDFlags(boardId string) string {
	return "-X " + board.TargetVar + "=" + boardId
}
