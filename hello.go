package hello

import (
	"io"
	"time"

	"github.com/merliot/hello/board"
)

// Period is how long the task sleeps between greetings
const Period = time.Second

// Sleeper suspends the calling task for a duration
type Sleeper interface {
	Sleep(time.Duration)
}

// SleepFunc adapts a func to a Sleeper
type SleepFunc func(time.Duration)

func (f SleepFunc) Sleep(d time.Duration) { f(d) }

// State of the task
type State uint32

const (
	StateEmitting State = iota
	StateSleeping
)

func (s State) String() string {
	switch s {
	case StateEmitting:
		return "emitting"
	case StateSleeping:
		return "sleeping"
	}
	return "unknown"
}

// Hello is the main task.  It writes a greeting naming the board to the
// console, sleeps a Period, and does it again, forever.
type Hello struct {
	board    string
	greeting []byte
	out      io.Writer
	sleeper  Sleeper
	state    State
	mu       mutex
}

// New returns the task for boardId writing to out.  New panics if boardId is
// empty or not a valid board id, or if out is nil.
func New(boardId string, out io.Writer) *Hello {
	if boardId == "" {
		panic("board not set: build with -ldflags \"-X " + board.TargetVar + "=<board>\"")
	}
	if !board.Valid(boardId) {
		panic("invalid board: \"" + boardId + "\"")
	}
	if out == nil {
		panic("nil console for board \"" + boardId + "\"")
	}
	h := &Hello{
		board:   boardId,
		out:     out,
		sleeper: SleepFunc(time.Sleep),
		state:   StateEmitting,
	}
	h.greeting = []byte(h.Greeting())
	return h
}

// WithSleeper replaces the sleeper, which defaults to time.Sleep
func (h *Hello) WithSleeper(s Sleeper) *Hello {
	if s == nil {
		panic("nil sleeper")
	}
	h.sleeper = s
	return h
}

// Board returns the board id named in the greeting
func (h *Hello) Board() string { return h.board }

// Greeting is the line written each iteration, newline included
func (h *Hello) Greeting() string {
	return "Hello World! " + h.board + "\n"
}

// State returns whether the task is emitting or sleeping
func (h *Hello) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Hello) setState(s State) {
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

// Emit writes the greeting to the console.  The console is assumed to
// always be there; write errors are dropped.
func (h *Hello) Emit() {
	h.out.Write(h.greeting)
}

// Sleep suspends the task for one Period
func (h *Hello) Sleep() {
	h.setState(StateSleeping)
	h.sleeper.Sleep(Period)
	h.setState(StateEmitting)
}

// Run never returns
func (h *Hello) Run() {
	for {
		h.Emit()
		h.Sleep()
	}
}
