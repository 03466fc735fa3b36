package hello

import (
	"errors"
	"runtime"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

// console records each write and the time it happened
type console struct {
	lines []string
	at    []time.Duration
	now   func() time.Duration
}

func (c *console) Write(p []byte) (int, error) {
	c.lines = append(c.lines, string(p))
	if c.now != nil {
		c.at = append(c.at, c.now())
	}
	return len(p), nil
}

// run starts h.Run on its own goroutine; the returned channel closes when
// the sleeper stops the task with runtime.Goexit
func run(h *Hello) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Run()
	}()
	return done
}

func TestEmptyBoard(t *testing.T) {
	// Target is left empty on TinyGo boards without a target file
	qt.Assert(t, func() { New("", &console{}) }, qt.PanicMatches,
		`board not set: build with -ldflags "-X github.com/merliot/hello/board.Target=<board>"`)
}

func TestOpaqueBoard(t *testing.T) {
	c := qt.New(t)
	for _, id := range []string{"board+rev", "a,b", "ünicode"} {
		h := New(id, &console{})
		c.Check(h.Greeting(), qt.Equals, "Hello World! "+id+"\n")
	}
}

func TestInvalidBoard(t *testing.T) {
	defer func() { _ = recover() }()
	// should panic, a newline would split the greeting
	New("test\nboard", &console{})
	t.Errorf("did not panic")
}

func TestNilConsole(t *testing.T) {
	defer func() { _ = recover() }()
	// should panic with nil console
	New("test_board", nil)
	t.Errorf("did not panic")
}

func TestNilSleeper(t *testing.T) {
	defer func() { _ = recover() }()
	// should panic with nil sleeper
	New("test_board", &console{}).WithSleeper(nil)
	t.Errorf("did not panic")
}

func TestGreeting(t *testing.T) {
	c := qt.New(t)
	h := New("test_board", &console{})
	c.Check(h.Board(), qt.Equals, "test_board")
	c.Check(h.Greeting(), qt.Equals, "Hello World! test_board\n")
	c.Check(h.State(), qt.Equals, StateEmitting)
}

func TestFirstLine(t *testing.T) {
	c := qt.New(t)
	var out console
	h := New("test_board", &out).WithSleeper(SleepFunc(func(time.Duration) {
		runtime.Goexit()
	}))
	<-run(h)
	c.Assert(out.lines, qt.HasLen, 1)
	c.Check(out.lines[0], qt.Equals, "Hello World! test_board\n")
}

func TestIdenticalLines(t *testing.T) {
	c := qt.New(t)
	var out console
	var sleeps []time.Duration
	h := New("pyportal", &out).WithSleeper(SleepFunc(func(d time.Duration) {
		sleeps = append(sleeps, d)
		if len(sleeps) == 10 {
			runtime.Goexit()
		}
	}))
	<-run(h)
	c.Assert(out.lines, qt.HasLen, 10)
	for i, line := range out.lines {
		c.Check(line, qt.Equals, out.lines[0], qt.Commentf("iteration %d", i))
	}
	for _, d := range sleeps {
		c.Check(d, qt.Equals, Period)
	}
}

func TestSimulatedSeconds(t *testing.T) {
	c := qt.New(t)
	var clock time.Duration
	out := console{now: func() time.Duration { return clock }}
	h := New("test_board", &out).WithSleeper(SleepFunc(func(d time.Duration) {
		clock += d
		if clock >= 3*time.Second {
			runtime.Goexit()
		}
	}))
	<-run(h)
	c.Assert(out.lines, qt.HasLen, 3)
	c.Check(out.at, qt.DeepEquals, []time.Duration{0, time.Second, 2 * time.Second})
	for _, line := range out.lines {
		c.Check(line, qt.Equals, "Hello World! test_board\n")
	}
}

func TestStillAlive(t *testing.T) {
	c := qt.New(t)
	var out console
	var n int
	alive := make(chan struct{})
	resume := make(chan struct{})
	h := New("test_board", &out).WithSleeper(SleepFunc(func(time.Duration) {
		n++
		switch n {
		case 5:
			alive <- struct{}{}
			<-resume
		case 6:
			runtime.Goexit()
		}
	}))
	done := run(h)

	<-alive
	c.Check(out.lines, qt.HasLen, 5)
	c.Check(h.State(), qt.Equals, StateSleeping)

	close(resume)
	<-done
	c.Assert(out.lines, qt.HasLen, 6)
	c.Check(out.lines[5], qt.Equals, out.lines[0])
}

func TestSleepState(t *testing.T) {
	c := qt.New(t)
	var during State
	h := New("test_board", &console{})
	h.WithSleeper(SleepFunc(func(time.Duration) { during = h.State() }))
	h.Sleep()
	c.Check(during, qt.Equals, StateSleeping)
	c.Check(h.State(), qt.Equals, StateEmitting)
}

func TestPeriod(t *testing.T) {
	if testing.Short() {
		t.Skip("sleeps a real second")
	}
	c := qt.New(t)
	start := time.Now()
	out := console{now: func() time.Duration { return time.Since(start) }}
	var n int
	h := New("test_board", &out).WithSleeper(SleepFunc(func(d time.Duration) {
		n++
		if n == 2 {
			runtime.Goexit()
		}
		time.Sleep(d)
	}))
	<-run(h)
	c.Assert(out.at, qt.HasLen, 2)
	c.Check(out.at[1]-out.at[0] >= time.Second, qt.IsTrue,
		qt.Commentf("interval %s", out.at[1]-out.at[0]))
}

type brokenConsole struct {
	writes int
}

func (b *brokenConsole) Write(p []byte) (int, error) {
	b.writes++
	return 0, errors.New("console full")
}

func TestWriteErrorIgnored(t *testing.T) {
	c := qt.New(t)
	var out brokenConsole
	var n int
	h := New("test_board", &out).WithSleeper(SleepFunc(func(time.Duration) {
		n++
		if n == 3 {
			runtime.Goexit()
		}
	}))
	<-run(h)
	c.Check(out.writes, qt.Equals, 3)
}

func TestStateString(t *testing.T) {
	c := qt.New(t)
	c.Check(StateEmitting.String(), qt.Equals, "emitting")
	c.Check(StateSleeping.String(), qt.Equals, "sleeping")
	c.Check(State(7).String(), qt.Equals, "unknown")
}
