// Package sleeper implements a ptrace test fixture: a process that
// optionally declares a permitted tracer and then sleeps, giving an
// external harness a window to attempt a debugger attach.
package sleeper

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ptrace-tests/sleeper/yama"
)

// Sleeper declares a permitted tracer and blocks while an attach is
// attempted from outside. The tracer is absent by default: a Sleeper
// without SetTracer or SetTracerAny only sleeps.
type Sleeper struct {
	tracer       int
	hasTracer    bool
	any          bool
	singleThread bool
	log          func(error)

	sigch chan os.Signal
}

type Option func(*Sleeper)

// SetTracer declares pid as the sole permitted tracer.
func SetTracer(pid int) Option {
	return func(s *Sleeper) {
		s.tracer = pid
		s.hasTracer = true
	}
}

// SetTracerAny permits any process to attach.
func SetTracerAny() Option {
	return func(s *Sleeper) {
		s.any = true
	}
}

// SetSingleThread restricts the declaration to the calling thread.
// The default declares the tracer on all runtime threads.
func SetSingleThread(b bool) Option {
	return func(s *Sleeper) {
		s.singleThread = b
	}
}

// SetLog sets the logger for errors on the best-effort path.
func SetLog(f func(error)) Option {
	return func(s *Sleeper) {
		s.log = f
	}
}

func New(opts ...Option) *Sleeper {
	s := &Sleeper{}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = func(error) {}
	}

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch)
	s.sigch = sigch

	return s
}

// Declare performs the configured tracer declaration. Declare is a
// no-op when no tracer is configured.
func (s *Sleeper) Declare() error {
	switch {
	case s.any:
		return yama.SetAny()
	case !s.hasTracer:
		return nil
	case s.singleThread:
		return yama.Set(s.tracer)
	default:
		return yama.SetAllThreads(s.tracer)
	}
}

// Sleep blocks for d. It returns nil after the full duration, or the
// delivered signal if one arrives first. Runtime housekeeping signals
// do not end the sleep.
func (s *Sleeper) Sleep(d time.Duration) os.Signal {
	t := time.NewTimer(d)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			return nil
		case sig := <-s.sigch:
			switch sig.(syscall.Signal) {
			case syscall.SIGCHLD, syscall.SIGIO, syscall.SIGPIPE, syscall.SIGURG:
			default:
				return sig
			}
		}
	}
}

// Run declares the tracer and sleeps. A failed declaration is
// reported to the logger and otherwise ignored: the attach window
// opens either way and the harness observes the attach result.
func (s *Sleeper) Run(d time.Duration) {
	if err := s.Declare(); err != nil {
		s.log(fmt.Errorf("declare tracer: %w", err))
	}
	s.Sleep(d)
}
