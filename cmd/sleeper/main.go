package main

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ptrace-tests/sleeper/sleeper"

	"github.com/sirupsen/logrus"
)

var version = "0.1.0"

// Sentinel accepted on the command line for "declare no tracer".
const noTracer = -1

type stateT struct {
	tracer       int
	hasTracer    bool
	sleep        time.Duration
	singleThread bool
	verbose      bool
}

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, `%s v%s
Usage: %s [-verbose] [-single-thread] <tracer-pid> <sleep-seconds>

Declares <tracer-pid> as this process's permitted ptrace tracer
(-1 to declare none), then sleeps for <sleep-seconds> seconds while
an attach is attempted from outside.

Options:
  -single-thread
	declare the tracer on the calling thread only
  -verbose
	debug output

A -- argument ends option parsing: use it when <tracer-pid> is a
string that collides with an option name.
`, path.Base(os.Args[0]), version, os.Args[0])
}

// Options are scanned by hand: the first positional argument may be
// -1, which the flag package would reject as an undefined flag.
func args() *stateT {
	state := &stateT{}

	argv := os.Args[1:]

ArgParsing:
	for len(argv) > 0 {
		switch argv[0] {
		case "-single-thread":
			state.singleThread = true
			argv = argv[1:]
		case "-v", "-verbose":
			state.verbose = true
			argv = argv[1:]
		case "-h", "-help":
			usage()
			os.Exit(2)
		case "--":
			argv = argv[1:]
			break ArgParsing
		default:
			break ArgParsing
		}
	}

	if len(argv) < 2 {
		usage()
		// Hand control to an already attached debugger before
		// exiting: SIGINT is caught without needing symbol
		// information.
		_ = syscall.Kill(syscall.Getpid(), syscall.SIGINT)
		os.Exit(1)
	}

	tracer := atoi(argv[0])

	state.tracer = tracer
	state.hasTracer = tracer != noTracer
	state.sleep = time.Duration(atoi(argv[1])) * time.Second

	return state
}

func main() {
	state := args()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if state.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := []sleeper.Option{
		sleeper.SetSingleThread(state.singleThread),
		sleeper.SetLog(func(err error) {
			log.Warn(err)
		}),
	}
	if state.hasTracer {
		opts = append(opts, sleeper.SetTracer(state.tracer))
		log.WithField("tracer", state.tracer).Debug("declaring permitted tracer")
	}

	s := sleeper.New(opts...)

	log.WithField("duration", state.sleep).Debug("sleeping")
	s.Run(state.sleep)

	os.Exit(0)
}

// atoi converts with C atoi semantics: the longest leading integer
// prefix, or 0 if there is none. The companion test harness passes
// arguments through unvalidated.
func atoi(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
