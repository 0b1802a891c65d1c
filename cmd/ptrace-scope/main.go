package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ptrace-tests/sleeper/proc"
)

func main() {
	var opts []proc.Option

	switch len(os.Args) {
	case 2:
		pid, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = append(opts, proc.SetPid(pid))
	case 1:
	default:
		fmt.Fprintln(os.Stderr, "usage: ptrace-scope [<pid>]")
		os.Exit(1)
	}

	p, err := proc.New(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scope, err := p.PtraceScope()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%d (%s)\n", int(scope), scope)

	tracer, err := p.TracerPid()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if tracer != 0 {
		fmt.Printf("tracer: %d\n", tracer)
	}
}
