package yama_test

import (
	"fmt"
	"os"

	"github.com/ptrace-tests/sleeper/yama"
)

func ExampleSet() {
	if err := yama.Set(os.Getppid()); err != nil {
		fmt.Println("failed to declare tracer:", err)
	}
}

func ExampleSetAny() {
	if err := yama.SetAny(); err != nil {
		fmt.Println("failed to declare tracer:", err)
	}
}
