package sleeper_test

import (
	"fmt"
	"os"
	"time"

	"github.com/ptrace-tests/sleeper/sleeper"
)

func ExampleSleeper_Run() {
	s := sleeper.New(
		sleeper.SetTracer(os.Getppid()),
		sleeper.SetLog(func(err error) {
			fmt.Println(err)
		}),
	)

	// The parent may now attach for the next 10 seconds.
	s.Run(10 * time.Second)
}
