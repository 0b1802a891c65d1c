package yama_test

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/ptrace-tests/sleeper/yama"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

// Kernels built without the Yama LSM reject PR_SET_PTRACER with
// EINVAL.
func skipWithoutYama(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, unix.EINVAL) {
		t.Skipf("yama not available: %v", err)
	}
}

func TestSet(t *testing.T) {
	err := yama.Set(os.Getppid())
	skipWithoutYama(t, err)
	if err != nil {
		t.Errorf("%v", err)
	}
	if err := yama.Clear(); err != nil {
		t.Errorf("%v", err)
	}
}

func TestSetAny(t *testing.T) {
	err := yama.SetAny()
	skipWithoutYama(t, err)
	if err != nil {
		t.Errorf("%v", err)
	}
	if err := yama.Clear(); err != nil {
		t.Errorf("%v", err)
	}
}

func TestSetAllThreads(t *testing.T) {
	g := new(errgroup.Group)
	n := runtime.NumCPU() * 2

	for i := n; i > 0; i-- {
		g.Go(func() error {
			return yama.SetAllThreads(os.Getppid())
		})
	}

	err := g.Wait()
	skipWithoutYama(t, err)
	if err != nil {
		t.Errorf("%v", err)
	}
}
