package proc_test

import (
	"errors"
	"os"
	"testing"

	"github.com/ptrace-tests/sleeper/proc"
)

func TestNew(t *testing.T) {
	p, err := proc.New()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if pid := os.Getpid(); pid != p.Pid() {
		t.Errorf("pid = %d, want %d", p.Pid(), pid)
		return
	}
}

func TestNewWithProcfs(t *testing.T) {
	procfs := "/bin"
	if err := os.Setenv("PROC", procfs); err != nil {
		t.Errorf("%v", err)
		return
	}
	_, err := proc.New()
	if err == nil {
		t.Errorf("non-existent procfs %s", procfs)
		return
	}
	if !errors.Is(err, proc.ErrProcNotMounted) {
		t.Errorf("procfs error = %v, want %v", err, proc.ErrProcNotMounted)
		return
	}
	if err := os.Unsetenv("PROC"); err != nil {
		t.Errorf("%v", err)
		return
	}
}

func TestTracerPid(t *testing.T) {
	p, err := proc.New()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	tracer, err := p.TracerPid()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if tracer < 0 {
		t.Errorf("tracer pid = %d", tracer)
		return
	}
}

func TestExists(t *testing.T) {
	p, err := proc.New()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if !p.Exists(os.Getpid()) {
		t.Errorf("pid %d not found", os.Getpid())
		return
	}
}

func TestPtraceScope(t *testing.T) {
	p, err := proc.New()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	scope, err := p.PtraceScope()
	if errors.Is(err, proc.ErrScopeNotSupported) {
		t.Skipf("%v", err)
	}
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if scope < proc.ScopeClassic || scope > proc.ScopeNoAttach {
		t.Errorf("scope = %d", scope)
		return
	}
}

func TestScopeString(t *testing.T) {
	for _, tc := range []struct {
		scope proc.Scope
		want  string
	}{
		{proc.ScopeClassic, "classic"},
		{proc.ScopeRestricted, "restricted"},
		{proc.ScopeAdminOnly, "admin-only"},
		{proc.ScopeNoAttach, "no-attach"},
		{proc.Scope(9), "unknown(9)"},
	} {
		if got := tc.scope.String(); got != tc.want {
			t.Errorf("Scope(%d) = %q, want %q", int(tc.scope), got, tc.want)
		}
	}
}
