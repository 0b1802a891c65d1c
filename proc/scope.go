package proc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Scope is the system-wide Yama ptrace scope policy.
type Scope int

const (
	// ScopeClassic: any process may attach to its descendants.
	ScopeClassic Scope = iota
	// ScopeRestricted: the tracer must be an ancestor of the tracee
	// or declared with PR_SET_PTRACER.
	ScopeRestricted
	// ScopeAdminOnly: attaching requires CAP_SYS_PTRACE.
	ScopeAdminOnly
	// ScopeNoAttach: attaching is disabled until reboot.
	ScopeNoAttach
)

func (s Scope) String() string {
	switch s {
	case ScopeClassic:
		return "classic"
	case ScopeRestricted:
		return "restricted"
	case ScopeAdminOnly:
		return "admin-only"
	case ScopeNoAttach:
		return "no-attach"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ErrScopeNotSupported is returned if the kernel was built without
// the Yama security module.
var ErrScopeNotSupported = errors.New("yama ptrace scope not supported")

// PtraceScope returns the current Yama ptrace scope.
func (p *Proc) PtraceScope() (Scope, error) {
	b, err := os.ReadFile(p.procfs + "/sys/kernel/yama/ptrace_scope")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ScopeClassic, ErrScopeNotSupported
		}
		return ScopeClassic, err
	}

	n, err := strconv.Atoi(string(bytes.TrimSpace(b)))
	if err != nil {
		return ScopeClassic, fmt.Errorf("ptrace_scope: %w", err)
	}
	return Scope(n), nil
}
