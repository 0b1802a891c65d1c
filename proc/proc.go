// Package proc reads ptrace-related process state from procfs.
package proc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"
)

// Default mount point for procfs filesystems. The default mountpoint
// can be changed by setting the PROC environment variable:
//
//	export PROC=/tmp/proc
const Procfs = "/proc"

var (
	// ErrProcNotMounted is returned if /proc is not mounted or is
	// not a procfs filesystem.
	ErrProcNotMounted = errors.New("procfs not mounted")

	// ErrParseFailProcStatus is returned if /proc/<pid>/status is
	// malformed.
	ErrParseFailProcStatus = errors.New("unable to parse status")
)

func getenv(s, def string) string {
	v := os.Getenv(s)
	if v == "" {
		return def
	}
	return v
}

// Proc reads the ptrace state for a process.
type Proc struct {
	pid    int
	procfs string
}

type Option func(*Proc)

// SetPid sets the process inspected by the Proc. The default is the
// current process.
func SetPid(pid int) Option {
	return func(p *Proc) {
		p.pid = pid
	}
}

// SetProcfs overrides the procfs mount point.
func SetProcfs(procfs string) Option {
	return func(p *Proc) {
		p.procfs = procfs
	}
}

// New creates the default configuration state for reading procfs.
// Returns an error if /proc is not mounted or is not a procfs
// filesystem.
func New(opts ...Option) (*Proc, error) {
	p := &Proc{
		pid:    os.Getpid(),
		procfs: getenv("PROC", Procfs),
	}

	for _, opt := range opts {
		opt(p)
	}

	procfs, err := procfsPath(p.procfs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.procfs, err)
	}
	p.procfs = procfs

	return p, nil
}

// Pid retrieves the process identifier.
func (p *Proc) Pid() int {
	return p.pid
}

// Exists reports whether pid has an entry in procfs.
func (p *Proc) Exists(pid int) bool {
	_, err := os.Stat(fmt.Sprintf("%s/%d", p.procfs, pid))
	return err == nil
}

func procfsPath(path string) (string, error) {
	procfs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if err := isProcMounted(procfs); err != nil {
		return "", fmt.Errorf("%s: %w", procfs, err)
	}
	return procfs, nil
}

func isProcMounted(procfs string) error {
	var buf syscall.Statfs_t
	if err := syscall.Statfs(procfs, &buf); err != nil {
		return err
	}
	if buf.Type != unix.PROC_SUPER_MAGIC {
		return ErrProcNotMounted
	}
	return nil
}
