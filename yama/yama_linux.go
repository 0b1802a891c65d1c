// Package yama declares which processes may ptrace-attach to this one
// under a restrictive Yama scoping policy.
package yama

import (
	"syscall"

	"golang.org/x/sys/unix"
	"kernel.org/pub/linux/libs/security/libcap/psx"
)

// Set names pid as an additional process, beyond the default ancestry
// rule, permitted to attach to this process. The declaration is
// recorded for the calling thread.
func Set(pid int) error {
	return unix.Prctl(unix.PR_SET_PTRACER, uintptr(pid), 0, 0, 0)
}

// SetAllThreads names pid as a permitted tracer on every thread of
// the process. Yama records the tracer relation per thread and the
// runtime schedules goroutines on any thread.
func SetAllThreads(pid int) error {
	if _, _, errno := psx.Syscall3(syscall.SYS_PRCTL, unix.PR_SET_PTRACER, uintptr(pid), 0); errno != 0 {
		return errno
	}
	return nil
}

// SetAny permits any process to attach. PR_SET_PTRACER_ANY is
// (unsigned long)-1 in the kernel headers.
func SetAny() error {
	return unix.Prctl(unix.PR_SET_PTRACER, ^uintptr(0), 0, 0, 0)
}

// Clear revokes a previous declaration on the calling thread.
func Clear() error {
	return unix.Prctl(unix.PR_SET_PTRACER, 0, 0, 0, 0)
}
