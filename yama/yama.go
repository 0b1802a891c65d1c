//go:build !linux
// +build !linux

// Package yama declares which processes may ptrace-attach to this one
// under a restrictive Yama scoping policy.
package yama

import (
	"golang.org/x/sys/unix"
)

// Set is disabled on this platform.
func Set(pid int) error {
	return unix.ENOSYS
}

// SetAllThreads is disabled on this platform.
func SetAllThreads(pid int) error {
	return unix.ENOSYS
}

// SetAny is disabled on this platform.
func SetAny() error {
	return unix.ENOSYS
}

// Clear is disabled on this platform.
func Clear() error {
	return unix.ENOSYS
}
