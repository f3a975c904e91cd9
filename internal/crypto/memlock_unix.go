//go:build linux || darwin || freebsd || netbsd || openbsd

package crypto

import "golang.org/x/sys/unix"

// LockMemory asks the kernel to keep b out of swap. It may fail when the
// process exceeds RLIMIT_MEMLOCK; callers treat that as non-fatal.
func LockMemory(b []byte) error { return unix.Mlock(b) }

// UnlockMemory releases a LockMemory.
func UnlockMemory(b []byte) error { return unix.Munlock(b) }
