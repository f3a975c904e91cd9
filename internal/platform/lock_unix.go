//go:build linux || darwin || freebsd || netbsd || openbsd

package platform

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// FileLock is an advisory exclusive lock on a file beside the vault.
type FileLock struct {
	path string
}

// NewFileLock returns a lock on path. The file is created on first use.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// Lock blocks until the lock is held.
func (l *FileLock) Lock() (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return nil, errors.Wrap(err, "cannot create lock directory")
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open lock file")
	}
	fd := int(f.Fd())
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "cannot acquire lock")
	}
	return func() error {
		uerr := unix.Flock(fd, unix.LOCK_UN)
		cerr := f.Close()
		if uerr != nil {
			return errors.Wrap(uerr, "cannot release lock")
		}
		return cerr
	}, nil
}
