package store

import (
	"io"
	"log/slog"

	"passvault/internal/domain"
)

// Locker serialises access to the vault file across processes.
type Locker interface {
	// Lock blocks until the lock is held and returns its release function.
	Lock() (unlock func() error, err error)
}

// WriteFunc replaces the file at path with the contents of r.
type WriteFunc func(path string, r io.Reader) error

// Option configures a VaultFileStore.
type Option func(*VaultFileStore)

// WithFormat selects the layout written by SaveCollection. Loading always
// accepts every known layout.
func WithFormat(v domain.FormatVersion) Option {
	return func(s *VaultFileStore) { s.format = v }
}

// WithLogger sets the logger. Secrets are never passed to it.
func WithLogger(l *slog.Logger) Option {
	return func(s *VaultFileStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLocker holds l around every save and load.
func WithLocker(l Locker) Option {
	return func(s *VaultFileStore) { s.lock = l }
}

// WithWriteFunc overrides how the sealed vault reaches disk. The default
// writes a temp file and renames it over the target.
func WithWriteFunc(w WriteFunc) Option {
	return func(s *VaultFileStore) {
		if w != nil {
			s.write = w
		}
	}
}
