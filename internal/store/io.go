package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"

	"passvault/internal/domain"
)

// readFile reads the vault at path. A missing file is domain.ErrVaultNotFound;
// anything else the filesystem reports is a *domain.IOError.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrVaultNotFound
	}
	if err != nil {
		return nil, &domain.IOError{Op: "read", Path: path, Err: err}
	}
	return b, nil
}

// writeFile streams r into a temp file beside path, fsyncs it, then renames
// it over the target. Until the rename the old file is untouched, and a
// failure removes the temp file. New files are created with mode 0600;
// existing files keep their mode.
func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return atomic.WriteFile(path, r)
}

// statFile reports whether path exists.
func statFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &domain.IOError{Op: "stat", Path: path, Err: err}
	}
	return true, nil
}
