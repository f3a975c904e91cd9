package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrVaultNotFound is returned by a load when no vault file exists yet.
	// It is a first-run signal, not a failure.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrWrongPasswordOrCorrupt covers a wrong master password as well as a
	// truncated, tampered or otherwise unreadable vault. The two cases are
	// deliberately not distinguishable.
	ErrWrongPasswordOrCorrupt = errors.New("wrong master password or corrupted vault")

	// ErrVaultExists is returned when creating a vault over an existing one.
	ErrVaultExists = errors.New("vault already exists")

	// ErrCredentialNotFound is returned when no credential matches a service.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrDuplicateService is returned when adding a service that already exists
	// and duplicates were not requested.
	ErrDuplicateService = errors.New("service already exists")
)

// IOError reports a filesystem failure while reading or writing the vault.
// The vault on disk is left as it was before the failing operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("vault %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err wraps an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
