package interfaces

import domaintypes "passvault/internal/domain/types"

// SessionService owns the unlocked collection and the master passphrase for
// the lifetime of one CLI invocation.
type SessionService interface {
	Open(passphrase []byte) error
	Create(passphrase []byte) error
	Add(cred domaintypes.Credential, allowDuplicate bool) error
	Remove(service string) (domaintypes.Credential, error)
	Find(service string) (domaintypes.Credential, error)
	List() domaintypes.Collection
	ConfirmPassphrase(passphrase []byte) bool
	Close()
}

// PasswordGenerator produces random secrets.
type PasswordGenerator interface {
	Generate(length int) (string, error)
}
