package interfaces

import domaintypes "passvault/internal/domain/types"

// VaultStore persists a credential collection under a master passphrase.
//
// LoadCollection returns domain.ErrVaultNotFound when nothing has been saved
// yet, domain.ErrWrongPasswordOrCorrupt when the file cannot be authenticated
// or decoded, and a *domain.IOError for filesystem failures. A failed
// SaveCollection leaves the previous vault untouched. Besides *domain.IOError
// it fails with a plain error when a field is not valid UTF-8 or randomness
// is unavailable.
//
// The default on-disk format (domain.FormatV1) extends the baseline
// salt || nonce || sealed layout (domain.FormatV0) with a "PVLT" magic and a
// version byte ahead of the salt, authenticated together with the salt. Both
// layouts are always readable.
type VaultStore interface {
	SaveCollection(passphrase []byte, creds domaintypes.Collection) error
	LoadCollection(passphrase []byte) (domaintypes.Collection, error)
	Exists() (bool, error)
	Path() string
}

// CredentialStore is the mutable in-memory list a session edits.
type CredentialStore interface {
	Add(cred domaintypes.Credential)
	Remove(service string) (domaintypes.Credential, bool)
	Find(service string) (domaintypes.Credential, bool)
	List() domaintypes.Collection
	Replace(creds domaintypes.Collection)
	Len() int
}
