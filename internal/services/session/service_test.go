package session_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
	"passvault/internal/services/session"
	"passvault/internal/store"
)

var (
	github = domain.Credential{Service: "github", Username: "alice", Secret: "xyz"}
	mail   = domain.Credential{Service: "mail", Username: "bob", Secret: "abc"}
)

func newSession(t *testing.T) (*session.Service, *store.VaultFileStore) {
	t.Helper()
	v := store.NewVaultFileStore(filepath.Join(t.TempDir(), "vault.dat"))
	return session.New(v, store.NewMemoryStore(nil), nil), v
}

func TestSession_OpenMissingVault(t *testing.T) {
	s, _ := newSession(t)

	err := s.Open([]byte("pw"))
	assert.ErrorIs(t, err, domain.ErrVaultNotFound)
	assert.ErrorIs(t, s.Add(github, false), session.ErrLocked)
}

func TestSession_CreateAddReopen(t *testing.T) {
	s, v := newSession(t)
	require.NoError(t, s.Create([]byte("hunter2")))
	require.NoError(t, s.Add(github, false))
	require.NoError(t, s.Add(mail, false))
	s.Close()
	assert.Empty(t, s.List())

	reopened := session.New(v, store.NewMemoryStore(nil), nil)
	require.NoError(t, reopened.Open([]byte("hunter2")))
	assert.Equal(t, domain.Collection{github, mail}, reopened.List())

	got, err := reopened.Find("GitHub")
	require.NoError(t, err)
	assert.Equal(t, github, got)
}

func TestSession_CreateRefusesExistingVault(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Create([]byte("pw")))

	assert.ErrorIs(t, s.Create([]byte("pw")), domain.ErrVaultExists)
}

func TestSession_OpenWrongPassphrase(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Create([]byte("right")))
	s.Close()

	assert.ErrorIs(t, s.Open([]byte("wrong")), domain.ErrWrongPasswordOrCorrupt)
	_, err := s.Find("github")
	assert.ErrorIs(t, err, session.ErrLocked)
}

func TestSession_DuplicateServices(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Create([]byte("pw")))
	require.NoError(t, s.Add(github, false))

	dup := domain.Credential{Service: "GITHUB", Username: "carol", Secret: "1"}
	assert.ErrorIs(t, s.Add(dup, false), domain.ErrDuplicateService)
	require.NoError(t, s.Add(dup, true))
	assert.Equal(t, domain.Collection{github, dup}, s.List())
}

func TestSession_Remove(t *testing.T) {
	s, v := newSession(t)
	require.NoError(t, s.Create([]byte("pw")))
	require.NoError(t, s.Add(github, false))
	require.NoError(t, s.Add(mail, false))

	removed, err := s.Remove("GITHUB")
	require.NoError(t, err)
	assert.Equal(t, github, removed)

	_, err = s.Remove("github")
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)

	onDisk, err := v.LoadCollection([]byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, domain.Collection{mail}, onDisk)
}

func TestSession_FailedSaveRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.dat")
	healthy := store.NewVaultFileStore(path)
	require.NoError(t, healthy.SaveCollection([]byte("pw"), domain.Collection{github, mail}))

	failing := &failingVault{VaultStore: healthy}
	s := session.New(failing, store.NewMemoryStore(nil), nil)
	require.NoError(t, s.Open([]byte("pw")))
	failing.fail = true

	assert.Error(t, s.Add(domain.Credential{Service: "new"}, false))
	assert.Equal(t, domain.Collection{github, mail}, s.List())

	_, err := s.Remove("github")
	assert.Error(t, err)
	assert.Equal(t, domain.Collection{github, mail}, s.List(), "order preserved after rollback")

	onDisk, err := healthy.LoadCollection([]byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, domain.Collection{github, mail}, onDisk)
}

func TestSession_ConfirmPassphrase(t *testing.T) {
	s, _ := newSession(t)
	assert.False(t, s.ConfirmPassphrase([]byte("pw")))

	pw := []byte("pw")
	require.NoError(t, s.Create(pw))
	// The session keeps its own copy.
	pw[0] = 'x'

	assert.True(t, s.ConfirmPassphrase([]byte("pw")))
	assert.False(t, s.ConfirmPassphrase([]byte("pW")))

	s.Close()
	assert.False(t, s.ConfirmPassphrase([]byte("pw")))
}

type failingVault struct {
	domain.VaultStore
	fail bool
}

func (f *failingVault) SaveCollection(passphrase []byte, creds domain.Collection) error {
	if f.fail {
		return &domain.IOError{Op: "write", Path: f.Path(), Err: errors.New("disk full")}
	}
	return f.VaultStore.SaveCollection(passphrase, creds)
}
