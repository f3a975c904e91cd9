package session

import (
	"crypto/subtle"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

// ErrLocked is returned by operations that need an open vault.
var ErrLocked = errors.New("vault is locked")

// Service is the explicit session object the CLI passes around instead of
// keeping the passphrase and credentials in globals.
type Service struct {
	vault domain.VaultStore
	creds domain.CredentialStore
	log   *slog.Logger

	mu         sync.Mutex
	passphrase []byte
	open       bool
}

// New constructs a Service over vault, editing creds in memory.
func New(vault domain.VaultStore, creds domain.CredentialStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{vault: vault, creds: creds, log: log}
}

// Open unlocks the existing vault. domain.ErrVaultNotFound means there is
// nothing to unlock yet and the caller may Create one.
func (s *Service) Open(passphrase []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.vault.LoadCollection(passphrase)
	if err != nil {
		return err
	}
	s.creds.Replace(creds)
	s.unlock(passphrase)
	s.log.Info("vault unlocked", "path", s.vault.Path(), "records", len(creds))
	return nil
}

// Create writes a new, empty vault protected by passphrase and opens it.
func (s *Service) Create(passphrase []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.vault.Exists()
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrVaultExists
	}
	if err := s.vault.SaveCollection(passphrase, domain.Collection{}); err != nil {
		return err
	}
	s.creds.Replace(nil)
	s.unlock(passphrase)
	s.log.Info("vault created", "path", s.vault.Path())
	return nil
}

// Add appends cred and saves. Unless allowDuplicate is set, a service that
// already exists (ignoring case) is rejected with domain.ErrDuplicateService.
func (s *Service) Add(cred domain.Credential, allowDuplicate bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrLocked
	}
	if !allowDuplicate {
		if _, ok := s.creds.Find(cred.Service); ok {
			return errors.Wrapf(domain.ErrDuplicateService, "%q", cred.Service)
		}
	}

	snapshot := s.creds.List()
	s.creds.Add(cred)
	return s.persist(snapshot)
}

// Remove deletes the first credential matching service and saves.
func (s *Service) Remove(service string) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.Credential{}, ErrLocked
	}

	snapshot := s.creds.List()
	removed, ok := s.creds.Remove(service)
	if !ok {
		return domain.Credential{}, errors.Wrapf(domain.ErrCredentialNotFound, "%q", service)
	}
	if err := s.persist(snapshot); err != nil {
		return domain.Credential{}, err
	}
	return removed, nil
}

// Find returns the first credential matching service, ignoring case.
func (s *Service) Find(service string) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.Credential{}, ErrLocked
	}
	cred, ok := s.creds.Find(service)
	if !ok {
		return domain.Credential{}, errors.Wrapf(domain.ErrCredentialNotFound, "%q", service)
	}
	return cred, nil
}

// List returns every credential in insertion order.
func (s *Service) List() domain.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.Collection{}
	}
	return s.creds.List()
}

// ConfirmPassphrase reports whether passphrase equals the one the vault was
// opened with. Used to re-authenticate destructive commands.
func (s *Service) ConfirmPassphrase(passphrase []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.open && subtle.ConstantTimeCompare(passphrase, s.passphrase) == 1
}

// Close wipes the passphrase copy and forgets the credentials.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	memzero.Zero(s.passphrase)
	s.passphrase = nil
	s.creds.Replace(nil)
	s.open = false
}

func (s *Service) unlock(passphrase []byte) {
	memzero.Zero(s.passphrase)
	s.passphrase = memzero.Clone(passphrase)
	s.open = true
}

// persist saves the current collection; on failure it restores snapshot so
// the caller observes no change.
func (s *Service) persist(snapshot domain.Collection) error {
	if err := s.vault.SaveCollection(s.passphrase, s.creds.List()); err != nil {
		s.creds.Replace(snapshot)
		s.log.Warn("vault save failed, change rolled back", "path", s.vault.Path(), "err", err)
		return err
	}
	s.log.Debug("vault updated", "records", s.creds.Len())
	return nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
