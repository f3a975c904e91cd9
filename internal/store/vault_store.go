package store

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

// VaultFileStore persists a credential collection as a single encrypted file.
type VaultFileStore struct {
	path   string
	format domain.FormatVersion
	log    *slog.Logger
	lock   Locker
	write  WriteFunc
	mu     sync.Mutex
}

// NewVaultFileStore returns a VaultFileStore for the file at path.
func NewVaultFileStore(path string, opts ...Option) *VaultFileStore {
	s := &VaultFileStore{
		path:   path,
		format: domain.FormatV1,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		write:  writeFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the vault file location.
func (s *VaultFileStore) Path() string { return s.path }

// Exists reports whether a vault file is present.
func (s *VaultFileStore) Exists() (bool, error) {
	return statFile(s.path)
}

// SaveCollection encrypts creds under a key derived from passphrase and a
// fresh salt, then atomically replaces the vault file. creds is only read.
func (s *VaultFileStore) SaveCollection(passphrase []byte, creds domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquire("save")
	if err != nil {
		return err
	}
	defer unlock()

	start := time.Now()

	// A fresh salt gives a fresh key; the nonce is fresh as well so neither is
	// ever reused across saves.
	salt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	nonce, err := crypto.NewNonce()
	if err != nil {
		return err
	}
	file := newVaultFile(s.format, salt, nonce)

	payload, err := EncodeCollection(creds)
	if err != nil {
		return errors.Wrap(err, "cannot encode vault payload")
	}
	defer memzero.Zero(payload)

	err = s.withKey(passphrase, salt, func(key *crypto.Key) error {
		sealed, err := crypto.Seal(key, nonce, payload, file.aad)
		file.sealed = sealed
		return err
	})
	if err != nil {
		return errors.Wrap(err, "cannot seal vault")
	}

	raw := file.marshal()
	if err := s.write(s.path, bytes.NewReader(raw)); err != nil {
		return &domain.IOError{Op: "write", Path: s.path, Err: err}
	}

	s.log.Debug("vault saved",
		"path", s.path,
		"format", s.format.String(),
		"records", len(creds),
		"bytes", len(raw),
		"took", time.Since(start))
	return nil
}

// LoadCollection reads, authenticates and decodes the vault file.
func (s *VaultFileStore) LoadCollection(passphrase []byte) (domain.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquire("load")
	if err != nil {
		return nil, err
	}
	defer unlock()

	start := time.Now()

	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}

	file, ok := parseVaultFile(raw)
	if !ok {
		s.log.Debug("vault rejected", "path", s.path, "reason", "short header", "bytes", len(raw))
		return nil, domain.ErrWrongPasswordOrCorrupt
	}

	var payload []byte
	err = s.withKey(passphrase, file.salt, func(key *crypto.Key) error {
		var err error
		payload, err = crypto.Open(key, file.nonce, file.sealed, file.aad)
		return err
	})
	if err != nil {
		s.log.Debug("vault rejected", "path", s.path, "format", file.version.String())
		return nil, domain.ErrWrongPasswordOrCorrupt
	}
	defer memzero.Zero(payload)

	creds, err := DecodeCollection(payload)
	if err != nil {
		s.log.Debug("vault rejected", "path", s.path, "format", file.version.String())
		return nil, domain.ErrWrongPasswordOrCorrupt
	}

	s.log.Debug("vault loaded",
		"path", s.path,
		"format", file.version.String(),
		"records", len(creds),
		"took", time.Since(start))
	return creds, nil
}

// withKey derives the key for salt, keeps it out of swap where possible and
// wipes it once fn returns.
func (s *VaultFileStore) withKey(passphrase, salt []byte, fn func(*crypto.Key) error) error {
	key, err := crypto.DeriveKey(passphrase, salt)
	if err != nil {
		return err
	}
	if err := crypto.LockMemory(key[:]); err != nil {
		s.log.Debug("mlock unavailable", "err", err)
	} else {
		defer func() { _ = crypto.UnlockMemory(key[:]) }()
	}
	defer key.Wipe()
	return fn(&key)
}

func (s *VaultFileStore) acquire(op string) (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	release, err := s.lock.Lock()
	if err != nil {
		return nil, &domain.IOError{Op: op + " lock", Path: s.path, Err: err}
	}
	return func() {
		if err := release(); err != nil {
			s.log.Warn("cannot release vault lock", "path", s.path, "err", err)
		}
	}, nil
}

// Compile-time assertion that VaultFileStore implements domain.VaultStore.
var _ domain.VaultStore = (*VaultFileStore)(nil)
