package app

import (
	"io"

	"passvault/internal/platform"
	"passvault/internal/services/generator"
	"passvault/internal/services/session"
	"passvault/internal/store"
)

// New constructs the dependency graph from cfg. Logs go to logOut.
func New(cfg *Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	log := NewLogger(logOut, level)

	opts := []store.Option{
		store.WithFormat(cfg.Format()),
		store.WithLogger(log.With("component", "vault")),
	}
	if cfg.Lock {
		opts = append(opts, store.WithLocker(platform.NewFileLock(cfg.VaultPath+".lock")))
	}
	vault := store.NewVaultFileStore(cfg.VaultPath, opts...)

	// In-memory credentials edited by the session
	creds := store.NewMemoryStore(nil)
	sess := session.New(vault, creds, log.With("component", "session"))

	return &App{
		Config:    cfg,
		Log:       log,
		Vault:     vault,
		Session:   sess,
		Generator: generator.New(),
		Clipboard: platform.NewClipboard(),
	}, nil
}
