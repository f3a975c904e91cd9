package app

import (
	"io"
	"log/slog"

	"passvault/internal/domain"
	"passvault/internal/platform"
)

// App bundles the stores, services and platform helpers the CLI uses.
type App struct {
	Config    *Config
	Log       *slog.Logger
	Vault     domain.VaultStore
	Session   domain.SessionService
	Generator domain.PasswordGenerator
	Clipboard platform.Clipboard
}

// NewLogger returns a text logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
