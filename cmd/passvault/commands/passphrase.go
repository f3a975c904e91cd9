package commands

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passvault/internal/domain"
	"passvault/internal/platform"
	"passvault/internal/util/memzero"
)

// readPassphrase returns the master password and whether it was typed
// interactively.
func readPassphrase(cmd *cobra.Command, prompt string) ([]byte, bool, error) {
	if passphraseFile != "" {
		b, err := os.ReadFile(passphraseFile)
		if err != nil {
			return nil, false, errors.Wrap(err, "cannot read passphrase file")
		}
		return bytes.TrimRight(b, "\r\n"), false, nil
	}
	if v, ok := os.LookupEnv("PASSVAULT_PASSPHRASE"); ok && v != "" {
		return []byte(v), false, nil
	}
	b, err := promptSecret(cmd, prompt)
	return b, true, err
}

// promptSecret reads one line without echo when stdin is a terminal.
func promptSecret(cmd *cobra.Command, prompt string) ([]byte, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && platform.IsTerminal(f) {
		return platform.ReadPassphrase(prompt, f, cmd.ErrOrStderr())
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	return platform.ReadLine(lineReader(cmd))
}

// openVault unlocks the configured vault for the current command.
func openVault(cmd *cobra.Command) error {
	pass, _, err := readPassphrase(cmd, "Master password: ")
	if err != nil {
		return err
	}
	defer memzero.Zero(pass)
	return describeError(appCtx.Session.Open(pass))
}

// readNewPassphrase asks twice when typed interactively.
func readNewPassphrase(cmd *cobra.Command) ([]byte, error) {
	pass, interactive, err := readPassphrase(cmd, "New master password: ")
	if err != nil || !interactive {
		return pass, err
	}
	again, err := promptSecret(cmd, "Repeat master password: ")
	if err != nil {
		memzero.Zero(pass)
		return nil, err
	}
	defer memzero.Zero(again)
	if subtle.ConstantTimeCompare(pass, again) != 1 {
		memzero.Zero(pass)
		return nil, errors.New("passwords do not match")
	}
	return pass, nil
}

// describeError turns vault errors into messages for the user. Wrong
// passwords and corrupted files share one message on purpose.
func describeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrVaultNotFound):
		return errors.Errorf("no vault at %s; run 'passvault init' to create one", appCtx.Vault.Path())
	case errors.Is(err, domain.ErrWrongPasswordOrCorrupt):
		return errors.New("could not read vault: wrong master password or corrupted file")
	case errors.Is(err, domain.ErrVaultExists):
		return errors.Errorf("a vault already exists at %s", appCtx.Vault.Path())
	case domain.IsIOError(err):
		return errors.Wrap(err, "could not access vault on disk, nothing was changed")
	}
	return err
}
