package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

const shellHelp = `Commands:
  add     store a new credential (leave the password empty to generate one)
  show    print a credential
  delete  delete a credential
  list    list stored services
  help    show this help
  exit    leave the shell`

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over one unlocked vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlockOrCreate(cmd); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Vault unlocked. Type 'help' for commands.")

			for {
				line, err := ask(cmd, "> ")
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				switch strings.ToLower(strings.TrimSpace(line)) {
				case "":
				case "add":
					err = shellAdd(cmd)
				case "show", "get":
					err = shellShow(cmd)
				case "delete", "rm":
					err = shellDelete(cmd)
				case "list", "ls":
					printList(cmd)
				case "help", "?":
					fmt.Fprintln(out, shellHelp)
				case "exit", "quit":
					fmt.Fprintln(out, "Goodbye.")
					return nil
				default:
					fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", line)
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			}
		},
	}
}

// unlockOrCreate opens the vault, offering to create it when none exists.
func unlockOrCreate(cmd *cobra.Command) error {
	pass, _, err := readPassphrase(cmd, "Master password: ")
	if err != nil {
		return err
	}
	defer memzero.Zero(pass)

	err = appCtx.Session.Open(pass)
	if !errors.Is(err, domain.ErrVaultNotFound) {
		return describeError(err)
	}

	answer, err := ask(cmd, fmt.Sprintf("No vault at %s. Create a new vault? (y/n) ", appCtx.Vault.Path()))
	if err != nil {
		return err
	}
	if !yes(answer) {
		return errors.New("no vault opened")
	}
	if err := appCtx.Session.Create(pass); err != nil {
		return describeError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Vault created: %s\n", appCtx.Vault.Path())
	return nil
}

func shellAdd(cmd *cobra.Command) error {
	service, err := ask(cmd, "Service: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(service) == "" {
		return errors.New("service must not be empty")
	}
	user, err := ask(cmd, "Username: ")
	if err != nil {
		return err
	}
	secret, err := promptSecret(cmd, "Password (empty to generate): ")
	if err != nil {
		return err
	}
	return addCredential(cmd, []string{service, user, string(secret)}, appCtx.Config.GeneratorLength, false)
}

func shellShow(cmd *cobra.Command) error {
	service, err := ask(cmd, "Service: ")
	if err != nil {
		return err
	}
	cred, err := appCtx.Session.Find(service)
	if err != nil {
		return notFound(service, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatCredential(cred))

	answer, err := ask(cmd, "Copy the password to the clipboard? (y/n) ")
	if err != nil || !yes(answer) {
		return err
	}
	if err := appCtx.Clipboard.Set(cred.Secret, appCtx.Config.ClipboardClearAfter); err != nil {
		return err
	}
	fmt.Fprintln(out, "Password copied to clipboard.")
	return nil
}

func shellDelete(cmd *cobra.Command) error {
	service, err := ask(cmd, "Service: ")
	if err != nil {
		return err
	}
	return deleteCredential(cmd, service, false)
}

func ask(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := lineReader(cmd).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func yes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
