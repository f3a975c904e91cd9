package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

func deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <service>",
		Aliases: []string{"rm"},
		Short:   "Delete a credential (asks for the master password again)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openVault(cmd); err != nil {
				return err
			}
			return deleteCredential(cmd, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the master password confirmation")
	return cmd
}

func deleteCredential(cmd *cobra.Command, service string, skipConfirm bool) error {
	cred, err := appCtx.Session.Find(service)
	if err != nil {
		return notFound(service, err)
	}

	if !skipConfirm {
		fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: you are about to delete the password for %s.\n", cred.Service)
		confirm, err := promptSecret(cmd, "Confirm master password: ")
		if err != nil {
			return err
		}
		ok := appCtx.Session.ConfirmPassphrase(confirm)
		memzero.Zero(confirm)
		if !ok {
			return errors.New("wrong password, deletion cancelled")
		}
	}

	removed, err := appCtx.Session.Remove(cred.Service)
	if err != nil {
		return describeError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Entry for %s deleted.\n", removed.Service)
	return nil
}

func notFound(service string, err error) error {
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return errors.Errorf("no entry found for service: %s", service)
	}
	return describeError(err)
}
