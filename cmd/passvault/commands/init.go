package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/util/memzero"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new, empty vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readNewPassphrase(cmd)
			if err != nil {
				return err
			}
			defer memzero.Zero(pass)

			if err := appCtx.Session.Create(pass); err != nil {
				return describeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Vault created: %s\n", appCtx.Vault.Path())
			return nil
		},
	}
}
