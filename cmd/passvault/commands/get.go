package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

func getCmd() *cobra.Command {
	var (
		copySecret bool
		clearAfter time.Duration
	)
	cmd := &cobra.Command{
		Use:     "get <service>",
		Aliases: []string{"show"},
		Short:   "Print a credential or copy its password",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openVault(cmd); err != nil {
				return err
			}
			cred, err := appCtx.Session.Find(args[0])
			if err != nil {
				return notFound(args[0], err)
			}

			out := cmd.OutOrStdout()
			if !copySecret {
				fmt.Fprintln(out, formatCredential(cred))
				return nil
			}

			if !cmd.Flags().Changed("clear-after") {
				clearAfter = appCtx.Config.ClipboardClearAfter
			}
			fmt.Fprintf(out, "Service: %s | User: %s\n", cred.Service, cred.Username)
			if clearAfter > 0 {
				fmt.Fprintf(out, "Password copied to clipboard; clearing in %s.\n", clearAfter)
			}
			if err := appCtx.Clipboard.Set(cred.Secret, clearAfter); err != nil {
				return err
			}
			if clearAfter <= 0 {
				fmt.Fprintln(out, "Password copied to clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copySecret, "copy", "c", false, "copy the password to the clipboard instead of printing it")
	cmd.Flags().DurationVar(&clearAfter, "clear-after", 0, "clear the clipboard after this long (default from config)")
	return cmd
}

func formatCredential(c domain.Credential) string {
	return fmt.Sprintf("Service: %s | User: %s | Password: %s", c.Service, c.Username, c.Secret)
}
