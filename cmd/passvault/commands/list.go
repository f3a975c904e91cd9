package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored services",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openVault(cmd); err != nil {
				return err
			}
			printList(cmd)
			return nil
		},
	}
}

func printList(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	creds := appCtx.Session.List()
	if len(creds) == 0 {
		fmt.Fprintln(out, "There are no passwords currently stored.")
		return
	}
	fmt.Fprintln(out, "--- Stored Services ---")
	for _, c := range creds {
		fmt.Fprintf(out, "> %s\n", c)
	}
}
