package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

// add <service> <username> [secret]: store a credential. An omitted or empty
// secret is generated.
func addCmd() *cobra.Command {
	var (
		length int
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "add <service> <username> [secret]",
		Short: "Store a credential, generating the secret when omitted",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openVault(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("length") {
				length = appCtx.Config.GeneratorLength
			}
			return addCredential(cmd, args, length, force)
		},
	}
	cmd.Flags().IntVar(&length, "length", 0, "generated password length (default from config)")
	cmd.Flags().BoolVar(&force, "force", false, "allow a second entry for an existing service")
	return cmd
}

func addCredential(cmd *cobra.Command, args []string, length int, force bool) error {
	for _, arg := range args {
		if !utf8.ValidString(arg) {
			return errors.New("service, username and password must be valid UTF-8 text")
		}
	}

	cred := domain.Credential{Service: args[0], Username: args[1]}
	generated := len(args) < 3 || args[2] == ""
	if generated {
		secret, err := appCtx.Generator.Generate(length)
		if err != nil {
			return err
		}
		cred.Secret = secret
	} else {
		cred.Secret = args[2]
	}

	if err := appCtx.Session.Add(cred, force); err != nil {
		if errors.Is(err, domain.ErrDuplicateService) {
			return errors.Errorf("an entry for %s already exists; use --force to add another", cred.Service)
		}
		return describeError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entry for %s saved.\n", cred.Service)
	if generated {
		fmt.Fprintf(out, "Generated password: %s\n", cred.Secret)
	}
	return nil
}
