package commands

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"passvault/internal/app"
	"passvault/internal/platform"
)

var (
	home           string
	configPath     string
	vaultPath      string
	logLevel       string
	passphraseFile string
	appCtx         *app.App

	// input is shared by every prompt of one invocation so buffered lines
	// are not lost between readers.
	input *bufio.Reader
)

// Execute runs the CLI with os.Args.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if appCtx != nil {
		appCtx.Session.Close()
	}
	return err
}

func newRootCmd() *cobra.Command {
	home, configPath, vaultPath, logLevel, passphraseFile = "", "", "", "", ""
	appCtx, input = nil, nil

	root := &cobra.Command{
		Use:           "passvault",
		Short:         "Local encrypted password vault",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".passvault")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("vault") {
				cfg.VaultPath = vaultPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			a, err := app.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := platform.DisableCoreDumps(); err != nil {
				a.Log.Debug("cannot disable core dumps", "err", err)
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.passvault)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&vaultPath, "vault", "", "vault file (default <home>/vault.dat)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&passphraseFile, "passphrase-file", "", "read the master password from this file")

	root.AddCommand(
		initCmd(),
		addCmd(),
		getCmd(),
		deleteCmd(),
		listCmd(),
		generateCmd(),
		shellCmd(),
	)
	return root
}

func lineReader(cmd *cobra.Command) *bufio.Reader {
	if input == nil {
		input = bufio.NewReader(cmd.InOrStdin())
	}
	return input
}
