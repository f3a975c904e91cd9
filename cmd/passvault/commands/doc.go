// Package commands defines the passvault CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init       Create a new, empty vault
//   - add        Store a credential (generating the secret when omitted)
//   - get/show   Print or copy a credential
//   - delete     Remove a credential after re-entering the master password
//   - list       List stored services
//   - generate   Print a random password
//   - shell      Interactive session over one unlocked vault
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (vault store, session, generator, clipboard) before any subcommand runs.
// The master password is read from --passphrase-file, PASSVAULT_PASSPHRASE
// or a no-echo terminal prompt, in that order.
package commands
