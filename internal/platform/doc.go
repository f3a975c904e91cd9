// Package platform wraps the OS facilities the CLI relies on: the system
// clipboard, terminal passphrase prompts, core dump suppression and an
// advisory lock file next to the vault.
//
// Unix builds use golang.org/x/sys/unix; elsewhere the lock and core dump
// helpers are no-ops.
package platform
