// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional YAML file and PASSVAULT_*
// environment variables, then builds the logger, vault store, session,
// password generator and clipboard, exposing them via the App struct for
// commands to use.
package app
