// Package session holds the state of one unlocked vault.
//
// A Service keeps the master passphrase and the in-memory credential list
// for as long as the CLI runs, and writes the whole collection back to the
// vault after every mutation. If that save fails the mutation is undone, so
// memory and disk never disagree.
package session
