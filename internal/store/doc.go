// Package store provides persistence for passvault credentials.
//
// VaultFileStore owns the encrypted vault file: it derives a key from the
// master passphrase, seals the serialised collection with AES-256-GCM and
// replaces the file atomically. Every save draws a new salt and nonce.
// Loading folds a wrong passphrase, a tampered or truncated file and an
// undecodable payload into the single domain.ErrWrongPasswordOrCorrupt.
//
// MemoryStore is the mutable in-memory list that a session edits between
// saves. Both types are concurrency-safe via internal locking.
//
// The payload codec (EncodeCollection, DecodeCollection) is a count-prefixed
// sequence of length-prefixed UTF-8 strings.
package store
