// Package crypto exposes the primitives that protect a passvault file.
//
// Contents
//
//   - Password-based key derivation, PBKDF2-HMAC-SHA256 with a fixed work
//     factor (DeriveKey)
//   - AES-256-GCM sealing and opening with optional associated data
//     (Seal, Open)
//   - Random salts and nonces from crypto/rand (NewSalt, NewNonce)
//   - Best-effort memory locking for key material (LockMemory)
//
// # Notes
//
// Open reports every verification failure as ErrAuthentication and nothing
// else, so callers cannot tell a wrong key from altered bytes. Derived keys
// are fixed-size arrays; callers should Wipe them as soon as a seal or open
// completes.
package crypto
