//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package platform

// DisableCoreDumps is a no-op on this platform.
func DisableCoreDumps() error { return nil }
