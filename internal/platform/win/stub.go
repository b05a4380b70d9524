//go:build !windows

// Package win is a no-op on non-Windows platforms; platform.NewProvider
// returns ErrUnsupported.
package win
