//go:build windows

// Package win provides Windows platform support using the user32/gdi32 APIs
// through lazily loaded system DLLs. Cursor queries, window enumeration, and
// pixel capture all go through this package. On other platforms it compiles
// as a no-op stub and the provider stays unregistered.
package win
