// Package filesystem provides filesystem implementations for placer.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI and an afero-backed filesystem
// used by tests and by callers that already hold an afero.Fs.
package filesystem
