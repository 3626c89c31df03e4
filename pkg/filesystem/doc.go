// Package filesystem provides filesystem implementations for codemerge.
//
// This package contains implementations of the types.FS interface.
package filesystem
