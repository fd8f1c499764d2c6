package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the set of filesystem operations the scanner,
// transformer and converter service rely on.
type FileSystemProvider interface {
	// ReadDir returns the immediate entries of a directory sorted by name.
	// It fails if the path does not exist or is not a directory.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Exists reports whether anything exists at path. It never fails;
	// unreadable paths are reported as absent.
	Exists(path string) bool

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates the file at path.
	WriteFile(path string, data []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
}

// IsDir reports whether path exists and is a directory.
func IsDir(p FileSystemProvider, path string) bool {
	info, err := p.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is not a directory.
func IsFile(p FileSystemProvider, path string) bool {
	info, err := p.Stat(path)
	return err == nil && !info.IsDir()
}
