// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The conversion pipeline only ever needs shallow directory listings, existence
// checks and whole-file text I/O, so the abstraction is flat:
//   - FileSystemProvider: ReadDir, Stat, Exists, ReadFile, WriteFile, MkdirAll
//   - FileInfo: File metadata (alias of fs.FileInfo)
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
