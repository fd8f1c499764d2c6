// Package logging provides concrete implementations of the modelconv.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes one line per notice with a fixed prefix per kind,
//     styled with lipgloss when the destination is a colour terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
