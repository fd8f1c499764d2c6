// Package checksum provides artifact content hashing with normalization support.
//
// Two digests are offered:
//
//   - Raw checksum: Hash of the exact bytes written (detects all changes)
//   - Normalized checksum: Hash after normalizing line endings and trailing
//     whitespace, so an artifact regenerated on Windows and on Unix has the
//     same identity
//
// # Normalization Strategy
//
//  1. Convert CRLF and lone CR line endings to LF
//  2. Trim trailing spaces and tabs from every line
//  3. Trim trailing blank lines
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(content)
//	normalizedChecksum := calculator.CalculateNormalized(content)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
