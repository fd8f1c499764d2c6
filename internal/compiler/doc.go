// Package compiler runs the external scene-to-component compiler (gltfjsx).
//
// A compilation is a single blocking subprocess call. The child's stderr is
// streamed to the configured writer and the tail of it is kept for error
// reporting; stdout is forwarded only when a writer is configured.
package compiler
