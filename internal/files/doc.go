// Package files groups the file-related sub-packages:
//   - filesystem: provider interface with OS and in-memory implementations
//   - scanner: model folder discovery and conversion dispatch
package files
