// Package scanner discovers scene files under a models directory and
// dispatches their conversion.
//
// The scanner is responsible for:
//   - Listing the model folders directly under the models directory
//   - Resolving each folder to at most one scene file (scene.gltf, then scene.glb)
//   - Skipping targets whose artifact already exists, before anything is read
//   - Descending exactly one level into folders that hold no scene file
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
