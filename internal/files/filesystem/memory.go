package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths are resolved against the root given to NewMemoryFileSystem.
type MemoryFileSystem struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry // absolute slash path -> entry
	root    string
	reads   map[string]int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	if !path.IsAbs(root) {
		root = "/" + root
	}

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
		reads:   make(map[string]int),
	}
	mfs.mkdirAllLocked(root)
	return mfs
}

// Root returns the directory relative paths are resolved against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file, creating its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	mfs.mkdirAllLocked(path.Dir(absPath))
	mfs.putFileLocked(absPath, []byte(content))
}

// AddDir adds a directory (and its parents). Needed for empty folders,
// which AddFile cannot express.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mkdirAllLocked(mfs.abs(dirPath))
}

// ReadCount returns how many times ReadFile succeeded for filePath.
func (mfs *MemoryFileSystem) ReadCount(filePath string) int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	return mfs.reads[mfs.abs(filePath)]
}

// Files returns the paths of all regular files, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	var out []string
	for p, e := range mfs.entries {
		if !e.info.isDir {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(dirPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %s: %w", dirPath, fs.ErrNotExist)
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("failed to read directory: %s: not a directory", dirPath)
	}

	var children []FileInfo
	for p, e := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			children = append(children, e.info)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name() < children[j].Name()
	})
	return children, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, exists := mfs.entries[mfs.abs(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}

// Exists implements FileSystemProvider.Exists
func (mfs *MemoryFileSystem) Exists(p string) bool {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	_, exists := mfs.entries[mfs.abs(p)]
	return exists
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	mfs.reads[absPath]++
	out := make([]byte, len(entry.content))
	copy(out, entry.content)
	return out, nil
}

// WriteFile implements FileSystemProvider.WriteFile.
// Like os.WriteFile, the parent directory must already exist.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	parent, exists := mfs.entries[path.Dir(absPath)]
	if !exists || !parent.info.isDir {
		return fmt.Errorf("open %s: %w", filePath, fs.ErrNotExist)
	}
	if entry, exists := mfs.entries[absPath]; exists && entry.info.isDir {
		return fmt.Errorf("open %s: is a directory", filePath)
	}

	mfs.putFileLocked(absPath, data)
	return nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(dirPath)
	for p := absPath; ; p = path.Dir(p) {
		if entry, exists := mfs.entries[p]; exists && !entry.info.isDir {
			return fmt.Errorf("mkdir %s: not a directory", p)
		}
		if p == "/" {
			break
		}
	}

	mfs.mkdirAllLocked(absPath)
	return nil
}

// abs resolves p against the root and normalizes it to forward slashes.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) putFileLocked(absPath string, data []byte) {
	content := make([]byte, len(data))
	copy(content, data)
	mfs.entries[absPath] = &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) mkdirAllLocked(absPath string) {
	for p := absPath; ; p = path.Dir(p) {
		if _, exists := mfs.entries[p]; !exists {
			mfs.entries[p] = &memoryEntry{
				info: &memoryFileInfo{
					name:    path.Base(p),
					mode:    0755 | fs.ModeDir,
					modTime: time.Now(),
					isDir:   true,
				},
			}
		}
		if p == "/" || strings.Count(p, "/") == 0 {
			return
		}
	}
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
