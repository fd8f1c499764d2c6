package fixtures

import (
	"path"
	"sort"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// WorkRoot is the virtual working directory every fixture is built under.
const WorkRoot = "/work"

// ModelTreeBuilder provides a fluent API for building in-memory models
// directories.
//
// Example usage:
//
//	fs := NewModelTreeBuilder("3DModels").
//	    AddModel("Car", modelconv.PrimarySceneFile).
//	    AddEmpty("Empty").
//	    AddNested("Nested", "Sub", modelconv.PrimarySceneFile).
//	    Build()
type ModelTreeBuilder struct {
	modelsDir string
	files     map[string]string // path -> content
	dirs      map[string]bool
}

// NewModelTreeBuilder creates a builder whose models live under modelsDir
// (relative to WorkRoot unless absolute).
func NewModelTreeBuilder(modelsDir string) *ModelTreeBuilder {
	return &ModelTreeBuilder{
		modelsDir: modelsDir,
		files:     make(map[string]string),
		dirs:      map[string]bool{modelsDir: true},
	}
}

// AddModel adds modelsDir/folder/sceneFile.
func (b *ModelTreeBuilder) AddModel(folder, sceneFile string) *ModelTreeBuilder {
	b.files[path.Join(b.modelsDir, folder, sceneFile)] = sceneContent(sceneFile)
	return b
}

// AddEmpty adds a model folder with no scene file and no subfolders.
func (b *ModelTreeBuilder) AddEmpty(folder string) *ModelTreeBuilder {
	b.dirs[path.Join(b.modelsDir, folder)] = true
	return b
}

// AddNested adds modelsDir/parent/child/sceneFile. Pass an empty sceneFile
// for an empty child folder.
func (b *ModelTreeBuilder) AddNested(parent, child, sceneFile string) *ModelTreeBuilder {
	if sceneFile == "" {
		b.dirs[path.Join(b.modelsDir, parent, child)] = true
		return b
	}
	b.files[path.Join(b.modelsDir, parent, child, sceneFile)] = sceneContent(sceneFile)
	return b
}

// AddFile adds an arbitrary file at a path relative to the models directory.
func (b *ModelTreeBuilder) AddFile(rel, content string) *ModelTreeBuilder {
	b.files[path.Join(b.modelsDir, rel)] = content
	return b
}

// AddArtifact pre-creates outputDir/<name>.tsx as if a previous run wrote it.
func (b *ModelTreeBuilder) AddArtifact(outputDir, name, content string) *ModelTreeBuilder {
	b.files[path.Join(outputDir, name+modelconv.ComponentExtension)] = content
	return b
}

// Build generates the in-memory filesystem from the accumulated entries.
func (b *ModelTreeBuilder) Build() *filesystem.MemoryFileSystem {
	fs := filesystem.NewMemoryFileSystem(WorkRoot)

	dirs := make([]string, 0, len(b.dirs))
	for d := range b.dirs {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	for _, d := range dirs {
		fs.AddDir(d)
	}
	for p, content := range b.files {
		fs.AddFile(p, content)
	}

	return fs
}

func sceneContent(sceneFile string) string {
	if path.Ext(sceneFile) == ".glb" {
		return "glTF\x02\x00\x00\x00"
	}
	return `{"asset":{"version":"2.0"},"scenes":[{"nodes":[0]}],"nodes":[{"mesh":0}]}`
}

// ============================================================================
// Pre-built Fixtures
// ============================================================================

// CarEmptyNested is the canonical layout:
//
//	3DModels/Car/scene.gltf
//	3DModels/Empty/
//	3DModels/Nested/Sub/scene.gltf
func CarEmptyNested() *filesystem.MemoryFileSystem {
	return NewModelTreeBuilder("3DModels").
		AddModel("Car", modelconv.PrimarySceneFile).
		AddEmpty("Empty").
		AddNested("Nested", "Sub", modelconv.PrimarySceneFile).
		Build()
}
