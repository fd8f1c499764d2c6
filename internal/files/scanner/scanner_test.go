package scanner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/modelconv/modelconv/internal/checksum"
	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/internal/logging"
	testhelpers "github.com/modelconv/modelconv/internal/testing"
	"github.com/modelconv/modelconv/internal/testing/fixtures"
	"github.com/modelconv/modelconv/internal/transform"
	"github.com/modelconv/modelconv/pkg/modelconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	modelsDir = "3DModels"
	outputDir = "ModelDefinitions"
)

type scanFixture struct {
	fs       *filesystem.MemoryFileSystem
	compiler *testhelpers.FakeCompiler
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	scanner  *Scanner
}

func newScanFixture(t *testing.T, mfs *filesystem.MemoryFileSystem) *scanFixture {
	t.Helper()
	mfs.AddDir(outputDir)

	var out, errOut bytes.Buffer
	logger := logging.NewConsoleLoggerWithWriters(false, &out, &errOut)
	fc := testhelpers.NewFakeCompiler(mfs)
	tr := transform.NewTransformer(fc, mfs, checksum.New(), logger)

	return &scanFixture{
		fs:       mfs,
		compiler: fc,
		out:      &out,
		errOut:   &errOut,
		scanner:  NewScannerWithFS(tr, mfs, logger),
	}
}

func (f *scanFixture) lines() []string {
	return strings.Split(strings.TrimRight(f.out.String(), "\n"), "\n")
}

func TestNewScannerWithFS_NilArgs(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/")
	logger := logging.NewNullLogger()
	tr := transform.NewTransformer(testhelpers.NewFakeCompiler(mfs), mfs, checksum.New(), logger)

	assert.Panics(t, func() { NewScannerWithFS(nil, mfs, logger) })
	assert.Panics(t, func() { NewScannerWithFS(tr, nil, logger) })
	assert.Panics(t, func() { NewScannerWithFS(tr, mfs, nil) })
}

func TestResolveSceneFile(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddModel("Gltf", modelconv.PrimarySceneFile).
		AddModel("Glb", modelconv.SecondarySceneFile).
		AddModel("Both", modelconv.PrimarySceneFile).
		AddModel("Both", modelconv.SecondarySceneFile).
		AddEmpty("None").
		AddFile("DirNamed/scene.gltf/readme.txt", "not a scene").
		Build()
	s := newScanFixture(t, mfs).scanner

	tests := []struct {
		folder string
		want   string
		ok     bool
	}{
		{"Gltf", "3DModels/Gltf/scene.gltf", true},
		{"Glb", "3DModels/Glb/scene.glb", true},
		{"Both", "3DModels/Both/scene.gltf", true},
		{"None", "", false},
		{"DirNamed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			got, ok := s.ResolveSceneFile("3DModels/" + tt.folder)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_CarEmptyNested(t *testing.T) {
	f := newScanFixture(t, fixtures.CarEmptyNested())

	report, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"3DModels/Car/scene.gltf",
		"3DModels/Nested/Sub/scene.gltf",
	}, f.compiler.Inputs())

	assert.Equal(t, []string{
		"🔄 3DModels/Car/scene.gltf is being converted",
		"✔️ Successfully processed and wrote: ModelDefinitions/Car.tsx",
		"ℹ️ 3DModels/Empty is empty",
		"ℹ️ 3DModels/Nested is empty",
		"🔄 3DModels/Nested/Sub/scene.gltf is being converted",
		"✔️ Successfully processed and wrote: ModelDefinitions/Nested-Sub.tsx",
	}, f.lines())

	assert.Equal(t, 2, report.Count(modelconv.OutcomeConverted))
	assert.Equal(t, 1, report.Count(modelconv.OutcomeEmpty))
	assert.Equal(t, 0, report.Count(modelconv.OutcomeSkippedExisting))

	car, err := f.fs.ReadFile("ModelDefinitions/Car.tsx")
	require.NoError(t, err)
	assert.Contains(t, string(car), "export default function ModelCar(")
	assert.Contains(t, string(car), "useGLTF('3DModels/Car/scene.gltf')")

	sub, err := f.fs.ReadFile("ModelDefinitions/Nested-Sub.tsx")
	require.NoError(t, err)
	assert.Contains(t, string(sub), "export default function ModelNestedSub(")

	assert.False(t, f.fs.Exists("ModelDefinitions/Empty.tsx"))
	assert.False(t, f.fs.Exists("ModelDefinitions/Nested.tsx"))
}

func TestScan_SecondRunSkipsEverything(t *testing.T) {
	f := newScanFixture(t, fixtures.CarEmptyNested())
	ctx := context.Background()

	_, err := f.scanner.Scan(ctx, modelsDir, outputDir)
	require.NoError(t, err)
	car, err := f.fs.ReadFile("ModelDefinitions/Car.tsx")
	require.NoError(t, err)

	f.compiler.Reset()
	f.out.Reset()

	report, err := f.scanner.Scan(ctx, modelsDir, outputDir)
	require.NoError(t, err)

	assert.Empty(t, f.compiler.Calls())
	assert.Equal(t, 2, report.Count(modelconv.OutcomeSkippedExisting))
	assert.Equal(t, 0, report.Count(modelconv.OutcomeConverted))
	assert.Equal(t, []string{
		"🚫 Skipped 3DModels/Car",
		"ℹ️ 3DModels/Empty is empty",
		"ℹ️ 3DModels/Nested is empty",
		"🚫 Skipped 3DModels/Nested/Sub",
	}, f.lines())

	again, err := f.fs.ReadFile("ModelDefinitions/Car.tsx")
	require.NoError(t, err)
	assert.Equal(t, car, again)
}

func TestScan_ExistingArtifactWinsOverSceneFile(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddModel("Car", modelconv.PrimarySceneFile).
		AddArtifact(outputDir, "Car", "hand edited").
		Build()
	f := newScanFixture(t, mfs)

	report, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	assert.Empty(t, f.compiler.Calls())
	assert.Equal(t, 0, f.fs.ReadCount("3DModels/Car/scene.gltf"))
	require.Len(t, report.Results, 1)
	assert.Equal(t, modelconv.OutcomeSkippedExisting, report.Results[0].Outcome)

	content, err := f.fs.ReadFile("ModelDefinitions/Car.tsx")
	require.NoError(t, err)
	assert.Equal(t, "hand edited", string(content))
}

func TestScan_ExistingParentArtifactSkipsChildren(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddNested("Nested", "Sub", modelconv.PrimarySceneFile).
		AddArtifact(outputDir, "Nested", "old").
		Build()
	f := newScanFixture(t, mfs)

	_, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	assert.Empty(t, f.compiler.Calls())
	assert.Equal(t, []string{"🚫 Skipped 3DModels/Nested"}, f.lines())
	assert.False(t, f.fs.Exists("ModelDefinitions/Nested-Sub.tsx"))
}

func TestScan_PrefersGltfOverGlb(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddModel("Both", modelconv.PrimarySceneFile).
		AddModel("Both", modelconv.SecondarySceneFile).
		AddModel("GlbOnly", modelconv.SecondarySceneFile).
		Build()
	f := newScanFixture(t, mfs)

	_, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"3DModels/Both/scene.gltf",
		"3DModels/GlbOnly/scene.glb",
	}, f.compiler.Inputs())
}

func TestScan_DescendsOneLevelOnly(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddFile("Deep/A/B/scene.gltf", "{}").
		Build()
	f := newScanFixture(t, mfs)

	report, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	assert.Empty(t, f.compiler.Calls())
	assert.Equal(t, []string{
		"ℹ️ 3DModels/Deep is empty",
		"ℹ️ 3DModels/Deep/A is empty",
	}, f.lines())
	assert.Equal(t, 2, report.Count(modelconv.OutcomeEmpty))
}

func TestScan_EmptyChildAndConvertedSibling(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddNested("Kit", "Bare", "").
		AddNested("Kit", "Wheel", modelconv.SecondarySceneFile).
		Build()
	f := newScanFixture(t, mfs)

	report, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "Kit-Bare", report.Results[0].Target)
	assert.Equal(t, modelconv.OutcomeEmpty, report.Results[0].Outcome)
	assert.Equal(t, "Kit-Wheel", report.Results[1].Target)
	assert.Equal(t, modelconv.OutcomeConverted, report.Results[1].Outcome)
	assert.True(t, f.fs.Exists("ModelDefinitions/Kit-Wheel.tsx"))
}

func TestScan_IgnoresLooseFiles(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddFile("README.md", "models").
		AddFile("scene.gltf", "{}").
		AddModel("Car", modelconv.PrimarySceneFile).
		Build()
	f := newScanFixture(t, mfs)

	report, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"3DModels/Car/scene.gltf"}, f.compiler.Inputs())
	assert.Len(t, report.Results, 1)
}

func TestScan_DisplayKeepsModelsDirSpelling(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).AddEmpty("Empty").Build()
	f := newScanFixture(t, mfs)

	_, err := f.scanner.Scan(context.Background(), "./3DModels/", outputDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"ℹ️ ./3DModels/Empty is empty"}, f.lines())
}

func TestScan_MissingModelsDir(t *testing.T) {
	f := newScanFixture(t, filesystem.NewMemoryFileSystem(fixtures.WorkRoot))

	_, err := f.scanner.Scan(context.Background(), "nope", outputDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, modelconv.ErrFilesystem))
	assert.Empty(t, f.compiler.Calls())
}

func TestScan_CompilerFailureAbortsRun(t *testing.T) {
	mfs := fixtures.NewModelTreeBuilder(modelsDir).
		AddModel("A", modelconv.PrimarySceneFile).
		AddModel("B", modelconv.PrimarySceneFile).
		AddModel("C", modelconv.PrimarySceneFile).
		Build()
	f := newScanFixture(t, mfs)
	f.compiler.FailOn["3DModels/B/scene.gltf"] = modelconv.ErrExternalTool

	report, err := f.scanner.Scan(context.Background(), modelsDir, outputDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, modelconv.ErrExternalTool))

	assert.Equal(t, []string{
		"3DModels/A/scene.gltf",
		"3DModels/B/scene.gltf",
	}, f.compiler.Inputs())
	assert.Equal(t, 1, report.Count(modelconv.OutcomeConverted))
	assert.False(t, f.fs.Exists("ModelDefinitions/C.tsx"))
}

func TestScan_CancelledContext(t *testing.T) {
	f := newScanFixture(t, fixtures.CarEmptyNested())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.scanner.Scan(ctx, modelsDir, outputDir)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.compiler.Calls())
}

func TestInspect(t *testing.T) {
	f := newScanFixture(t, fixtures.CarEmptyNested())

	folders, err := Inspect(f.fs, modelsDir)
	require.NoError(t, err)
	require.Len(t, folders, 3)

	assert.Equal(t, "Car", folders[0].Name)
	assert.True(t, folders[0].HasDirectSceneFile())
	assert.Equal(t, "3DModels/Car/scene.gltf", folders[0].SceneFile)

	assert.Equal(t, "Empty", folders[1].Name)
	assert.False(t, folders[1].HasDirectSceneFile())
	assert.Empty(t, folders[1].Children)

	assert.Equal(t, "Nested", folders[2].Name)
	require.Len(t, folders[2].Children, 1)
	assert.Equal(t, "Nested-Sub", folders[2].Children[0].Target)
	assert.Equal(t, "3DModels/Nested/Sub/scene.gltf", folders[2].Children[0].SceneFile)

	assert.Empty(t, f.compiler.Calls())
}

// Stat errors on model folder entries are fatal, not "not a directory".
func TestScan_DanglingSymlinkIsFilesystemError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	root := t.TempDir()
	models := filepath.Join(root, modelsDir)
	output := filepath.Join(root, outputDir)
	require.NoError(t, os.MkdirAll(filepath.Join(models, "Car"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(models, "Car", modelconv.PrimarySceneFile), []byte("{}"), 0644))
	require.NoError(t, os.MkdirAll(output, 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(models, "Broken")))

	osfs := filesystem.NewOSFileSystem()
	fc := testhelpers.NewFakeCompiler(osfs)
	logger := logging.NewNullLogger()
	sc := NewScannerWithFS(transform.NewTransformer(fc, osfs, checksum.New(), logger), osfs, logger)

	report, err := sc.Scan(context.Background(), models, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, modelconv.ErrFilesystem))
	assert.Contains(t, err.Error(), "Broken")
	assert.Empty(t, report.Results)
	assert.Empty(t, fc.Calls())

	_, err = Inspect(osfs, models)
	require.Error(t, err)
	assert.True(t, errors.Is(err, modelconv.ErrFilesystem))
}

func TestScan_SymlinkedFolderIsModelFolder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	root := t.TempDir()
	models := filepath.Join(root, modelsDir)
	output := filepath.Join(root, outputDir)
	shared := filepath.Join(root, "shared", "Truck")
	require.NoError(t, os.MkdirAll(shared, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(shared, modelconv.PrimarySceneFile), []byte("{}"), 0644))
	require.NoError(t, os.MkdirAll(models, 0755))
	require.NoError(t, os.MkdirAll(output, 0755))
	require.NoError(t, os.Symlink(shared, filepath.Join(models, "Truck")))

	osfs := filesystem.NewOSFileSystem()
	fc := testhelpers.NewFakeCompiler(osfs)
	logger := logging.NewNullLogger()
	sc := NewScannerWithFS(transform.NewTransformer(fc, osfs, checksum.New(), logger), osfs, logger)

	report, err := sc.Scan(context.Background(), models, output)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(modelconv.OutcomeConverted))
	assert.FileExists(t, filepath.Join(output, "Truck.tsx"))
}
