package scanner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// sceneFilePriority lists scene file names in resolution order.
var sceneFilePriority = []string{
	modelconv.PrimarySceneFile,
	modelconv.SecondarySceneFile,
}

// Scanner walks a models directory one folder at a time and hands every
// resolved scene file to an ArtifactWriter. Processing is strictly
// sequential: a folder is fully handled before the next one is listed.
type Scanner struct {
	writer     modelconv.ArtifactWriter
	fsProvider filesystem.FileSystemProvider
	logger     modelconv.Logger
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if writer or logger is nil.
func NewScanner(writer modelconv.ArtifactWriter, logger modelconv.Logger) *Scanner {
	return NewScannerWithFS(writer, filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil.
func NewScannerWithFS(writer modelconv.ArtifactWriter, fsProvider filesystem.FileSystemProvider, logger modelconv.Logger) *Scanner {
	if writer == nil {
		panic("writer cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		writer:     writer,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ResolveSceneFile returns the first scene file found in folderPath,
// checking scene.gltf before scene.glb. A directory with a scene file's
// name does not count.
func (s *Scanner) ResolveSceneFile(folderPath string) (string, bool) {
	return resolveSceneFile(s.fsProvider, folderPath)
}

func resolveSceneFile(fsProvider filesystem.FileSystemProvider, folderPath string) (string, bool) {
	for _, name := range sceneFilePriority {
		candidate := filepath.Join(folderPath, name)
		if filesystem.IsFile(fsProvider, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Scan converts every model folder under modelsDir into outputDir.
//
// For each folder, in name order:
//  1. An existing outputDir/<folder>.tsx skips the folder entirely.
//  2. A direct scene file is converted to <folder>.tsx.
//  3. Otherwise the folder is reported empty and each subfolder is handled
//     the same way under the name <folder>-<subfolder>, without going deeper.
//
// Listing failures wrap modelconv.ErrFilesystem. The first error aborts the
// scan; the returned report holds the results gathered so far.
func (s *Scanner) Scan(ctx context.Context, modelsDir, outputDir string) (modelconv.Report, error) {
	report := modelconv.NewReport()

	folders, err := listDirs(s.fsProvider, modelsDir)
	if err != nil {
		return report, err
	}

	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		results, err := s.scanFolder(ctx, modelsDir, folder, outputDir)
		for _, r := range results {
			report.Add(r)
		}
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *Scanner) scanFolder(ctx context.Context, modelsDir, folder, outputDir string) ([]modelconv.Result, error) {
	folderPath := filepath.Join(modelsDir, folder)
	display := displayPath(modelsDir, folder)
	outputFile := modelconv.ArtifactPath(outputDir, folder)

	if s.fsProvider.Exists(outputFile) {
		s.logger.Skip("Skipped %s", display)
		return []modelconv.Result{{
			Target:     folder,
			FolderPath: folderPath,
			OutputFile: outputFile,
			Outcome:    modelconv.OutcomeSkippedExisting,
		}}, nil
	}

	if sceneFile, ok := s.ResolveSceneFile(folderPath); ok {
		res, err := s.writer.ConvertOne(ctx, sceneFile, folder, outputDir)
		if err != nil {
			return nil, err
		}
		res.FolderPath = folderPath
		return []modelconv.Result{res}, nil
	}

	s.logger.Info("%s is empty", display)

	children, err := listDirs(s.fsProvider, folderPath)
	if err != nil {
		return nil, err
	}

	var results []modelconv.Result
	represented := false
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := s.scanChild(ctx, modelsDir, folder, child, outputDir)
		if err != nil {
			return results, err
		}
		if res.Outcome != modelconv.OutcomeEmpty {
			represented = true
		}
		results = append(results, res)
	}

	if !represented {
		results = append(results, modelconv.Result{
			Target:     folder,
			FolderPath: folderPath,
			OutputFile: outputFile,
			Outcome:    modelconv.OutcomeEmpty,
		})
	}

	return results, nil
}

func (s *Scanner) scanChild(ctx context.Context, modelsDir, folder, child, outputDir string) (modelconv.Result, error) {
	childPath := filepath.Join(modelsDir, folder, child)
	display := displayPath(modelsDir, folder, child)
	target := modelconv.CompositeName(folder, child)
	outputFile := modelconv.ArtifactPath(outputDir, target)

	if s.fsProvider.Exists(outputFile) {
		s.logger.Skip("Skipped %s", display)
		return modelconv.Result{
			Target:     target,
			FolderPath: childPath,
			OutputFile: outputFile,
			Outcome:    modelconv.OutcomeSkippedExisting,
		}, nil
	}

	sceneFile, ok := s.ResolveSceneFile(childPath)
	if !ok {
		s.logger.Info("%s is empty", display)
		return modelconv.Result{
			Target:     target,
			FolderPath: childPath,
			OutputFile: outputFile,
			Outcome:    modelconv.OutcomeEmpty,
		}, nil
	}

	res, err := s.writer.ConvertOne(ctx, sceneFile, target, outputDir)
	if err != nil {
		return modelconv.Result{}, err
	}
	res.FolderPath = childPath
	return res, nil
}

// Inspect describes the models directory without converting anything.
// Top-level folders without a direct scene file get their immediate
// subfolders as Children.
func Inspect(fsProvider filesystem.FileSystemProvider, modelsDir string) ([]modelconv.ModelFolder, error) {
	folders, err := listDirs(fsProvider, modelsDir)
	if err != nil {
		return nil, err
	}

	var out []modelconv.ModelFolder
	for _, folder := range folders {
		mf := modelconv.ModelFolder{
			Name:   folder,
			Path:   filepath.Join(modelsDir, folder),
			Target: folder,
		}
		if sceneFile, ok := resolveSceneFile(fsProvider, mf.Path); ok {
			mf.SceneFile = sceneFile
			out = append(out, mf)
			continue
		}

		children, err := listDirs(fsProvider, mf.Path)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			cf := modelconv.ModelFolder{
				Name:   child,
				Path:   filepath.Join(mf.Path, child),
				Target: modelconv.CompositeName(folder, child),
			}
			cf.SceneFile, _ = resolveSceneFile(fsProvider, cf.Path)
			mf.Children = append(mf.Children, cf)
		}
		out = append(out, mf)
	}

	return out, nil
}

// listDirs returns the names of the directories directly inside dir.
// Entries that stat cleanly as non-directories are ignored; an entry that
// cannot be stat'ed (a dangling symlink, no permission) is an error.
func listDirs(fsProvider filesystem.FileSystemProvider, dir string) ([]string, error) {
	entries, err := fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %v: %w", dir, err, modelconv.ErrFilesystem)
	}

	var names []string
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		// Stat rather than entry.IsDir so symlinked model folders count.
		info, err := fsProvider.Stat(entryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %v: %w", entryPath, err, modelconv.ErrFilesystem)
		}
		if info.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// displayPath renders a path the way operators typed the models directory,
// e.g. "./3DModels/Car" rather than the cleaned "3DModels/Car".
func displayPath(modelsDir string, parts ...string) string {
	return strings.TrimRight(modelsDir, `/\`) + "/" + strings.Join(parts, "/")
}

var _ modelconv.SceneScanner = (*Scanner)(nil)
