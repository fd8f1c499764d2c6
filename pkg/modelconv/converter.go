package modelconv

import "context"

// Converter is the main interface for a batch conversion run.
type Converter interface {
	// Convert scans cfg.ModelsDir and writes one artifact per resolved scene
	// file into cfg.OutputDir. The first failure aborts the run.
	Convert(ctx context.Context, cfg ConversionConfig) (Report, error)
}

// SceneScanner walks a models directory and dispatches conversions.
type SceneScanner interface {
	// ResolveSceneFile returns the scene file inside folderPath, preferring
	// PrimarySceneFile over SecondarySceneFile.
	ResolveSceneFile(folderPath string) (string, bool)

	// Scan visits every model folder under modelsDir.
	Scan(ctx context.Context, modelsDir, outputDir string) (Report, error)
}

// ArtifactWriter converts one resolved scene file into one artifact.
type ArtifactWriter interface {
	ConvertOne(ctx context.Context, sourceFile, targetName, outputDir string) (Result, error)
}
