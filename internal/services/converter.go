package services

import (
	"context"
	"fmt"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// ConversionService implements the Converter interface.
// Thread-Safety: NOT safe for concurrent Convert() calls on the same instance;
// two runs over the same output directory would race on the skip check.
type ConversionService struct {
	scanner    modelconv.SceneScanner
	fsProvider filesystem.FileSystemProvider
	logger     modelconv.Logger
}

// NewConversionService creates a new ConversionService with all dependencies injected.
// Panics on nil dependencies; runtime conditions are returned as errors from Convert.
func NewConversionService(
	scanner modelconv.SceneScanner,
	fsProvider filesystem.FileSystemProvider,
	logger modelconv.Logger,
) *ConversionService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ConversionService{
		scanner:    scanner,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Convert runs one batch conversion using the provided configuration.
// The returned report is valid even when err is non-nil and holds every
// result recorded before the failure.
func (s *ConversionService) Convert(ctx context.Context, config modelconv.ConversionConfig) (modelconv.Report, error) {
	if err := config.Validate(); err != nil {
		return modelconv.Report{}, fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Verbose("Models directory: %s", config.ModelsDir)
	s.logger.Verbose("Output directory: %s", config.OutputDir)

	if err := s.checkModelsDir(config.ModelsDir); err != nil {
		return modelconv.Report{}, err
	}
	if err := s.ensureOutputDir(config.OutputDir); err != nil {
		return modelconv.Report{}, err
	}

	report, err := s.scanner.Scan(ctx, config.ModelsDir, config.OutputDir)
	s.logger.Verbose("Run %s recorded %d result(s)", report.RunID, len(report.Results))
	if err != nil {
		return report, err
	}

	s.logger.Info("%s", report.Summary())
	return report, nil
}

// checkModelsDir fails before anything is written when the models
// directory is missing or not a directory.
func (s *ConversionService) checkModelsDir(modelsDir string) error {
	info, err := s.fsProvider.Stat(modelsDir)
	if err != nil {
		return fmt.Errorf("models directory %s: %v: %w", modelsDir, err, modelconv.ErrFilesystem)
	}
	if !info.IsDir() {
		return fmt.Errorf("models path %s is not a directory: %w", modelsDir, modelconv.ErrFilesystem)
	}
	return nil
}

// ensureOutputDir creates the output directory when missing. An existing
// non-directory at that path is a filesystem error.
func (s *ConversionService) ensureOutputDir(outputDir string) error {
	if s.fsProvider.Exists(outputDir) {
		if !filesystem.IsDir(s.fsProvider, outputDir) {
			return fmt.Errorf("output path %s is not a directory: %w", outputDir, modelconv.ErrFilesystem)
		}
		return nil
	}

	s.logger.Verbose("Creating output directory %s", outputDir)
	if err := s.fsProvider.MkdirAll(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory %s: %v: %w", outputDir, err, modelconv.ErrFilesystem)
	}
	return nil
}

var _ modelconv.Converter = (*ConversionService)(nil)
