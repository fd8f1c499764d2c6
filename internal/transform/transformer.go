package transform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelconv/modelconv/internal/checksum"
	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// Transformer converts one resolved scene file into one artifact.
type Transformer struct {
	compiler   modelconv.Compiler
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
	logger     modelconv.Logger
}

// NewTransformer creates a Transformer.
// Panics if any dependency is nil.
func NewTransformer(
	compiler modelconv.Compiler,
	fsProvider filesystem.FileSystemProvider,
	calculator checksum.Calculator,
	logger modelconv.Logger,
) *Transformer {
	if compiler == nil {
		panic("compiler cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Transformer{
		compiler:   compiler,
		fsProvider: fsProvider,
		calculator: calculator,
		logger:     logger,
	}
}

// ConvertOne compiles sourceFile into outputDir/<targetName>.tsx and rewrites
// the draft in place. Compiler failures and an unreadable draft wrap
// modelconv.ErrExternalTool; a failed write wraps modelconv.ErrFilesystem.
func (t *Transformer) ConvertOne(ctx context.Context, sourceFile, targetName, outputDir string) (modelconv.Result, error) {
	t.logger.Progress("%s is being converted", sourceFile)

	outputFile := modelconv.ArtifactPath(outputDir, targetName)
	result := modelconv.Result{
		Target:     targetName,
		FolderPath: filepath.Dir(sourceFile),
		SourceFile: sourceFile,
		OutputFile: outputFile,
		Outcome:    modelconv.OutcomeConverted,
	}

	if _, err := t.compiler.Compile(ctx, modelconv.CompileRequest{
		Input:  sourceFile,
		Output: outputFile,
		Types:  true,
	}); err != nil {
		return result, fmt.Errorf("failed to compile %s: %w", sourceFile, err)
	}

	draft, err := t.fsProvider.ReadFile(outputFile)
	if err != nil {
		return result, fmt.Errorf("failed to read draft %s: %v: %w", outputFile, err, modelconv.ErrExternalTool)
	}

	content, unmatched := Apply(string(draft), Pipeline(targetName, sourceFile))
	for _, name := range unmatched {
		t.logger.Warn("%s: rewrite %s found nothing to change", outputFile, name)
	}

	if err := t.fsProvider.WriteFile(outputFile, []byte(content)); err != nil {
		return result, fmt.Errorf("failed to write %s: %v: %w", outputFile, err, modelconv.ErrFilesystem)
	}

	result.Digest = t.calculator.CalculateNormalized([]byte(content))
	t.logger.Verbose("%s sha256 %s", outputFile, t.calculator.CalculateRaw([]byte(content)))
	t.logger.Success("Successfully processed and wrote: %s", outputFile)

	return result, nil
}

var _ modelconv.ArtifactWriter = (*Transformer)(nil)
