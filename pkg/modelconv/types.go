package modelconv

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ConversionConfig contains all parameters needed for a conversion run.
type ConversionConfig struct {
	// ModelsDir is the root directory holding one folder per model
	ModelsDir string

	// OutputDir is where <target>.tsx artifacts are written
	OutputDir string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ConversionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConversionConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.ModelsDir) == "" {
		errs = append(errs, fmt.Errorf("ModelsDir is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, fmt.Errorf("OutputDir is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Outcome classifies what happened to one target during a run.
type Outcome int

const (
	// OutcomeConverted means the compiler ran and the artifact was written.
	OutcomeConverted Outcome = iota
	// OutcomeSkippedExisting means the artifact already existed.
	OutcomeSkippedExisting
	// OutcomeEmpty means no scene file could be resolved.
	OutcomeEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeSkippedExisting:
		return "skipped"
	case OutcomeEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result records the outcome for one folder or nested subfolder.
type Result struct {
	// Target is the artifact name without extension ("Car", "Nested-Sub").
	Target string

	// FolderPath is the folder that was inspected.
	FolderPath string

	// SourceFile is the resolved scene file; empty unless Outcome is OutcomeConverted.
	SourceFile string

	// OutputFile is the artifact path for this target.
	OutputFile string

	Outcome Outcome

	// Digest is the SHA-256 of the written artifact; empty unless converted.
	Digest string
}

// Report summarises a conversion run.
type Report struct {
	// RunID identifies the run in verbose logs.
	RunID uuid.UUID

	// Results are in visit order.
	Results []Result
}

// NewReport creates an empty report with a fresh run id.
func NewReport() Report {
	return Report{RunID: uuid.New()}
}

// Add appends a result.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// Count returns how many results have the given outcome.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Summary renders the one-line run summary.
func (r Report) Summary() string {
	return fmt.Sprintf("Done: converted %d, skipped %d, empty %d",
		r.Count(OutcomeConverted), r.Count(OutcomeSkippedExisting), r.Count(OutcomeEmpty))
}

// ArtifactPath returns outputDir/<target>.tsx.
func ArtifactPath(outputDir, target string) string {
	return filepath.Join(outputDir, target+ComponentExtension)
}

// CompositeName names the artifact of a model found one level down:
// CompositeName("Nested", "Sub") == "Nested-Sub".
func CompositeName(parent, child string) string {
	return parent + CompositeNameSeparator + child
}

// ModelFolder is a directory under the models root as seen by a scan.
type ModelFolder struct {
	// Name is the folder's own name.
	Name string

	// Path is the folder's path, joined onto the models directory.
	Path string

	// Target is the artifact name this folder maps to.
	Target string

	// SceneFile is the resolved scene file, empty when none exists.
	SceneFile string

	// Children are the immediate subfolders. Only populated for top-level
	// folders without a direct scene file.
	Children []ModelFolder
}

// HasDirectSceneFile reports whether the folder itself holds a scene file.
func (f ModelFolder) HasDirectSceneFile() bool {
	return f.SceneFile != ""
}
