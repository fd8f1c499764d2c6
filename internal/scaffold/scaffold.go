package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

//go:embed all:templates
var templatesFS embed.FS

// DefaultTemplate is the template used by `modelconv init`.
const DefaultTemplate = "default"

// Scaffolder lays out a new modelconv project from an embedded template.
type Scaffolder struct {
	fsProvider filesystem.FileSystemProvider
	logger     modelconv.Logger
}

// NewScaffolder creates a new Scaffolder instance.
// Panics if fsProvider or logger is nil.
func NewScaffolder(fsProvider filesystem.FileSystemProvider, logger modelconv.Logger) *Scaffolder {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// CreateProject copies templateName into targetPath. Files that already
// exist are left untouched and reported as skipped, so running init twice
// is harmless. Returns the paths that were written.
func (s *Scaffolder) CreateProject(projectName, templateName, targetPath string) ([]string, error) {
	templatePath := path.Join("templates", templateName)
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		available, _ := ListTemplates()
		return nil, fmt.Errorf("template '%s' not found (available: %s): %w",
			templateName, strings.Join(available, ", "), modelconv.ErrInvalidConfig)
	}

	if s.fsProvider.Exists(targetPath) && !filesystem.IsDir(s.fsProvider, targetPath) {
		return nil, fmt.Errorf("target path %s is not a directory: %w", targetPath, modelconv.ErrFilesystem)
	}
	if err := s.fsProvider.MkdirAll(targetPath); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %v: %w", err, modelconv.ErrFilesystem)
	}

	s.logger.Verbose("Creating project '%s' at %s with template '%s'", projectName, targetPath, templateName)

	var written []string
	err := fs.WalkDir(templatesFS, templatePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == templatePath {
			return nil
		}

		rel := strings.TrimPrefix(p, templatePath+"/")
		target := filepath.Join(targetPath, filepath.FromSlash(rel))

		if d.IsDir() {
			s.logger.Verbose("Creating directory: %s", rel)
			return s.fsProvider.MkdirAll(target)
		}

		if s.fsProvider.Exists(target) {
			s.logger.Skip("Skipped %s", target)
			return nil
		}

		content, err := templatesFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		if err := s.fsProvider.WriteFile(target, []byte(processTemplate(string(content), projectName))); err != nil {
			return fmt.Errorf("failed to write file %s: %v: %w", target, err, modelconv.ErrFilesystem)
		}
		s.logger.Success("Created %s", target)
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("failed to copy template files: %w", err)
	}

	return written, nil
}

// processTemplate replaces template variables in content
func processTemplate(content, projectName string) string {
	return strings.ReplaceAll(content, "{{PROJECT_NAME}}", projectName)
}

// ListTemplates returns the names of the embedded templates.
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}

	return templates, nil
}
