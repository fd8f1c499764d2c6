package modelconv_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/modelconv/modelconv/pkg/modelconv"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, modelconv.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), modelconv.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), modelconv.ExitUsageError},
		{"unknown command", errors.New(`unknown command "extra" for "modelconv convert"`), modelconv.ExitUsageError},
		{"flag needs argument", errors.New("flag needs an argument: --models-dir"), modelconv.ExitUsageError},
		{"invalid config", modelconv.ErrInvalidConfig, modelconv.ExitConfigError},
		{"wrapped filesystem", fmt.Errorf("conversion failed: %w", modelconv.ErrFilesystem), modelconv.ExitFilesystemError},
		{"wrapped external tool", fmt.Errorf("failed to compile a/scene.gltf: %w", modelconv.ErrExternalTool), modelconv.ExitExternalToolError},
		{"joined config errors", errors.Join(
			fmt.Errorf("ModelsDir is required: %w", modelconv.ErrInvalidConfig),
			fmt.Errorf("OutputDir is required: %w", modelconv.ErrInvalidConfig),
		), modelconv.ExitConfigError},
		{"general error", errors.New("something went wrong"), modelconv.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modelconv.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
