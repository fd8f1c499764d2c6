package modelconv

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := svc.Convert(ctx, cfg)
//	if errors.Is(err, modelconv.ErrExternalTool) {
//	    // gltfjsx failed or did not produce a draft
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFilesystem indicates a directory could not be listed or a file could
	// not be read or written.
	ErrFilesystem = errors.New("filesystem error")

	// ErrExternalTool indicates the scene compiler exited non-zero or did not
	// write its draft.
	ErrExternalTool = errors.New("external tool failed")
)

// usageErrorPatterns are message fragments cobra and pflag produce for
// command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystemError
	case errors.Is(err, ErrExternalTool):
		return ExitExternalToolError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
