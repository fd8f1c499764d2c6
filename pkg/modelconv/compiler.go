package modelconv

import "context"

// CompileRequest describes one scene-to-component compilation.
type CompileRequest struct {
	// Input is the resolved scene file.
	Input string

	// Output is where the compiler must write its draft.
	Output string

	// Types asks the compiler to emit TypeScript type declarations.
	Types bool
}

// CompileResult is returned by a successful compilation.
type CompileResult struct {
	// OutputPath is the draft the compiler wrote.
	OutputPath string
}

// Compiler runs the external scene compiler. Compile blocks until the
// process exits; a non-zero exit or a missing draft is reported as an error
// wrapping ErrExternalTool.
type Compiler interface {
	Compile(ctx context.Context, req CompileRequest) (CompileResult, error)
}
