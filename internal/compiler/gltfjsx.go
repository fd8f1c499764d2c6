package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// maxStderrTail bounds how much compiler stderr is kept for ToolError.
const maxStderrTail = 4096

// ToolError describes a failed compiler invocation.
type ToolError struct {
	Command  []string
	ExitCode int // -1 when the process could not be started
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: exit code %d", strings.Join(e.Command, " "), e.ExitCode)
	if e.ExitCode < 0 && e.Err != nil {
		msg = fmt.Sprintf("%s: %v", strings.Join(e.Command, " "), e.Err)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap exposes ErrExternalTool so callers can use errors.Is.
func (e *ToolError) Unwrap() []error {
	return []error{modelconv.ErrExternalTool, e.Err}
}

// Options configures a Gltfjsx compiler.
type Options struct {
	// Command is the program and leading arguments, e.g. ["npx", "gltfjsx"].
	// Defaults to modelconv.DefaultCompilerCommand.
	Command []string

	// Stdout receives the child's stdout. Nil discards it.
	Stdout io.Writer

	// Stderr receives the child's stderr as it is produced. Nil discards it;
	// the tail is captured for ToolError either way.
	Stderr io.Writer
}

// Gltfjsx invokes gltfjsx as `<command> <input> [--types] --output <output>`.
type Gltfjsx struct {
	command []string
	stdout  io.Writer
	stderr  io.Writer
	fs      filesystem.FileSystemProvider
}

// NewGltfjsx creates a compiler that verifies drafts through fsProvider.
// Panics if fsProvider is nil.
func NewGltfjsx(fsProvider filesystem.FileSystemProvider, opts Options) *Gltfjsx {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	command := opts.Command
	if len(command) == 0 {
		command = modelconv.DefaultCompilerCommand
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	return &Gltfjsx{
		command: append([]string(nil), command...),
		stdout:  stdout,
		stderr:  stderr,
		fs:      fsProvider,
	}
}

// Args returns the full argv for req, program first.
func (g *Gltfjsx) Args(req modelconv.CompileRequest) []string {
	argv := append([]string(nil), g.command...)
	argv = append(argv, req.Input)
	if req.Types {
		argv = append(argv, "--types")
	}
	return append(argv, "--output", req.Output)
}

// Compile runs the compiler and waits for it to exit.
func (g *Gltfjsx) Compile(ctx context.Context, req modelconv.CompileRequest) (modelconv.CompileResult, error) {
	argv := g.Args(req)

	tail := &tailBuffer{limit: maxStderrTail}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = g.stdout
	cmd.Stderr = io.MultiWriter(g.stderr, tail)

	if err := cmd.Run(); err != nil {
		toolErr := &ToolError{
			Command:  argv,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(tail.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		return modelconv.CompileResult{}, toolErr
	}

	if !filesystem.IsFile(g.fs, req.Output) {
		return modelconv.CompileResult{}, fmt.Errorf("%s exited successfully but wrote no draft at %s: %w",
			strings.Join(argv, " "), req.Output, modelconv.ErrExternalTool)
	}

	return modelconv.CompileResult{OutputPath: req.Output}, nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string { return string(t.buf) }

var _ modelconv.Compiler = (*Gltfjsx)(nil)
