package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/modelconv/modelconv/internal/tui"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// ConsoleLogger writes notices to out (stdout by default) and verbose,
// warning and error lines to errOut (stderr by default).
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose   bool
	out       io.Writer
	errOut    io.Writer
	styledOut bool
	styledErr bool
	mu        sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stdout and stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriters(verbose, os.Stdout, os.Stderr)
}

// NewConsoleLoggerWithWriters creates a ConsoleLogger with explicit
// destinations. Styling is enabled per writer only when it is a terminal.
func NewConsoleLoggerWithWriters(verbose bool, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		verbose:   verbose,
		out:       out,
		errOut:    errOut,
		styledOut: tui.IsStyled(out),
		styledErr: tui.IsStyled(errOut),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.errOut, l.styledErr, tui.VerboseStyle, tui.PrefixVerbose, format, args)
}

// Info logs informational notices.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, l.styledOut, tui.InfoStyle, tui.PrefixInfo, format, args)
}

// Skip logs that an existing artifact was left untouched.
func (l *ConsoleLogger) Skip(format string, args ...interface{}) {
	l.write(l.out, l.styledOut, tui.SkipStyle, tui.PrefixSkip, format, args)
}

// Progress logs the start of a conversion.
func (l *ConsoleLogger) Progress(format string, args ...interface{}) {
	l.write(l.out, l.styledOut, tui.ProgressStyle, tui.PrefixProgress, format, args)
}

// Success logs a written artifact.
func (l *ConsoleLogger) Success(format string, args ...interface{}) {
	l.write(l.out, l.styledOut, tui.SuccessStyle, tui.PrefixSuccess, format, args)
}

// Warn logs degraded but non-fatal conditions.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.errOut, l.styledErr, tui.WarningStyle, tui.PrefixWarning, format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, l.styledErr, tui.ErrorStyle, tui.PrefixError, format, args)
}

func (l *ConsoleLogger) write(w io.Writer, styled bool, style lipgloss.Style, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if styled {
		prefix = style.Render(prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(w, prefix+" "+msg+"\n")
}

var _ modelconv.Logger = (*ConsoleLogger)(nil)
