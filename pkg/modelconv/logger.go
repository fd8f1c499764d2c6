package modelconv

// Logger provides a pluggable logging interface for conversion runs.
// Each notice kind maps to one fixed console prefix so operators can grep
// the outcome of every folder.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational notices, such as a folder with no scene file.
	Info(format string, args ...interface{})

	// Skip logs that a target was left alone because its artifact exists.
	Skip(format string, args ...interface{})

	// Progress logs that a conversion has started.
	Progress(format string, args ...interface{})

	// Success logs that an artifact was written.
	Success(format string, args ...interface{})

	// Warn logs degraded but non-fatal conditions.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
