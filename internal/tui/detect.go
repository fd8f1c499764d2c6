package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how console output should be rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, redirected output and tests.
	ModePlain Mode = iota
	// ModeStyled is used when a human is watching a colour terminal.
	ModeStyled
)

// DetectMode determines whether output written to w should be styled.
//
// Returns ModePlain if:
//   - MODELCONV_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - w is not an *os.File attached to a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(w io.Writer) Mode {
	if os.Getenv("MODELCONV_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok {
		return ModePlain
	}
	if !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true if w should receive styled output.
func IsStyled(w io.Writer) bool {
	return DetectMode(w) == ModeStyled
}
