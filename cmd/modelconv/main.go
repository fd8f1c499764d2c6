package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/modelconv/modelconv/internal/cli"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(modelconv.ExitPanic)
		}
	}()

	if os.Getenv("MODELCONV_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(modelconv.ExitCodeForError(err))
	}
}
