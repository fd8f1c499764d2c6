package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func newBufferedLogger(verbose bool) (*ConsoleLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsoleLoggerWithWriters(verbose, &out, &errOut), &out, &errOut
}

func TestConsoleLogger_NoticePrefixes(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *ConsoleLogger)
		want string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("%s is empty", "./3DModels/Empty") }, "ℹ️ ./3DModels/Empty is empty\n"},
		{"skip", func(l *ConsoleLogger) { l.Skip("Skipped %s", "./3DModels/Car") }, "🚫 Skipped ./3DModels/Car\n"},
		{"progress", func(l *ConsoleLogger) { l.Progress("%s is being converted", "a/scene.gltf") }, "🔄 a/scene.gltf is being converted\n"},
		{"success", func(l *ConsoleLogger) { l.Success("Successfully processed and wrote: %s", "out/Car.tsx") }, "✔️ Successfully processed and wrote: out/Car.tsx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, out, errOut := newBufferedLogger(false)
			tt.log(logger)

			if out.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, out.String())
			}
			if errOut.Len() != 0 {
				t.Errorf("Expected nothing on error writer, got %q", errOut.String())
			}
		})
	}
}

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	logger, out, errOut := newBufferedLogger(true)
	logger.Verbose("test message: %s", "value")

	expected := "[VERBOSE] test message: value\n"
	if errOut.String() != expected {
		t.Errorf("Expected %q, got %q", expected, errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("Verbose should not write to the notice writer, got %q", out.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	logger, out, errOut := newBufferedLogger(false)
	logger.Verbose("test message: %s", "value")

	if out.Len()+errOut.Len() != 0 {
		t.Errorf("Expected no output, got %q / %q", out.String(), errOut.String())
	}
}

func TestConsoleLogger_WarnAndError(t *testing.T) {
	logger, _, errOut := newBufferedLogger(false)
	logger.Warn("rewrite %s matched nothing", "default-export")
	logger.Error("error message: %s", "value")

	expected := "⚠️ rewrite default-export matched nothing\n[ERROR] error message: value\n"
	if errOut.String() != expected {
		t.Errorf("Expected %q, got %q", expected, errOut.String())
	}
}

func TestConsoleLogger_NoArgsKeepsPercentLiteral(t *testing.T) {
	logger, out, _ := newBufferedLogger(false)
	logger.Info("100% done")

	if out.String() != "ℹ️ 100% done\n" {
		t.Errorf("Expected literal message, got %q", out.String())
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	logger, out, errOut := newBufferedLogger(true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()+errOut.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Skip("skip %d", id)
			logger.Progress("progress %d", id)
			logger.Success("success %d", id)
			logger.Warn("warn %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	// Should complete without panic
	wg.Wait()
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger, _, _ := newBufferedLogger(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
