package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelconv/modelconv/internal/checksum"
	"github.com/modelconv/modelconv/internal/compiler"
	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/internal/files/scanner"
	"github.com/modelconv/modelconv/internal/logging"
	"github.com/modelconv/modelconv/internal/services"
	"github.com/modelconv/modelconv/internal/transform"
	"github.com/modelconv/modelconv/pkg/modelconv"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert every model folder into a .tsx component",
	Long: `Convert scans the models directory and, for every folder, writes
<output-dir>/<Folder>.tsx from the folder's scene.gltf (or scene.glb).

For each folder, in name order:
  1. If <output-dir>/<Folder>.tsx exists, the folder is skipped.
  2. If the folder holds a scene file, gltfjsx converts it.
  3. Otherwise the folder is reported empty and each subfolder is handled
     the same way as <Folder>-<Subfolder>.tsx. Deeper levels are not searched.

Every generated component is post-processed: it becomes the default export
named Model<Name>, imports JSX and useMemo from react, tunes its materials
once per render and loads the scene from its real path.

The first failure stops the run. Components written before it are kept.

Examples:
  # Default layout: ./3DModels -> ./ModelDefinitions
  modelconv convert

  # Explicit directories
  modelconv convert --models-dir ./assets/models --output-dir ./src/models

  # Use pnpm instead of npx
  MODELCONV_COMPILER="pnpm dlx gltfjsx" modelconv convert`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addDirFlags(convertCmd, true)
}

// compilerFactory builds the scene compiler for a run. Tests replace it.
var compilerFactory = func(fsProvider filesystem.FileSystemProvider, command []string, verbose bool, stderr io.Writer) modelconv.Compiler {
	opts := compiler.Options{
		Command: command,
		Stderr:  stderr,
	}
	if verbose {
		opts.Stdout = stderr
	}
	return compiler.NewGltfjsx(fsProvider, opts)
}

// buildConversionConfig resolves the run configuration from flags,
// environment and modelconv.yaml.
func buildConversionConfig(cmd *cobra.Command, verbose bool) (modelconv.ConversionConfig, []string, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return modelconv.ConversionConfig{}, nil, err
	}

	if verbose {
		errOut := cmd.ErrOrStderr()
		if s.ConfigFile != "" {
			fmt.Fprintf(errOut, "[VERBOSE] Using config file: %s\n", s.ConfigFile)
		}
		fmt.Fprintf(errOut, "[VERBOSE] Compiler command: %v\n", s.CompilerCommand)
	}

	cfg := modelconv.ConversionConfig{
		ModelsDir: s.ModelsDir,
		OutputDir: s.OutputDir,
		Verbose:   verbose,
	}
	return cfg, s.CompilerCommand, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, command, err := buildConversionConfig(cmd, verbose)
	if err != nil {
		return err
	}

	// Create dependencies
	fsProvider := filesystem.NewOSFileSystem()
	logger := logging.NewConsoleLoggerWithWriters(verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
	sceneCompiler := compilerFactory(fsProvider, command, verbose, cmd.ErrOrStderr())
	transformer := transform.NewTransformer(sceneCompiler, fsProvider, checksum.New(), logger)
	sceneScanner := scanner.NewScannerWithFS(transformer, fsProvider, logger)
	converter := services.NewConversionService(sceneScanner, fsProvider, logger)

	// Ctrl+C and SIGTERM cancel the context, which kills a running gltfjsx.
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := converter.Convert(ctx, cfg); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "\n[INTERRUPT] Conversion cancelled")
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	return nil
}
