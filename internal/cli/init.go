package cli

import (
	"fmt"
	"path/filepath"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/internal/logging"
	"github.com/modelconv/modelconv/internal/scaffold"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [project_path]",
	Short: "Create modelconv.yaml and the default model directories",
	Long: `Init writes a starter modelconv.yaml, a .env.example and the 3DModels and
ModelDefinitions directories into project_path (default: current directory).

Existing files are never overwritten.

Examples:
  modelconv init
  modelconv init ./web`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initTemplate string

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initTemplate, "template", scaffold.DefaultTemplate, "Project template to use")
}

func runInit(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	targetPath := "."
	if len(args) == 1 {
		targetPath = args[0]
	}

	projectName := filepath.Base(targetPath)
	if abs, err := filepath.Abs(targetPath); err == nil {
		projectName = filepath.Base(abs)
	}

	logger := logging.NewConsoleLoggerWithWriters(verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
	s := scaffold.NewScaffolder(filesystem.NewOSFileSystem(), logger)

	written, err := s.CreateProject(projectName, initTemplate, targetPath)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	logger.Info("Initialized %s (%d file(s) written)", targetPath, len(written))
	return nil
}
