package cli

import (
	"fmt"
	"io"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/internal/files/scanner"
	"github.com/modelconv/modelconv/pkg/modelconv"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which component each model folder maps to",
	Long: `List prints every model folder, the component it would produce and the
scene file that would be converted, without running gltfjsx.

Examples:
  modelconv list
  modelconv list --models-dir ./assets/models`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addDirFlags(listCmd, false)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	folders, err := scanner.Inspect(filesystem.NewOSFileSystem(), s.ModelsDir)
	if err != nil {
		return err
	}

	printFolders(cmd.OutOrStdout(), folders)
	return nil
}

func printFolders(w io.Writer, folders []modelconv.ModelFolder) {
	if len(folders) == 0 {
		fmt.Fprintln(w, "No model folders found.")
		return
	}

	for _, f := range folders {
		if f.HasDirectSceneFile() {
			fmt.Fprintf(w, "%s%s  <-  %s\n", f.Target, modelconv.ComponentExtension, f.SceneFile)
			continue
		}
		fmt.Fprintf(w, "%s/  (no scene file)\n", f.Name)
		for _, c := range f.Children {
			if c.HasDirectSceneFile() {
				fmt.Fprintf(w, "  %s%s  <-  %s\n", c.Target, modelconv.ComponentExtension, c.SceneFile)
			} else {
				fmt.Fprintf(w, "  %s/  (no scene file)\n", c.Name)
			}
		}
	}
}
