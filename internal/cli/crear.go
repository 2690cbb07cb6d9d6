package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/obrakit-labs/obrakit/internal/config"
	"github.com/obrakit-labs/obrakit/internal/estructura"
)

var crearBaseDir string

func init() {
	crearCmd.Flags().StringVar(&crearBaseDir, "base-dir", "", "Base directory for the structure (default: base_dir setting, then current directory)")
	rootCmd.AddCommand(crearCmd)
}

var crearCmd = &cobra.Command{
	Use:   "crear <name>",
	Short: "Create the folder structure for a project",
	Long: `Create the full folder structure for the named project.

Unlike the bare invocation, crear takes the project name as an argument and
honors the base_dir setting. Existing directories are left untouched, so
re-running after a partial failure completes the remainder.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir, err := resolveBaseDir(crearBaseDir)
		if err != nil {
			return err
		}
		return createStructure(cmd, baseDir, args[0])
	},
}

// createStructure generates the tree and prints the success message with
// the absolute project root, shared by the root and crear commands.
func createStructure(cmd *cobra.Command, baseDir, project string) error {
	out := cmd.OutOrStdout()

	if _, err := estructura.Generate(out, baseDir, project); err != nil {
		return fmt.Errorf("creating structure: %w", err)
	}

	root := filepath.Join(baseDir, project)
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	fmt.Fprintf(out, "\nEstructura creada en: %s\n", abs)
	return nil
}

// resolveBaseDir picks the base directory: explicit flag, then the base_dir
// config setting, then the current directory.
func resolveBaseDir(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	config.Load()
	if v := config.Get(config.KeyBaseDir); v != "" {
		return v, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
