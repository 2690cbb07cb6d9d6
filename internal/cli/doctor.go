package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obrakit-labs/obrakit/internal/estructura"
	"github.com/obrakit-labs/obrakit/internal/manifest"
)

var (
	doctorProject  string
	doctorBaseDir  string
	doctorFix      bool
	doctorManifest string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorProject, "project", "", "Check the structure of the named project")
	doctorCmd.Flags().StringVar(&doctorBaseDir, "base-dir", "", "Base directory to check in (default: base_dir setting, then current directory)")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Recreate missing directories")
	doctorCmd.Flags().StringVar(&doctorManifest, "check-manifest", "", "Validate a plan file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for an existing project structure",
	Long: `Run diagnostic checks on a previously created project structure.

With --project, every expected folder is checked and reported; --fix
recreates missing ones. Conflicts (a file occupying a folder path) are
reported but never repaired automatically.

With --check-manifest, a plan file is validated against the plan schema and
against the current folder templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if doctorProject == "" && doctorManifest == "" {
			return fmt.Errorf("nothing to check: pass --project or --check-manifest")
		}

		if doctorManifest != "" {
			if err := runManifestCheck(doctorManifest); err != nil {
				return err
			}
		}

		if doctorProject != "" {
			baseDir, err := resolveBaseDir(doctorBaseDir)
			if err != nil {
				return err
			}
			if err := estructura.Check(os.Stdout, baseDir, doctorProject, doctorFix); err != nil {
				return fmt.Errorf("structure check: %w", err)
			}
		}

		return nil
	},
}

func runManifestCheck(path string) error {
	fmt.Printf("Plan validation: %s\n", path)

	// Validate against the JSON schema first.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("plan validation failed: %w", err)
	}

	if !result.Valid {
		fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Printf("    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("plan %s has %d validation issue(s)", path, len(result.Issues))
	}

	// Then check the paths against the current templates.
	p, err := manifest.ParseFile(path)
	if err != nil {
		return err
	}
	if err := p.Verify(); err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("plan does not match current templates: %w", err)
	}

	fmt.Printf("  [ OK ] Valid plan for project %s (%d paths)\n", p.Project, len(p.Paths))
	return nil
}
