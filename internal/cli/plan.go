package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obrakit-labs/obrakit/internal/manifest"
)

var (
	planBaseDir string
	planOutput  string
)

func init() {
	planCmd.Flags().StringVar(&planBaseDir, "base-dir", "", "Base directory the plan is relative to (default: base_dir setting, then current directory)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Write the plan as YAML to a file instead of listing paths")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan <name>",
	Short: "Show the folder structure for a project without creating it",
	Long: `Resolve the folder structure for the named project and print the paths
that would be created, without touching the filesystem.

With --output, the resolved structure is written as a YAML plan document
that 'doctor --check-manifest' can validate later.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir, err := resolveBaseDir(planBaseDir)
		if err != nil {
			return err
		}

		p, err := manifest.NewPlan(args[0], baseDir)
		if err != nil {
			return fmt.Errorf("resolving plan: %w", err)
		}

		if planOutput != "" {
			if err := p.WriteFile(planOutput); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote plan to %s\n", planOutput)
			return nil
		}

		for _, rel := range p.Paths {
			fmt.Fprintln(cmd.OutOrStdout(), rel)
		}
		return nil
	},
}
