package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obrakit-labs/obrakit/internal/branding"
	"github.com/obrakit-labs/obrakit/internal/config"
	"github.com/obrakit-labs/obrakit/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the standard folder hierarchy for a construction
project: ten numbered phase folders plus the seven guild subfolders, all
named after the project.

Run it bare to be prompted for the project name; the structure is created
in the current directory. Use 'crear' for non-interactive invocation.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keep the version output clean for scripts.
		if cmd.Name() == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := promptProjectName(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		// The bare invocation always works in the current directory.
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		return createStructure(cmd, cwd, project)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
