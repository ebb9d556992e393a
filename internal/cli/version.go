package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"teamswatch/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cyan("teamswatch"), build.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", dim(fmt.Sprintf("commit %s, built %s", build.Commit, build.BuildDate)))
	},
}
