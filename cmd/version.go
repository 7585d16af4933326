package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information.",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("wily %s (commit %s, built %s)\n", version, commit, date)
	},
}
