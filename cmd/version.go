package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionCmd used to get current version of portfolio
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of portfolio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "portfolio v0.1.0")
	},
}
