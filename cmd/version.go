package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorsd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorsd",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gorsd v%s\n", version.Version)
		fmt.Fprintln(out, "Rock Support Design Tool")
		if version.GitCommit != "unknown" {
			fmt.Fprintf(out, "Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
