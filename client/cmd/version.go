package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"
var commit = ""

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s-%s\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
