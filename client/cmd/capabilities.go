package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// capabilitiesCmd represents the capabilities command
var capabilitiesCmd = &cobra.Command{
	Use:          "capabilities",
	Short:        "print the capability descriptor of the session",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		caps, err := session.Capabilities()
		if err != nil {
			return err
		}
		fmt.Println(caps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capabilitiesCmd)
}
