package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:          "info",
	Short:        "discover device model, version, hostname and image",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		info, err := session.GetDeviceInfo()
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
