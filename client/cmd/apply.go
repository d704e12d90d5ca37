package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amalmborg97/iosctl/pkg/cliconf"
)

var applyFile string

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:          "apply [command]...",
	Short:        "apply configuration commands in configuration mode",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := args
		if applyFile != "" {
			b, err := os.ReadFile(applyFile)
			if err != nil {
				return err
			}
			for _, l := range strings.Split(string(b), "\n") {
				if strings.TrimSpace(l) != "" {
					lines = append(lines, l)
				}
			}
		}

		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		res, err := session.EditConfig(cliconf.ToCommands(lines), true)
		if err != nil {
			return err
		}
		for i, req := range res.Requests {
			fmt.Printf("%s\n%s\n", req, res.Responses[i])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "file with config commands, one per line")
}
