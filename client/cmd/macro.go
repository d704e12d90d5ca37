package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var macroFile string

// macroCmd represents the macro command
var macroCmd = &cobra.Command{
	Use:          "macro",
	Short:        "upload a device macro",
	Long:         "Uploads a macro definition. The first line of the file is the macro header command, the last line the multiline delimiter, everything in between the body.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(macroFile)
		if err != nil {
			return err
		}
		var lines []string
		for _, l := range strings.Split(string(b), "\n") {
			if strings.TrimSpace(l) != "" {
				lines = append(lines, l)
			}
		}

		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		res, err := session.EditMacro(lines, true)
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
	rootCmd.AddCommand(macroCmd)
	macroCmd.Flags().StringVarP(&macroFile, "file", "f", "", "macro definition file")
	macroCmd.MarkFlagRequired("file")
}
