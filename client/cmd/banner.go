package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	bannerFile      string
	bannerDelimiter string
)

// bannerCmd represents the banner command
var bannerCmd = &cobra.Command{
	Use:          "banner",
	Short:        "upload banner bodies from a yaml mapping",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(bannerFile)
		if err != nil {
			return err
		}
		banners := make(map[string]string)
		if err := yaml.Unmarshal(b, &banners); err != nil {
			return err
		}

		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		res, err := session.EditBanner(banners, bannerDelimiter, true)
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
	rootCmd.AddCommand(bannerCmd)
	bannerCmd.Flags().StringVarP(&bannerFile, "file", "f", "", "yaml file mapping \"banner <name>\" to its body")
	bannerCmd.Flags().StringVar(&bannerDelimiter, "delimiter", "", "multiline delimiter, defaults to the configured one")
	bannerCmd.MarkFlagRequired("file")
}
