package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configSource string
	configFlags  []string
	withDefaults bool
	restoreName  string
	restorePath  string
)

// deviceConfigCmd represents the config command
var deviceConfigCmd = &cobra.Command{
	Use:   "configuration",
	Short: "retrieve or restore the device configuration",
}

var configGetCmd = &cobra.Command{
	Use:          "get",
	Short:        "fetch the running or startup configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		flags := configFlags
		if withDefaults {
			df, err := session.GetDefaultsFlag()
			if err != nil {
				return err
			}
			flags = append(flags, df)
		}
		out, err := session.GetConfig(configSource, flags...)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var configRestoreCmd = &cobra.Command{
	Use:          "restore",
	Short:        "replace the running configuration from a stored file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, closeFn, err := newSession()
		if err != nil {
			return err
		}
		defer closeFn()

		out, err := session.Restore(restoreName, restorePath)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deviceConfigCmd)
	deviceConfigCmd.AddCommand(configGetCmd)
	deviceConfigCmd.AddCommand(configRestoreCmd)

	configGetCmd.Flags().StringVar(&configSource, "source", "running", "config source: running or startup")
	configGetCmd.Flags().StringSliceVar(&configFlags, "flag", nil, "extra show flags")
	configGetCmd.Flags().BoolVar(&withDefaults, "defaults", false, "include default values in the output")

	configRestoreCmd.Flags().StringVar(&restoreName, "filename", "", "stored configuration file name")
	configRestoreCmd.Flags().StringVar(&restorePath, "path", "", "path prefix of the stored file")
	configRestoreCmd.MarkFlagRequired("filename")
}
