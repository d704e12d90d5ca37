package cmd

import (
	"fmt"
	"os"
	"sort"

	godebugdiff "github.com/kylelemons/godebug/diff"
	"github.com/spf13/cobra"

	"github.com/amalmborg97/iosctl/pkg/diff"
)

var (
	candidateFile string
	runningFile   string
	fromDevice    bool
	diffMatch     string
	diffReplace   string
	ignoreLines   []string
	diffPath      []string
	verboseDiff   bool
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:          "diff",
	Short:        "compute the commands that bring the device to the candidate config",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, err := os.ReadFile(candidateFile)
		if err != nil {
			return err
		}

		var running []byte
		switch {
		case fromDevice:
			session, closeFn, err := newSession()
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := session.GetConfig("running")
			if err != nil {
				return err
			}
			running = []byte(out)
		case runningFile != "":
			running, err = os.ReadFile(runningFile)
			if err != nil {
				return err
			}
		}

		res, err := diff.Compute(&diff.Request{
			Candidate:   string(candidate),
			Running:     string(running),
			Match:       diffMatch,
			Replace:     diffReplace,
			IgnoreLines: ignoreLines,
			Path:        diffPath,
		})
		if err != nil {
			return err
		}

		if verboseDiff {
			fmt.Println(godebugdiff.Diff(string(running), string(candidate)))
			fmt.Println("---")
		}
		if res.ConfigDiff != "" {
			fmt.Println(res.ConfigDiff)
		}
		keys := make([]string, 0, len(res.BannerDiff))
		for k := range res.BannerDiff {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s:\n%s\n", k, res.BannerDiff[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVar(&candidateFile, "candidate", "", "candidate config file")
	diffCmd.Flags().StringVar(&runningFile, "running", "", "running config file")
	diffCmd.Flags().BoolVar(&fromDevice, "from-device", false, "fetch the running config from the device")
	diffCmd.Flags().StringVar(&diffMatch, "match", "line", "diff match mode: line, strict, exact or none")
	diffCmd.Flags().StringVar(&diffReplace, "replace", "line", "diff replace mode: line or block")
	diffCmd.Flags().StringSliceVar(&ignoreLines, "ignore-lines", nil, "running config lines to ignore")
	diffCmd.Flags().StringSliceVar(&diffPath, "path", nil, "restrict the diff to this nesting path")
	diffCmd.Flags().BoolVar(&verboseDiff, "verbose", false, "also print a plain text diff")
	diffCmd.MarkFlagRequired("candidate")
}
