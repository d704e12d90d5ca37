package cmd

import (
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"github.com/amalmborg97/iosctl/pkg/cliconf"
)

var (
	runHosts  []string
	noCheckRC bool
	maxInFly  int64
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:          "run <command>...",
	Short:        "run operational commands, optionally on several devices",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		hosts := runHosts
		if len(hosts) == 0 {
			hosts = []string{cfg.Device.Address}
		}

		// one session per host, sequential within a session
		sem := semaphore.NewWeighted(maxInFly)
		wg := new(sync.WaitGroup)
		m := new(sync.Mutex)
		results := make(map[string][]string, len(hosts))

		for _, host := range hosts {
			if err := sem.Acquire(cmd.Context(), 1); err != nil {
				return err
			}
			wg.Add(1)
			go func(host string) {
				defer sem.Release(1)
				defer wg.Done()
				session, closeFn, err := newSessionTo(cfg, host)
				if err != nil {
					log.Errorf("%s: %v", host, err)
					return
				}
				defer closeFn()
				responses, err := session.RunCommands(cliconf.ToCommands(args), !noCheckRC)
				if err != nil {
					log.Errorf("%s: %v", host, err)
					return
				}
				m.Lock()
				results[host] = responses
				m.Unlock()
			}(host)
		}
		wg.Wait()

		keys := make([]string, 0, len(results))
		for k := range results {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, host := range keys {
			for i, out := range results[host] {
				fmt.Printf("[%s] %s\n%s\n", host, args[i], out)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringSliceVar(&runHosts, "hosts", nil, "device addresses, defaults to the configured device")
	runCmd.Flags().BoolVar(&noCheckRC, "no-check-rc", false, "record command failures inline instead of aborting")
	runCmd.Flags().Int64Var(&maxInFly, "max-concurrent", 10, "maximum concurrent device sessions")
}
