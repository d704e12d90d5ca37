package cmd

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amalmborg97/iosctl/pkg/cliconf"
	"github.com/amalmborg97/iosctl/pkg/config"
	"github.com/amalmborg97/iosctl/pkg/target"
	"github.com/amalmborg97/iosctl/pkg/target/scrapli"
)

var (
	configFile     string
	address        string
	username       string
	password       string
	platformName   string
	timeout        time.Duration
	debug          bool
	metricsAddress string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "iosctl",
	Short:        "manage the configuration of a Cisco IOS device over its CLI session",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				log.Debugf("flag %s=%s", f.Name, f.Value)
			})
		}
		startMetrics()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "device address")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "device username")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "device password")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "scrapli platform name")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per command timeout")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "set log level to DEBUG")
	rootCmd.PersistentFlags().StringVar(&metricsAddress, "metrics-address", "", "serve prometheus metrics on this address")
}

// loadConfig merges the config file with flag overrides. Flags win.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		c, err := config.New(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		cfg = &config.Config{Device: &config.Device{}}
	}
	if address != "" {
		cfg.Device.Address = address
	}
	if platformName != "" {
		cfg.Device.Platform = platformName
	}
	if timeout > 0 {
		cfg.Device.Timeout = timeout
	}
	if username != "" || password != "" {
		if cfg.Device.Credentials == nil {
			cfg.Device.Credentials = &config.Credentials{}
		}
		if username != "" {
			cfg.Device.Credentials.Username = username
		}
		if password != "" {
			cfg.Device.Credentials.Password = password
		}
	}
	if err := cfg.ValidateSetDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession opens a device session from the merged config. The
// returned close func tears down the transport.
func newSession() (*cliconf.Cliconf, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return newSessionTo(cfg, cfg.Device.Address)
}

func newSessionTo(cfg *config.Config, host string) (*cliconf.Cliconf, func() error, error) {
	dev := *cfg.Device
	dev.Address = host
	t, err := scrapli.NewCLITarget(&dev)
	if err != nil {
		return nil, nil, err
	}
	return cliconf.New(t, cfg.Session), t.Close, nil
}

func startMetrics() {
	if metricsAddress == "" {
		return
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	if err := target.RegisterMetrics(reg); err != nil {
		log.Errorf("failed to register session metrics: %v", err)
		return
	}
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(metricsAddress, router); err != nil {
			log.Errorf("metrics server stopped: %v", err)
		}
	}()
}
