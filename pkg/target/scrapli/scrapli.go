// Package scrapli adapts a scrapligo network driver to the abstract
// command channel used by the session layer.
package scrapli

import (
	"time"

	"github.com/scrapli/scrapligo/channel"
	"github.com/scrapli/scrapligo/driver/network"
	"github.com/scrapli/scrapligo/driver/options"
	"github.com/scrapli/scrapligo/platform"
	"github.com/scrapli/scrapligo/util"
	log "github.com/sirupsen/logrus"

	"github.com/amalmborg97/iosctl/pkg/config"
	"github.com/amalmborg97/iosctl/pkg/target"
)

type CLITarget struct {
	driver         *network.Driver
	commandTimeout time.Duration
}

// NewCLITarget opens a CLI session to the device described by cfg and
// returns it as an abstract channel.
func NewCLITarget(cfg *config.Device) (*CLITarget, error) {
	var opts []util.Option

	if cfg.Credentials != nil {
		opts = append(opts,
			options.WithAuthUsername(cfg.Credentials.Username),
			options.WithAuthPassword(cfg.Credentials.Password),
		)
	}
	if cfg.Port > 0 {
		opts = append(opts, options.WithPort(cfg.Port))
	}
	opts = append(opts,
		options.WithAuthNoStrictKey(),
		options.WithTimeoutOps(cfg.Timeout),
	)

	p, err := platform.NewPlatform(cfg.Platform, cfg.Address, opts...)
	if err != nil {
		return nil, err
	}
	d, err := p.GetNetworkDriver()
	if err != nil {
		return nil, err
	}

	log.Infof("connecting to %s:%d (%s)", cfg.Address, cfg.Port, cfg.Platform)
	if err := d.Open(); err != nil {
		return nil, target.NewConnectionError(err, "failed to open session to %s", cfg.Address)
	}

	return &CLITarget{
		driver:         d,
		commandTimeout: cfg.Timeout,
	}, nil
}

func (t *CLITarget) Close() error {
	return t.driver.Close()
}

func (t *CLITarget) CommandTimeout() time.Duration {
	return t.commandTimeout
}

// Send writes one command over the session. SendOnly commands are
// fire-and-forget raw channel writes, commands with a Prompt are sent
// interactively with the configured answer, everything else is a
// plain command awaiting the prompt.
func (t *CLITarget) Send(command string, opts *target.CommandOptions) (string, error) {
	if opts == nil {
		opts = &target.CommandOptions{}
	}
	start := time.Now()
	out, err := t.send(command, opts)
	target.ObserveCommand(start, err)
	if err != nil {
		return "", target.NewConnectionError(err, "command %q failed", command)
	}
	return out, nil
}

func (t *CLITarget) send(command string, opts *target.CommandOptions) (string, error) {
	log.Debugf("sending command %q", command)
	if opts.SendOnly {
		if opts.NoNewline {
			return "", t.driver.Channel.Write([]byte(command), false)
		}
		return "", t.driver.Channel.WriteAndReturn([]byte(command), false)
	}

	if opts.Prompt != "" {
		events := []*channel.SendInteractiveEvent{
			{
				ChannelInput:    command,
				ChannelResponse: opts.Prompt,
				HideInput:       false,
			},
			{
				ChannelInput:    opts.Answer,
				ChannelResponse: "",
				HideInput:       false,
			},
		}
		r, err := t.driver.SendInteractive(events)
		if err != nil {
			return "", err
		}
		if r.Failed != nil {
			return "", r.Failed
		}
		return r.Result, nil
	}

	r, err := t.driver.SendCommand(command)
	if err != nil {
		return "", err
	}
	if r.Failed != nil {
		return "", r.Failed
	}
	return r.Result, nil
}

// GetPrompt reads the current device prompt.
func (t *CLITarget) GetPrompt() (string, error) {
	p, err := t.driver.GetPrompt()
	if err != nil {
		return "", target.NewConnectionError(err, "failed to read prompt")
	}
	return p, nil
}
