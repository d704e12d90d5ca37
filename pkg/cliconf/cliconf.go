// Package cliconf drives the interactive configuration protocol of a
// line-oriented network device: configuration mode transitions with
// commit-confirm safety gates, ordered command application, macro and
// banner upload framing, and device information discovery. All
// operations assume exclusive access to the underlying channel for
// their duration.
package cliconf

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/amalmborg97/iosctl/pkg/config"
	"github.com/amalmborg97/iosctl/pkg/target"
)

var configPromptRe = regexp.MustCompile(`config.*\)#`)

// Cliconf is a session controller bound to one device channel. Apart
// from the memoized device info it holds no state, actual mode
// tracking is owned by the device.
type Cliconf struct {
	ch   target.Channel
	opts *config.SessionOptions

	deviceInfo *DeviceInfo
}

// New binds a session controller to a channel. A nil opts uses the
// option defaults.
func New(ch target.Channel, opts *config.SessionOptions) *Cliconf {
	if opts == nil {
		opts = &config.SessionOptions{}
	}
	opts.SetDefaults()
	return &Cliconf{ch: ch, opts: opts}
}

// Command is a single command with its per-send options.
type Command struct {
	Command   string `yaml:"command" json:"command"`
	Prompt    string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	Answer    string `yaml:"answer,omitempty" json:"answer,omitempty"`
	Output    string `yaml:"output,omitempty" json:"output,omitempty"`
	SendOnly  bool   `yaml:"sendonly,omitempty" json:"sendonly,omitempty"`
	NoNewline bool   `yaml:"no_newline,omitempty" json:"no_newline,omitempty"`
	CheckAll  bool   `yaml:"check_all,omitempty" json:"check_all,omitempty"`
}

func (c *Command) options() *target.CommandOptions {
	return &target.CommandOptions{
		Prompt:    c.Prompt,
		Answer:    c.Answer,
		SendOnly:  c.SendOnly,
		NoNewline: c.NoNewline,
		CheckAll:  c.CheckAll,
	}
}

// ToCommands wraps plain command strings.
func ToCommands(lines []string) []*Command {
	out := make([]*Command, 0, len(lines))
	for _, l := range lines {
		out = append(out, &Command{Command: l})
	}
	return out
}

// Get runs a single operational command and returns its output.
func (c *Cliconf) Get(cmd *Command) (string, error) {
	if cmd == nil || cmd.Command == "" {
		return "", fmt.Errorf("%w: must provide value of command to execute", ErrInvalidArgument)
	}
	if cmd.Output != "" {
		return "", fmt.Errorf("%w: 'output' value %s is not supported for get", ErrInvalidArgument, cmd.Output)
	}
	return c.ch.Send(cmd.Command, cmd.options())
}

// RunCommands executes the commands in order. With checkRC a
// transport failure aborts the batch, without it the failure text is
// recorded as that command's response and the batch continues.
func (c *Cliconf) RunCommands(commands []*Command, checkRC bool) ([]string, error) {
	if commands == nil {
		return nil, fmt.Errorf("%w: 'commands' value is required", ErrInvalidArgument)
	}
	responses := make([]string, 0, len(commands))
	for _, cmd := range commands {
		if cmd.Output != "" {
			return nil, fmt.Errorf("%w: 'output' value %s is not supported for run_commands", ErrInvalidArgument, cmd.Output)
		}
		out, err := c.ch.Send(cmd.Command, cmd.options())
		if err != nil {
			var connErr *target.ConnectionError
			if checkRC || !errors.As(err, &connErr) {
				return nil, err
			}
			out = err.Error()
		}
		responses = append(responses, out)
	}
	return responses, nil
}

// GetConfig fetches the device configuration from the running or
// startup source, with optional show flags appended.
func (c *Cliconf) GetConfig(source string, flags ...string) (string, error) {
	var cmd string
	switch source {
	case "", "running":
		cmd = "show running-config"
	case "startup":
		cmd = "show startup-config"
	default:
		return "", fmt.Errorf("%w: fetching configuration from %s is not supported", ErrInvalidArgument, source)
	}
	if len(flags) > 0 {
		cmd = strings.TrimSpace(cmd + " " + strings.Join(flags, " "))
	}
	return c.ch.Send(cmd, nil)
}

// Restore replaces the running configuration from a stored file.
func (c *Cliconf) Restore(filename, path string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: 'filename' value is required for restore", ErrInvalidArgument)
	}
	return c.ch.Send(fmt.Sprintf("configure replace %s%s force", path, filename), nil)
}

// GetDefaultsFlag probes which filter fetches the running config with
// defaults included.
func (c *Cliconf) GetDefaultsFlag() (string, error) {
	out, err := c.Get(&Command{Command: "show running-config ?"})
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Fields(line)[0] == "all" {
			return "all", nil
		}
	}
	return "full", nil
}

// ValidatePromptContext makes sure the session sits in operational
// mode. A missing prompt is a connection failure, a nested
// configuration prompt is corrected with an "end" without raising.
func (c *Cliconf) ValidatePromptContext() error {
	prompt, err := c.ch.GetPrompt()
	if err != nil {
		return err
	}
	if prompt == "" {
		return &target.ConnectionError{Msg: "cli prompt is not identified from the last received response window"}
	}
	if configPromptRe.MatchString(strings.TrimSpace(prompt)) {
		log.Debugf("wrong prompt context %q, sending end to device", prompt)
		if _, err := c.ch.Send("end", nil); err != nil {
			return err
		}
	}
	return nil
}
