package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

const (
	defaultPort           = 22
	defaultPlatform       = "cisco_iosxe"
	defaultCommandTimeout = 30 * time.Second
	defaultDelimiter      = "@"
)

type Config struct {
	Device     *Device         `yaml:"device,omitempty" json:"device,omitempty"`
	Session    *SessionOptions `yaml:"session,omitempty" json:"session,omitempty"`
	Prometheus *PromConfig     `yaml:"prometheus,omitempty" json:"prometheus,omitempty"`
}

// Device describes the transport endpoint.
type Device struct {
	Address     string        `yaml:"address,omitempty" json:"address,omitempty"`
	Port        int           `yaml:"port,omitempty" json:"port,omitempty"`
	Platform    string        `yaml:"platform,omitempty" json:"platform,omitempty"`
	Credentials *Credentials  `yaml:"credentials,omitempty" json:"credentials,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

type Credentials struct {
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	Password string `yaml:"password,omitempty" json:"password,omitempty"`
}

// SessionOptions tune the configuration session protocol.
type SessionOptions struct {
	// CommitConfirmImmediate confirms the pushed configuration
	// right after the edit instead of leaving the rollback timer
	// running.
	CommitConfirmImmediate bool `yaml:"commit-confirm-immediate,omitempty" json:"commit-confirm-immediate,omitempty"`
	// CommitConfirmTimeout is the rollback timer in minutes. Unset
	// means no commit-confirm unless CommitConfirmImmediate is set,
	// in which case it defaults to one minute.
	CommitConfirmTimeout *int `yaml:"commit-confirm-timeout,omitempty" json:"commit-confirm-timeout,omitempty"`
	// ConfigCommands lists commands that change device state, used
	// by response cache invalidation.
	ConfigCommands []string `yaml:"config-commands,omitempty" json:"config-commands,omitempty"`
	// MultilineDelimiter frames banner and macro bodies.
	MultilineDelimiter string `yaml:"multiline-delimiter,omitempty" json:"multiline-delimiter,omitempty"`
}

type PromConfig struct {
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
}

// New reads and validates a config file. The path may start with ~.
func New(file string) (*Config, error) {
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, fmt.Errorf("config path %q: %v", file, err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := new(Config)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	err = c.ValidateSetDefaults()
	return c, err
}

// ValidateSetDefaults checks required fields and fills defaults. It
// is called by New and by callers assembling a Config from flags.
func (c *Config) ValidateSetDefaults() error {
	if c.Device == nil {
		return errors.New("device definition is required")
	}
	if c.Device.Address == "" {
		return errors.New("device address is required")
	}
	if c.Device.Port <= 0 {
		c.Device.Port = defaultPort
	}
	if c.Device.Platform == "" {
		c.Device.Platform = defaultPlatform
	}
	if c.Device.Timeout <= 0 {
		c.Device.Timeout = defaultCommandTimeout
	}
	if c.Session == nil {
		c.Session = &SessionOptions{}
	}
	c.Session.SetDefaults()
	if t := c.Session.CommitConfirmTimeout; t != nil && *t <= 0 {
		return fmt.Errorf("commit-confirm-timeout must be positive, got %d", *t)
	}
	return nil
}

// SetDefaults fills the option fields that have fixed defaults.
func (o *SessionOptions) SetDefaults() {
	if o.MultilineDelimiter == "" {
		o.MultilineDelimiter = defaultDelimiter
	}
}
