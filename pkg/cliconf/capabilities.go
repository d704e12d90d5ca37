package cliconf

import (
	"encoding/json"

	"github.com/amalmborg97/iosctl/pkg/diff"
)

// DeviceOperations enumerates what the platform's session protocol
// supports. The fields are fixed per platform, not probed.
type DeviceOperations struct {
	SupportsDiffReplace        bool `json:"supports_diff_replace"`
	SupportsCommit             bool `json:"supports_commit"`
	SupportsRollback           bool `json:"supports_rollback"`
	SupportsDefaults           bool `json:"supports_defaults"`
	SupportsOnboxDiff          bool `json:"supports_onbox_diff"`
	SupportsCommitComment      bool `json:"supports_commit_comment"`
	SupportsMultilineDelimiter bool `json:"supports_multiline_delimiter"`
	SupportsDiffMatch          bool `json:"supports_diff_match"`
	SupportsDiffIgnoreLines    bool `json:"supports_diff_ignore_lines"`
	SupportsGenerateDiff       bool `json:"supports_generate_diff"`
	SupportsReplace            bool `json:"supports_replace"`
}

// OptionValues enumerates the valid values of the tunable options.
type OptionValues struct {
	Format      []string `json:"format"`
	DiffMatch   []string `json:"diff_match"`
	DiffReplace []string `json:"diff_replace"`
	Output      []string `json:"output"`
}

// Capabilities is the structured descriptor of everything this
// session implementation can do.
type Capabilities struct {
	NetworkAPI       string           `json:"network_api"`
	RPC              []string         `json:"rpc"`
	DeviceInfo       *DeviceInfo      `json:"device_info,omitempty"`
	DeviceOperations DeviceOperations `json:"device_operations"`
	OptionValues
}

// DeviceOperations returns the fixed operation support flags.
func (c *Cliconf) DeviceOperations() DeviceOperations {
	return DeviceOperations{
		SupportsDiffReplace:        true,
		SupportsCommit:             false,
		SupportsRollback:           false,
		SupportsDefaults:           true,
		SupportsOnboxDiff:          false,
		SupportsCommitComment:      false,
		SupportsMultilineDelimiter: true,
		SupportsDiffMatch:          true,
		SupportsDiffIgnoreLines:    true,
		SupportsGenerateDiff:       true,
		SupportsReplace:            false,
	}
}

// OptionValues returns the valid enum values.
func (c *Cliconf) OptionValues() OptionValues {
	return OptionValues{
		Format:      []string{"text"},
		DiffMatch:   diff.MatchModes,
		DiffReplace: diff.ReplaceModes,
		Output:      []string{},
	}
}

// Capabilities discovers the device and serializes the full
// capability descriptor to JSON.
func (c *Cliconf) Capabilities() (string, error) {
	info, err := c.GetDeviceInfo()
	if err != nil {
		return "", err
	}
	caps := Capabilities{
		NetworkAPI: "cliconf",
		RPC: []string{
			"get_config", "edit_config", "get_capabilities", "get",
			"edit_banner", "get_diff", "run_commands", "get_defaults_flag",
		},
		DeviceInfo:       info,
		DeviceOperations: c.DeviceOperations(),
		OptionValues:     c.OptionValues(),
	}
	b, err := json.Marshal(caps)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
