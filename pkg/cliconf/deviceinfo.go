package cliconf

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DeviceInfo is scraped from the device's version output. A field the
// output did not yield stays empty, absence is not an error.
type DeviceInfo struct {
	NetworkOS string `json:"network_os"`
	Version   string `json:"network_os_version,omitempty"`
	Model     string `json:"network_os_model,omitempty"`
	Hostname  string `json:"network_os_hostname,omitempty"`
	Image     string `json:"network_os_image,omitempty"`
	Type      string `json:"network_os_type,omitempty"`
}

var (
	versionRe  = regexp.MustCompile(`Version (\S+)`)
	modelRes   = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[Cc]isco (.+) \(revision`),
		regexp.MustCompile(`(?m)^[Cc]isco (\S+).+bytes of .*memory`),
	}
	hostnameRe = regexp.MustCompile(`(?m)^(.+) uptime`)
	imageRe    = regexp.MustCompile(`image file is "(.+)"`)
)

// ParseOSVersion extracts the OS version from version output.
func ParseOSVersion(data string) string {
	if m := versionRe.FindStringSubmatch(data); m != nil {
		return strings.TrimSuffix(m[1], ",")
	}
	return ""
}

// ParseModel extracts the hardware model, first pattern match wins.
func ParseModel(data string) string {
	for _, re := range modelRes {
		if m := re.FindStringSubmatch(data); m != nil {
			return strings.Fields(m[1])[0]
		}
	}
	return ""
}

// ParseHostname extracts the hostname from the uptime line.
func ParseHostname(data string) string {
	if m := hostnameRe.FindStringSubmatch(data); m != nil {
		return m[1]
	}
	return ""
}

// ParseImage extracts the boot image path.
func ParseImage(data string) string {
	if m := imageRe.FindStringSubmatch(data); m != nil {
		return m[1]
	}
	return ""
}

// GetDeviceInfo discovers model, version, hostname, image and device
// type. The result is memoized for the lifetime of the session.
func (c *Cliconf) GetDeviceInfo() (*DeviceInfo, error) {
	if c.deviceInfo != nil {
		return c.deviceInfo, nil
	}

	// make sure we are not stuck in configuration mode
	if err := c.ValidatePromptContext(); err != nil {
		return nil, err
	}

	out, err := c.Get(&Command{Command: "show version"})
	if err != nil {
		return nil, err
	}
	data := strings.TrimSpace(out)

	info := &DeviceInfo{
		NetworkOS: "ios",
		Version:   ParseOSVersion(data),
		Model:     ParseModel(data),
		Hostname:  ParseHostname(data),
		Image:     ParseImage(data),
		Type:      c.checkDeviceType(),
	}
	log.Debugf("discovered device info: %+v", info)

	c.deviceInfo = info
	return info, nil
}

// checkDeviceType classifies the device by probing a feature command.
// The probe failing is the classification signal, not an error.
func (c *Cliconf) checkDeviceType() string {
	if _, err := c.Get(&Command{Command: "show vlan"}); err != nil {
		return "L3"
	}
	return "L2"
}
