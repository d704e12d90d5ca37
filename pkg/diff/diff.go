// Package diff computes the ordered command list that transforms a
// device's running configuration into a candidate configuration,
// together with the banner changes that cannot be expressed as plain
// config lines.
package diff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amalmborg97/iosctl/pkg/banner"
	"github.com/amalmborg97/iosctl/pkg/netconfig"
)

// ErrInvalidArgument marks request validation failures.
var ErrInvalidArgument = errors.New("invalid argument")

// MatchModes are the accepted values for Request.Match.
var MatchModes = []string{
	netconfig.MatchLine,
	netconfig.MatchStrict,
	netconfig.MatchExact,
	netconfig.MatchNone,
}

// ReplaceModes are the accepted values for Request.Replace.
var ReplaceModes = []string{
	netconfig.ReplaceLine,
	netconfig.ReplaceBlock,
}

// Request describes a diff computation. Match and Replace default to
// "line" when empty.
type Request struct {
	// Candidate is the configuration expected on the device.
	Candidate string
	// Running is the configuration currently on the device. When
	// empty the candidate is returned unchanged.
	Running string
	// Match controls how strictly a candidate line must align with
	// the running configuration to count as already satisfied.
	Match string
	// Replace controls whether differing sub-blocks are pushed line
	// by line or wholesale.
	Replace string
	// IgnoreLines drops running-config lines matching these
	// patterns before comparison.
	IgnoreLines []string
	// Path restricts the comparison to the named nesting hierarchy.
	Path []string
}

// Result is the computed diff: the ordered command text and the
// banners whose desired body differs from the current one.
type Result struct {
	ConfigDiff string
	BannerDiff map[string]string
}

// Compute validates the request and runs the diff. Banners are
// extracted from both sides before the line-oriented comparison.
func Compute(req *Request) (*Result, error) {
	match := req.Match
	if match == "" {
		match = netconfig.MatchLine
	}
	replace := req.Replace
	if replace == "" {
		replace = netconfig.ReplaceLine
	}
	if !contains(MatchModes, match) {
		return nil, fmt.Errorf("%w: 'match' value %q is invalid, valid values are %s",
			ErrInvalidArgument, match, strings.Join(MatchModes, ", "))
	}
	if !contains(ReplaceModes, replace) {
		return nil, fmt.Errorf("%w: 'replace' value %q is invalid, valid values are %s",
			ErrInvalidArgument, replace, strings.Join(ReplaceModes, ", "))
	}

	wantSrc, wantBanners := banner.Extract(req.Candidate)

	if match == netconfig.MatchExact && len(req.Path) == 0 {
		return exactSections(wantSrc, wantBanners, req)
	}

	candidate, err := netconfig.Parse(wantSrc)
	if err != nil {
		return nil, err
	}

	res := &Result{BannerDiff: map[string]string{}}

	if req.Running == "" || match == netconfig.MatchNone {
		// nothing to compare against, push the whole candidate
		res.ConfigDiff, err = netconfig.Dumps(candidate.Items(), "commands")
		if err != nil {
			return nil, err
		}
		res.BannerDiff = banner.Diff(wantBanners, nil)
		return res, nil
	}

	haveSrc, haveBanners := banner.Extract(req.Running)
	running, err := netconfig.Parse(haveSrc, netconfig.WithIgnoreLines(req.IgnoreLines))
	if err != nil {
		return nil, err
	}

	updates, err := candidate.Difference(running, req.Path, match, replace)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		res.ConfigDiff, err = netconfig.Dumps(updates, "commands")
		if err != nil {
			return nil, err
		}
	}
	res.BannerDiff = banner.Diff(wantBanners, haveBanners)
	return res, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
