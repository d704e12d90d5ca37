package cliconf

import (
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/amalmborg97/iosctl/pkg/target"
)

// echoSettle gives the device a short moment to process its echo
// around fire-and-forget multiline payloads.
const echoSettle = 100 * time.Millisecond

// EditResult holds the issued commands and their responses as
// parallel ordered lists.
type EditResult struct {
	Requests  []string `json:"request"`
	Responses []string `json:"response"`
}

// EditConfig applies an ordered command list in configuration mode.
// Lines that are exactly "end" or start with a comment marker are
// skipped, a trailing "end" is always sent, and with commit-confirm
// immediate the change is confirmed right away. A transport failure
// propagates unmodified: previously sent commands stay applied, the
// device's own rollback timer is the only safety net.
func (c *Cliconf) EditConfig(commands []*Command, commit bool) (*EditResult, error) {
	if !commit {
		return nil, fmt.Errorf("%w: check mode is not supported", ErrInvalidArgument)
	}
	if len(commands) == 0 {
		return nil, fmt.Errorf("%w: candidate configuration is required", ErrInvalidArgument)
	}

	if err := c.Configure(); err != nil {
		return nil, err
	}

	res := &EditResult{}
	for _, line := range commands {
		cmd := line.Command
		if cmd == "end" || strings.HasPrefix(cmd, "!") {
			continue
		}
		out, err := c.ch.Send(cmd, line.options())
		if err != nil {
			return nil, err
		}
		res.Responses = append(res.Responses, out)
		res.Requests = append(res.Requests, cmd)
	}

	if _, err := c.ch.Send("end", nil); err != nil {
		return nil, err
	}
	if c.opts.CommitConfirmImmediate {
		if _, err := c.ch.Send("configure confirm", nil); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// EditMacro uploads a device macro. The first line is the macro
// header command, the last line the multiline delimiter, everything
// in between the body. The whole macro is framed into one
// fire-and-forget payload with the body indented by one space, and
// the session is settled with an empty probe afterwards.
func (c *Cliconf) EditMacro(lines []string, commit bool) (*EditResult, error) {
	if !commit {
		return nil, fmt.Errorf("%w: check mode is not supported", ErrInvalidArgument)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: macro requires a header command and a delimiter line", ErrInvalidArgument)
	}

	if _, err := c.ch.Send("config terminal", nil); err != nil {
		return nil, err
	}
	time.Sleep(echoSettle)

	var payload strings.Builder
	payload.WriteString(lines[0] + "\n")
	for _, line := range lines[1 : len(lines)-1] {
		payload.WriteString(" " + line + "\n")
	}
	payload.WriteString(lines[len(lines)-1] + "\n")

	res := &EditResult{}
	out, err := c.ch.Send(payload.String(), &target.CommandOptions{SendOnly: true})
	if err != nil {
		return nil, err
	}
	res.Responses = append(res.Responses, out)
	res.Requests = append(res.Requests, payload.String())

	time.Sleep(echoSettle)
	if _, err := c.ch.Send("end", &target.CommandOptions{SendOnly: true}); err != nil {
		return nil, err
	}
	time.Sleep(echoSettle)

	// settle probe, captures whatever the device echoed back
	out, err = c.ch.Send("\n", nil)
	if err != nil {
		return nil, err
	}
	res.Responses = append(res.Responses, out)
	res.Requests = append(res.Requests, "\n")
	return res, nil
}

// EditBanner uploads banner bodies. Banners share the macro's
// delimiter-bracketed multiline convention: declaration suffixed with
// the delimiter, the body, the delimiter alone, all fire-and-forget,
// then an "end" and a settle probe per banner.
func (c *Cliconf) EditBanner(banners map[string]string, delimiter string, commit bool) (*EditResult, error) {
	if !commit {
		return nil, fmt.Errorf("%w: check mode is not supported", ErrInvalidArgument)
	}
	if delimiter == "" {
		delimiter = c.opts.MultilineDelimiter
	}

	keys := make([]string, 0, len(banners))
	for k := range banners {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := &EditResult{}
	sendonly := &target.CommandOptions{SendOnly: true}
	for _, key := range keys {
		log.Debugf("uploading %q", key)
		if _, err := c.ch.Send("config terminal", sendonly); err != nil {
			return nil, err
		}
		for _, cmd := range []string{key + " " + delimiter, banners[key], delimiter} {
			out, err := c.ch.Send(cmd, sendonly)
			if err != nil {
				return nil, err
			}
			res.Responses = append(res.Responses, out)
			res.Requests = append(res.Requests, cmd)
		}
		if _, err := c.ch.Send("end", sendonly); err != nil {
			return nil, err
		}
		time.Sleep(echoSettle)

		out, err := c.ch.Send("\n", nil)
		if err != nil {
			return nil, err
		}
		res.Responses = append(res.Responses, out)
		res.Requests = append(res.Requests, "\n")
	}
	return res, nil
}
