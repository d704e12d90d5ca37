package cliconf

import (
	"time"

	"github.com/amalmborg97/iosctl/pkg/target"
)

// fakeChannel is a scripted device channel. Responses and errors are
// looked up by command text, every sent command is recorded.
type fakeChannel struct {
	responses map[string]string
	errs      map[string]error

	prompt    string
	promptErr error
	timeout   time.Duration

	sent     []string
	sentOpts []*target.CommandOptions
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		responses: map[string]string{},
		errs:      map[string]error{},
		prompt:    "Router#",
		timeout:   30 * time.Second,
	}
}

func (f *fakeChannel) Send(command string, opts *target.CommandOptions) (string, error) {
	f.sent = append(f.sent, command)
	f.sentOpts = append(f.sentOpts, opts)
	if err, ok := f.errs[command]; ok {
		return "", err
	}
	return f.responses[command], nil
}

func (f *fakeChannel) GetPrompt() (string, error) {
	return f.prompt, f.promptErr
}

func (f *fakeChannel) CommandTimeout() time.Duration {
	return f.timeout
}

func (f *fakeChannel) Close() error {
	return nil
}
