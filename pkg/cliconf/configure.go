package cliconf

import (
	"fmt"
	"regexp"
	"time"

	"github.com/AlekSi/pointer"
)

var (
	archiveDisabledRe = regexp.MustCompile(`Archive.*not.enabled`)
	noRollbackRe      = regexp.MustCompile(`%No Rollback Confirmed Change pending`)
)

// Configure enters global configuration mode. With commit-confirm
// configured it first verifies the safety invariants: archiving must
// be enabled, no rollback may already be pending, and the channel's
// command timeout must not exceed the rollback timer, otherwise the
// device could revert while a command is still outstanding. Any
// failed check aborts the edit before a single mutating command is
// sent.
func (c *Cliconf) Configure() error {
	timeout := pointer.GetInt(c.opts.CommitConfirmTimeout)
	if !c.opts.CommitConfirmImmediate && timeout == 0 {
		_, err := c.ch.Send("configure terminal", nil)
		return err
	}

	if timeout == 0 {
		// immediate mode without an explicit timer
		timeout = 1
	}

	archiveState, err := c.ch.Send("show archive", nil)
	if err != nil {
		return err
	}
	rollbackState, err := c.ch.Send("show archive config rollback timer", nil)
	if err != nil {
		return err
	}

	if c.ch.CommandTimeout() > time.Duration(timeout)*time.Minute {
		return fmt.Errorf("%w: command timeout can't be greater than commit_confirm_timeout, "+
			"please adjust and try again", ErrPrecondition)
	}
	if archiveDisabledRe.MatchString(archiveState) {
		return fmt.Errorf("%w: commit confirm set, but archiving not enabled on device, "+
			"please set up archiving and try again", ErrPrecondition)
	}
	if !noRollbackRe.MatchString(rollbackState) {
		return fmt.Errorf("%w: existing rollback change already pending, "+
			"please resolve by issuing 'configure confirm' or 'configure revert now'", ErrPrecondition)
	}

	_, err = c.ch.Send(fmt.Sprintf("configure terminal revert timer %d", timeout), nil)
	return err
}
