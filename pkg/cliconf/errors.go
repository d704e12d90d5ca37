package cliconf

import "errors"

var (
	// ErrInvalidArgument marks bad parameter values: unknown enum
	// values, missing required arguments, unsupported modes. Never
	// retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPrecondition marks safety gate failures detected before
	// any mutating command is sent: archiving disabled, rollback
	// already pending, timeout misconfiguration.
	ErrPrecondition = errors.New("precondition violation")
)
