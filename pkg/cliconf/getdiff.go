package cliconf

import (
	"fmt"

	"github.com/amalmborg97/iosctl/pkg/diff"
)

// GetDiff validates the request against this platform's capabilities
// and computes the configuration diff. The device cannot generate
// diffs on-box, so a candidate configuration is always required.
func (c *Cliconf) GetDiff(req *diff.Request) (*diff.Result, error) {
	ops := c.DeviceOperations()
	if req.Candidate == "" && ops.SupportsGenerateDiff {
		return nil, fmt.Errorf("%w: candidate configuration is required to generate diff", ErrInvalidArgument)
	}
	return diff.Compute(req)
}
