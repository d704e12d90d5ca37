package cliconf

import (
	"errors"
	"strings"
	"testing"

	"github.com/amalmborg97/iosctl/pkg/diff"
)

func TestGetDiff(t *testing.T) {
	c := New(newFakeChannel(), nil)

	if _, err := c.GetDiff(&diff.Request{Running: "hostname r1"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetDiff() error = %v, want ErrInvalidArgument", err)
	}

	res, err := c.GetDiff(&diff.Request{
		Candidate: "hostname r2",
		Running:   "hostname r1",
	})
	if err != nil {
		t.Fatalf("GetDiff() error = %v", err)
	}
	if !strings.Contains(res.ConfigDiff, "hostname r2") {
		t.Errorf("ConfigDiff = %q, want the changed hostname", res.ConfigDiff)
	}
}
