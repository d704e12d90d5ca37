package cliconf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/amalmborg97/iosctl/pkg/config"
)

func TestEditConfig(t *testing.T) {
	tests := []struct {
		name     string
		commands []string
		opts     *config.SessionOptions
		commit   bool
		wantSent []string
		wantReq  []string
		wantErr  bool
	}{
		{
			name:    "check mode not supported",
			commit:  false,
			wantErr: true,
		},
		{
			name:    "empty candidate",
			commit:  true,
			wantErr: true,
		},
		{
			name:     "commands framed in configure terminal",
			commands: []string{"hostname r1", "interface Ethernet1", " description uplink"},
			commit:   true,
			wantSent: []string{
				"configure terminal",
				"hostname r1",
				"interface Ethernet1",
				" description uplink",
				"end",
			},
			wantReq: []string{"hostname r1", "interface Ethernet1", " description uplink"},
		},
		{
			name:     "end and comments skipped",
			commands: []string{"hostname r1", "! set the name", "end"},
			commit:   true,
			wantSent: []string{
				"configure terminal",
				"hostname r1",
				"end",
			},
			wantReq: []string{"hostname r1"},
		},
		{
			name:     "commit confirm immediate confirms change",
			commands: []string{"hostname r1"},
			opts:     &config.SessionOptions{CommitConfirmImmediate: true},
			commit:   true,
			wantSent: []string{
				"show archive",
				"show archive config rollback timer",
				"configure terminal revert timer 1",
				"hostname r1",
				"end",
				"configure confirm",
			},
			wantReq: []string{"hostname r1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newFakeChannel()
			ch.responses["show archive"] = archiveEnabled
			ch.responses["show archive config rollback timer"] = noRollback
			c := New(ch, tt.opts)

			res, err := c.EditConfig(ToCommands(tt.commands), tt.commit)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("EditConfig() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EditConfig() error = %v", err)
			}
			if !reflect.DeepEqual(ch.sent, tt.wantSent) {
				t.Errorf("sent = %v, want %v", ch.sent, tt.wantSent)
			}
			if !reflect.DeepEqual(res.Requests, tt.wantReq) {
				t.Errorf("requests = %v, want %v", res.Requests, tt.wantReq)
			}
			if len(res.Responses) != len(res.Requests) {
				t.Errorf("responses and requests not parallel: %d vs %d", len(res.Responses), len(res.Requests))
			}
		})
	}
}

func TestEditMacro(t *testing.T) {
	ch := newFakeChannel()
	c := New(ch, nil)

	if _, err := c.EditMacro([]string{"macro name APPLY"}, true); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("EditMacro() error = %v, want ErrInvalidArgument", err)
	}

	res, err := c.EditMacro([]string{"macro name APPLY", "switchport mode access", "@"}, true)
	if err != nil {
		t.Fatalf("EditMacro() error = %v", err)
	}
	payload := "macro name APPLY\n switchport mode access\n@\n"
	wantSent := []string{"config terminal", payload, "end", "\n"}
	if !reflect.DeepEqual(ch.sent, wantSent) {
		t.Errorf("sent = %q, want %q", ch.sent, wantSent)
	}
	// header and delimiter stay unindented, the body gains one space
	if res.Requests[0] != payload {
		t.Errorf("request payload = %q", res.Requests[0])
	}
	if !ch.sentOpts[1].SendOnly {
		t.Error("macro payload must be sent fire-and-forget")
	}
	if ch.sentOpts[3] != nil {
		t.Error("settle probe must use default options")
	}
}

func TestEditBanner(t *testing.T) {
	ch := newFakeChannel()
	c := New(ch, nil)

	banners := map[string]string{
		"banner motd":  "maintenance window sunday",
		"banner login": "authorized access only",
	}
	res, err := c.EditBanner(banners, "", true)
	if err != nil {
		t.Fatalf("EditBanner() error = %v", err)
	}

	// keys applied in sorted order, default delimiter from the options
	wantSent := []string{
		"config terminal",
		"banner login @",
		"authorized access only",
		"@",
		"end",
		"\n",
		"config terminal",
		"banner motd @",
		"maintenance window sunday",
		"@",
		"end",
		"\n",
	}
	if !reflect.DeepEqual(ch.sent, wantSent) {
		t.Errorf("sent = %q, want %q", ch.sent, wantSent)
	}
	wantReq := []string{
		"banner login @", "authorized access only", "@", "\n",
		"banner motd @", "maintenance window sunday", "@", "\n",
	}
	if !reflect.DeepEqual(res.Requests, wantReq) {
		t.Errorf("requests = %q, want %q", res.Requests, wantReq)
	}
	for i, opts := range ch.sentOpts {
		if ch.sent[i] != "\n" && !opts.SendOnly {
			t.Errorf("command %q not sent fire-and-forget", ch.sent[i])
		}
	}
}

func TestEditBannerExplicitDelimiter(t *testing.T) {
	ch := newFakeChannel()
	c := New(ch, nil)

	if _, err := c.EditBanner(map[string]string{"banner exec": "hi"}, "^", true); err != nil {
		t.Fatalf("EditBanner() error = %v", err)
	}
	if ch.sent[1] != "banner exec ^" {
		t.Errorf("sent = %q, want banner declaration with explicit delimiter", ch.sent[1])
	}
}
