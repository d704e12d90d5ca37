package cliconf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/amalmborg97/iosctl/pkg/target"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		cmd     *Command
		want    string
		wantErr bool
	}{
		{
			name: "plain command",
			cmd:  &Command{Command: "show clock"},
			want: "*18:02:51.605 UTC Mon Aug 31 2026",
		},
		{
			name:    "nil command",
			cmd:     nil,
			wantErr: true,
		},
		{
			name:    "empty command",
			cmd:     &Command{},
			wantErr: true,
		},
		{
			name:    "output not supported",
			cmd:     &Command{Command: "show clock", Output: "json"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newFakeChannel()
			ch.responses["show clock"] = "*18:02:51.605 UTC Mon Aug 31 2026"
			c := New(ch, nil)
			got, err := c.Get(tt.cmd)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Get() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Get() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetPassesOptions(t *testing.T) {
	ch := newFakeChannel()
	c := New(ch, nil)
	_, err := c.Get(&Command{
		Command: "clear counters",
		Prompt:  `\[confirm\]`,
		Answer:  "y",
	})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want := &target.CommandOptions{Prompt: `\[confirm\]`, Answer: "y"}
	if !reflect.DeepEqual(ch.sentOpts[0], want) {
		t.Errorf("options = %+v, want %+v", ch.sentOpts[0], want)
	}

	// raw sends, e.g. control characters, suppress the trailing newline
	_, err = c.Get(&Command{Command: "\x1a", SendOnly: true, NoNewline: true})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want = &target.CommandOptions{SendOnly: true, NoNewline: true}
	if !reflect.DeepEqual(ch.sentOpts[1], want) {
		t.Errorf("options = %+v, want %+v", ch.sentOpts[1], want)
	}
}

func TestRunCommands(t *testing.T) {
	connErr := target.NewConnectionError(nil, "timed out reading from device")

	tests := []struct {
		name     string
		commands []*Command
		errs     map[string]error
		checkRC  bool
		want     []string
		wantErr  bool
	}{
		{
			name:     "nil commands",
			commands: nil,
			wantErr:  true,
		},
		{
			name:     "responses in order",
			commands: ToCommands([]string{"show version", "show clock"}),
			want:     []string{"version text", "clock text"},
		},
		{
			name:     "output not supported",
			commands: []*Command{{Command: "show version", Output: "json"}},
			wantErr:  true,
		},
		{
			name:     "connection failure with check rc",
			commands: ToCommands([]string{"show clock"}),
			errs:     map[string]error{"show clock": connErr},
			checkRC:  true,
			wantErr:  true,
		},
		{
			name:     "connection failure without check rc",
			commands: ToCommands([]string{"show clock"}),
			errs:     map[string]error{"show clock": connErr},
			want:     []string{connErr.Error()},
		},
		{
			name:     "non connection failure always raised",
			commands: ToCommands([]string{"show clock"}),
			errs:     map[string]error{"show clock": errors.New("boom")},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newFakeChannel()
			ch.responses["show version"] = "version text"
			ch.responses["show clock"] = "clock text"
			for cmd, err := range tt.errs {
				ch.errs[cmd] = err
			}
			c := New(ch, nil)
			got, err := c.RunCommands(tt.commands, tt.checkRC)
			if (err != nil) != tt.wantErr {
				t.Errorf("RunCommands() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RunCommands() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		flags    []string
		wantSent string
		wantErr  bool
	}{
		{
			name:     "default source",
			source:   "",
			wantSent: "show running-config",
		},
		{
			name:     "running",
			source:   "running",
			wantSent: "show running-config",
		},
		{
			name:     "startup",
			source:   "startup",
			wantSent: "show startup-config",
		},
		{
			name:     "running with flags",
			source:   "running",
			flags:    []string{"all"},
			wantSent: "show running-config all",
		},
		{
			name:    "unsupported source",
			source:  "candidate",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newFakeChannel()
			c := New(ch, nil)
			_, err := c.GetConfig(tt.source, tt.flags...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("GetConfig() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Errorf("GetConfig() error = %v", err)
				return
			}
			if ch.sent[0] != tt.wantSent {
				t.Errorf("sent %q, want %q", ch.sent[0], tt.wantSent)
			}
		})
	}
}

func TestRestore(t *testing.T) {
	ch := newFakeChannel()
	c := New(ch, nil)

	if _, err := c.Restore("", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Restore() error = %v, want ErrInvalidArgument", err)
	}
	if _, err := c.Restore("backup.cfg", "flash:"); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if ch.sent[0] != "configure replace flash:backup.cfg force" {
		t.Errorf("sent %q", ch.sent[0])
	}
}

func TestGetDefaultsFlag(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{
			name:   "all supported",
			output: "  all     Configuration with defaults\n  brief   Brief configuration\n",
			want:   "all",
		},
		{
			name:   "full fallback",
			output: "  full    Full configuration\n  brief   Brief configuration\n",
			want:   "full",
		},
		{
			name:   "empty output",
			output: "",
			want:   "full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newFakeChannel()
			ch.responses["show running-config ?"] = tt.output
			c := New(ch, nil)
			got, err := c.GetDefaultsFlag()
			if err != nil {
				t.Fatalf("GetDefaultsFlag() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetDefaultsFlag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePromptContext(t *testing.T) {
	t.Run("operational prompt", func(t *testing.T) {
		ch := newFakeChannel()
		if err := New(ch, nil).ValidatePromptContext(); err != nil {
			t.Fatalf("ValidatePromptContext() error = %v", err)
		}
		if len(ch.sent) != 0 {
			t.Errorf("sent = %v, want nothing", ch.sent)
		}
	})
	t.Run("config prompt corrected", func(t *testing.T) {
		ch := newFakeChannel()
		ch.prompt = "Router(config-if)#"
		if err := New(ch, nil).ValidatePromptContext(); err != nil {
			t.Fatalf("ValidatePromptContext() error = %v", err)
		}
		if !reflect.DeepEqual(ch.sent, []string{"end"}) {
			t.Errorf("sent = %v, want [end]", ch.sent)
		}
	})
	t.Run("missing prompt", func(t *testing.T) {
		ch := newFakeChannel()
		ch.prompt = ""
		err := New(ch, nil).ValidatePromptContext()
		var connErr *target.ConnectionError
		if !errors.As(err, &connErr) {
			t.Fatalf("ValidatePromptContext() error = %v, want connection error", err)
		}
	})
	t.Run("prompt error propagated", func(t *testing.T) {
		ch := newFakeChannel()
		ch.promptErr = errors.New("read failed")
		if err := New(ch, nil).ValidatePromptContext(); err == nil {
			t.Fatal("ValidatePromptContext() expected error")
		}
	})
}
