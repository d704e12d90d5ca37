// Package banner handles the delimiter-quoted multi-line banner
// blocks found in device configurations. Banner bodies are free-form
// text and would corrupt indentation based parsing, so they are
// pulled out of the configuration before it is handed to the tree
// parser and carried separately as a key to body mapping.
package banner

import (
	"regexp"
	"strings"
)

const (
	// DefaultDelimiter is the banner body delimiter used by the
	// device when none is configured explicitly.
	DefaultDelimiter = "^C"

	// Placeholder replaces a banner declaration in the stripped
	// configuration text.
	Placeholder = "!! banner removed"
)

var declRe = regexp.MustCompile(`(?m)^banner (\w+)`)

// Extract finds every banner block in config using the default
// delimiter. See ExtractWith.
func Extract(config string) (string, map[string]string) {
	return ExtractWith(config, DefaultDelimiter)
}

// ExtractWith finds every banner block in config, removes the bodies
// from the text and replaces the remaining declaration plus delimiter
// pairs with a placeholder comment. It returns the stripped text and
// a mapping from "banner <name>" to the trimmed body. Banners of
// different names do not interfere with each other's extraction.
func ExtractWith(config, delimiter string) (string, map[string]string) {
	banners := make(map[string]string)
	names := declRe.FindAllStringSubmatch(config, -1)
	qd := regexp.QuoteMeta(delimiter)

	for _, m := range names {
		re := regexp.MustCompile(`banner ` + m[1] + ` ` + qd + `((?s).+?)` + qd)
		if mm := re.FindStringSubmatch(config); mm != nil {
			banners["banner "+m[1]] = strings.TrimSpace(mm[1])
		}
	}

	// remove the literal body text in a second pass so that
	// banners sharing body fragments are not processed twice
	for _, m := range names {
		re := regexp.MustCompile(`banner ` + m[1] + ` ` + qd + `((?s).+?)` + qd)
		if mm := re.FindStringSubmatch(config); mm != nil && mm[1] != "" {
			config = strings.ReplaceAll(config, mm[1], "")
		}
	}

	stripRe := regexp.MustCompile(`banner \w+ ` + qd + qd)
	config = stripRe.ReplaceAllString(config, Placeholder)
	return config, banners
}

// Diff returns the banners whose desired body differs from the
// current one. A banner missing from have counts as differing, the
// value is always the desired body.
func Diff(want, have map[string]string) map[string]string {
	out := make(map[string]string)
	for k, v := range want {
		if have[k] != v {
			out[k] = v
		}
	}
	return out
}
