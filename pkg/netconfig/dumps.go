package netconfig

import (
	"fmt"
	"strings"
)

// Dumps renders a list of lines as text. Format "commands" emits the
// trimmed command texts, one per line, suitable for pushing over a
// CLI session. Format "raw" emits the lines with their original
// indentation.
func Dumps(lines []*Line, format string) (string, error) {
	items := make([]string, 0, len(lines))
	switch format {
	case "commands":
		for _, l := range lines {
			items = append(items, l.text)
		}
	case "raw":
		for _, l := range lines {
			items = append(items, l.raw)
		}
	default:
		return "", fmt.Errorf("unsupported dump format %q", format)
	}
	return strings.Join(items, "\n"), nil
}
