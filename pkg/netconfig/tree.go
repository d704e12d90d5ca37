package netconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBlockNotFound is returned by GetBlock when the requested path
// does not resolve in the tree.
var ErrBlockNotFound = errors.New("config block not found")

// Tree is an ordered forest of configuration lines built from
// indented text. Trees are immutable after Parse.
type Tree struct {
	lines  []*Line
	roots  []int
	indent int
}

type parseOptions struct {
	indent      int
	ignoreLines []string
}

type Option func(*parseOptions)

// WithIndent sets the number of spaces per nesting level used when
// re-serializing. Parsing itself derives depth from the actual
// leading whitespace.
func WithIndent(n int) Option {
	return func(o *parseOptions) { o.indent = n }
}

// WithIgnoreLines drops every line matching one of the given regular
// expressions before structural parsing. Patterns are anchored at the
// start of the raw line.
func WithIgnoreLines(patterns []string) Option {
	return func(o *parseOptions) { o.ignoreLines = patterns }
}

// Parse builds a Tree from flat indented configuration text. Blank
// lines and ignored lines are dropped, every remaining line becomes a
// child of the nearest preceding line with strictly smaller
// indentation.
func Parse(text string, opts ...Option) (*Tree, error) {
	o := &parseOptions{indent: 1}
	for _, opt := range opts {
		opt(o)
	}

	ignore := make([]*regexp.Regexp, 0, len(o.ignoreLines))
	for _, p := range o.ignoreLines {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %v", p, err)
		}
		ignore = append(ignore, re)
	}

	t := &Tree{indent: o.indent}

	// stack of currently open ancestors
	var stack []*Line

nextLine:
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		for _, re := range ignore {
			if loc := re.FindStringIndex(raw); loc != nil && loc[0] == 0 {
				continue nextLine
			}
		}

		depth := len(raw) - len(strings.TrimLeft(raw, " \t"))
		line := &Line{
			id:     len(t.lines),
			raw:    raw,
			text:   trimmed,
			depth:  depth,
			parent: -1,
			tree:   t,
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			line.parent = parent.id
			parent.children = append(parent.children, line.id)
		} else {
			t.roots = append(t.roots, line.id)
		}
		stack = append(stack, line)
		t.lines = append(t.lines, line)
	}

	return t, nil
}

// Items returns every line of the tree in document order.
func (t *Tree) Items() []*Line {
	return t.lines
}

// Roots returns the top level lines in document order.
func (t *Tree) Roots() []*Line {
	out := make([]*Line, 0, len(t.roots))
	for _, id := range t.roots {
		out = append(out, t.lines[id])
	}
	return out
}

// String re-serializes the tree in document order.
func (t *Tree) String() string {
	raws := make([]string, 0, len(t.lines))
	for _, l := range t.lines {
		raws = append(raws, l.raw)
	}
	return strings.Join(raws, "\n")
}

// GetBlock resolves the given nesting path, segment by segment, and
// returns the flattened document-order descendants of the resolved
// line. A segment matches a line when it equals the line text or is a
// prefix of it, case sensitive. The first matching line wins.
func (t *Tree) GetBlock(path []string) ([]*Line, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBlockNotFound)
	}
	candidates := t.Roots()
	var current *Line
	for _, segment := range path {
		current = nil
		for _, l := range candidates {
			if l.text == segment || strings.HasPrefix(l.text, segment) {
				current = l
				break
			}
		}
		if current == nil {
			return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, strings.Join(path, " "))
		}
		candidates = current.Children()
	}
	return current.Descendants(), nil
}
