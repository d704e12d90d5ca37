package netconfig

import "strings"

// Line is a single configuration command line inside a Tree.
// Lines are arena allocated by the parser, parent/child relations
// are stored as indexes into the owning tree.
type Line struct {
	id       int
	raw      string
	text     string
	depth    int
	parent   int
	children []int
	tree     *Tree
}

// Text returns the trimmed command text.
func (l *Line) Text() string {
	return l.text
}

// Raw returns the line as it appeared in the source document,
// leading indentation included.
func (l *Line) Raw() string {
	return l.raw
}

// Depth returns the number of leading whitespace characters.
func (l *Line) Depth() int {
	return l.depth
}

func (l *Line) HasChildren() bool {
	return len(l.children) > 0
}

// Children returns the direct children in document order.
func (l *Line) Children() []*Line {
	out := make([]*Line, 0, len(l.children))
	for _, id := range l.children {
		out = append(out, l.tree.lines[id])
	}
	return out
}

// ParentLines returns the ancestor lines, root first.
func (l *Line) ParentLines() []*Line {
	var out []*Line
	for p := l.parent; p >= 0; p = l.tree.lines[p].parent {
		out = append(out, l.tree.lines[p])
	}
	// collected leaf-to-root, reverse
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Parents returns the ancestor texts, root first.
func (l *Line) Parents() []string {
	pl := l.ParentLines()
	out := make([]string, 0, len(pl))
	for _, p := range pl {
		out = append(out, p.text)
	}
	return out
}

// PathLine returns the full nesting path of the line, ancestor texts
// joined with the line's own text. Two lines from different trees are
// considered equal in strict/exact match modes when their PathLine
// values are equal.
func (l *Line) PathLine() string {
	parts := append(l.Parents(), l.text)
	return strings.Join(parts, " ")
}

// Descendants returns all lines governed by l, document order,
// grandchildren included.
func (l *Line) Descendants() []*Line {
	var out []*Line
	for _, c := range l.Children() {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

func (l *Line) String() string {
	return l.raw
}
