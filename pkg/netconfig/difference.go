package netconfig

import (
	"fmt"
)

// Match modes accepted by Difference.
const (
	MatchLine   = "line"
	MatchStrict = "strict"
	MatchExact  = "exact"
	MatchNone   = "none"
)

// Replace modes accepted by Difference.
const (
	ReplaceLine  = "line"
	ReplaceBlock = "block"
)

// Difference computes the candidate lines that are not satisfied by
// the other (running) tree, in document order, each prefixed by the
// ancestor lines needed to re-establish its nesting context. With
// replace "block" the entire sub-block containing a differing line is
// emitted, with replace "line" only the differing lines themselves.
// When a path is given both trees are restricted to that block first.
func (t *Tree) Difference(other *Tree, path []string, match, replace string) ([]*Line, error) {
	config := t.Items()
	current := other.Items()
	if len(path) > 0 {
		var err error
		config, err = t.GetBlock(path)
		if err != nil {
			return nil, err
		}
		current, err = other.GetBlock(path)
		if err != nil {
			return nil, err
		}
	}

	var changed []*Line
	switch match {
	case MatchLine:
		haveTexts := make(map[string]struct{}, len(current))
		for _, l := range current {
			haveTexts[l.text] = struct{}{}
		}
		for _, l := range config {
			if _, ok := haveTexts[l.text]; !ok {
				changed = append(changed, l)
			}
		}
	case MatchStrict:
		for i, l := range config {
			if i >= len(current) || l.PathLine() != current[i].PathLine() {
				changed = append(changed, l)
			}
		}
	case MatchExact:
		equal := len(config) == len(current)
		if equal {
			for i, l := range config {
				if l.PathLine() != current[i].PathLine() {
					equal = false
					break
				}
			}
		}
		if !equal {
			changed = config
		}
	default:
		return nil, fmt.Errorf("unsupported match mode %q", match)
	}

	visited := make(map[int]struct{})
	var out []*Line
	push := func(l *Line) {
		if _, ok := visited[l.id]; ok {
			return
		}
		visited[l.id] = struct{}{}
		out = append(out, l)
	}
	withContext := func(l *Line) {
		for _, p := range l.ParentLines() {
			push(p)
		}
		push(l)
	}

	for _, l := range changed {
		if replace == ReplaceBlock {
			root := l
			for root.parent >= 0 {
				root = t.lines[root.parent]
			}
			withContext(root)
			for _, d := range root.Descendants() {
				push(d)
			}
			continue
		}
		withContext(l)
	}
	return out, nil
}
