package diff

import (
	"errors"
	"regexp"
	"strings"

	"github.com/amalmborg97/iosctl/pkg/banner"
	"github.com/amalmborg97/iosctl/pkg/netconfig"
)

var (
	blankRe   = regexp.MustCompile(`\n{2,}`)
	sectionRe = regexp.MustCompile(`(?m)^\w.*(?:\n[ \t]+.*)*\n?`)
)

// exactSections handles exact match without an explicit path. The
// candidate may carry several unrelated top-level blocks, e.g.
// multiple policy-maps, each anchored at an unindented line. Every
// section is diffed independently against the matching block of the
// running configuration: negations first, then additions, sections
// concatenated in candidate order.
func exactSections(wantSrc string, wantBanners map[string]string, req *Request) (*Result, error) {
	haveSrc, haveBanners := banner.Extract(req.Running)
	running, err := netconfig.Parse(haveSrc, netconfig.WithIgnoreLines(req.IgnoreLines))
	if err != nil {
		return nil, err
	}

	wantSrc = blankRe.ReplaceAllString(wantSrc, "\n")
	sections := sectionRe.FindAllString(wantSrc, -1)

	var buf strings.Builder
	for _, section := range sections {
		path := []string{strings.TrimSpace(firstLine(section))}

		candidate, err := netconfig.Parse(section)
		if err != nil {
			return nil, err
		}
		want, err := candidate.GetBlock(path)
		if err != nil {
			return nil, err
		}
		have, err := running.GetBlock(path)
		if err != nil {
			// a section absent from running is diffed against nothing
			if !errors.Is(err, netconfig.ErrBlockNotFound) {
				return nil, err
			}
			have = nil
			// a childless section has no descendants to carry the
			// anchor in as context, emit the anchor line itself
			if len(want) == 0 {
				buf.WriteString(candidate.Roots()[0].Raw())
				buf.WriteString("\n")
				continue
			}
		}

		buf.WriteString(negations(have, want))
		buf.WriteString(additions(want, have))
	}

	return &Result{
		ConfigDiff: strings.TrimRight(buf.String(), " \n"),
		BannerDiff: banner.Diff(wantBanners, haveBanners),
	}, nil
}

// negations emits a "no" command for every have line absent from
// want, prefixed by any ancestor context not emitted yet. Once a line
// with children is negated its descendants are covered by it and are
// skipped, and the same parent is never negated twice.
func negations(have, want []*netconfig.Line) string {
	var b strings.Builder
	emitted := make(map[string]bool)
	negatedParents := make(map[string]bool)

	for _, line := range have {
		if containsLine(want, line) {
			continue
		}
		if ancestorNegated(line, negatedParents) {
			continue
		}
		for _, p := range line.ParentLines() {
			if emitted[p.Text()] || negatedParents[p.Text()] {
				continue
			}
			b.WriteString(p.Raw())
			b.WriteString("\n")
			emitted[p.Text()] = true
		}
		if line.HasChildren() {
			negatedParents[line.Text()] = true
		}
		b.WriteString(negate(line))
		b.WriteString("\n")
	}
	return b.String()
}

// additions emits every want line absent from have, prefixed by any
// ancestor context not emitted yet, original indentation preserved.
func additions(want, have []*netconfig.Line) string {
	var b strings.Builder
	emitted := make(map[string]bool)

	for _, line := range want {
		if containsLine(have, line) {
			continue
		}
		for _, p := range line.ParentLines() {
			if emitted[p.Text()] {
				continue
			}
			b.WriteString(p.Raw())
			b.WriteString("\n")
			emitted[p.Text()] = true
		}
		b.WriteString(line.Raw())
		b.WriteString("\n")
		emitted[line.Text()] = true
	}
	return b.String()
}

// negate renders the negation of a line, keeping its indentation. A
// line already carrying a "no " prefix is emitted as is.
func negate(l *netconfig.Line) string {
	if strings.HasPrefix(l.Text(), "no ") {
		return l.Raw()
	}
	raw := l.Raw()
	indent := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
	return indent + "no " + l.Text()
}

func containsLine(lines []*netconfig.Line, l *netconfig.Line) bool {
	for _, x := range lines {
		if x.PathLine() == l.PathLine() {
			return true
		}
	}
	return false
}

func ancestorNegated(l *netconfig.Line, negatedParents map[string]bool) bool {
	for _, p := range l.Parents() {
		if negatedParents[p] {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
