package benchmarks

import (
	"bytes"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/unidiff"
)

// Impl is a line diff implementation under comparison. Diff returns a patch in unified format or,
// for libraries that don't produce one, the full edit script with one prefixed line per input line.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{"unidiff", func(x, y []byte) []byte { return unidiff.UnifiedBytes(x, y) }},
	{"unidiff-color", unidiffColor},
	{"go-internal", func(x, y []byte) []byte { return gointernal.Diff("x", x, "y", y) }},
	{"udiff", func(x, y []byte) []byte { return []byte(udiff.Unified("x", "y", string(x), string(y))) }},
	{"diffmatchpatch", diffmatchpatchScript},
	{"godebug", func(x, y []byte) []byte { return []byte(godebug.Diff(string(x), string(y))) }},
	{"mb0", mb0Script},
}

func unidiffColor(x, y []byte) []byte {
	// Includes the word level diff of replaced lines.
	return []byte(unidiff.Unified(string(x), string(y), unidiff.TerminalColors()))
}

// script collects an edit script in the same line format as the body of a unified hunk.
type script struct {
	buf bytes.Buffer
}

func (s *script) lines(prefix byte, lines ...[]byte) {
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		s.buf.WriteByte(prefix)
		s.buf.Write(line)
	}
}

func diffmatchpatchScript(x, y []byte) []byte {
	dmp := diffmatchpatch.New()
	rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(rx, ry, false), lines)

	var s script
	for _, d := range diffs {
		prefix := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = '+'
		case diffmatchpatch.DiffDelete:
			prefix = '-'
		}
		s.lines(prefix, bytes.SplitAfter([]byte(d.Text), []byte("\n"))...)
	}
	return s.buf.Bytes()
}

type mb0lines struct {
	x, y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

func mb0Script(x, y []byte) []byte {
	d := mb0lines{
		x: bytes.SplitAfter(x, []byte("\n")),
		y: bytes.SplitAfter(y, []byte("\n")),
	}
	var s script
	a := 0
	for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
		s.lines(' ', d.x[a:ch.A]...)
		s.lines('-', d.x[ch.A:ch.A+ch.Del]...)
		s.lines('+', d.y[ch.B:ch.B+ch.Ins]...)
		a = ch.A + ch.Del
	}
	s.lines(' ', d.x[a:]...)
	return s.buf.Bytes()
}
