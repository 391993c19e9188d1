// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unidiff

import (
	"fmt"
	"io"
	"strings"

	"znkr.io/unidiff/internal/byteview"
	"znkr.io/unidiff/internal/config"
	"znkr.io/unidiff/internal/edits"
	"znkr.io/unidiff/internal/impl"
	"znkr.io/unidiff/internal/token"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\\ No newline at end of file\n"

// Write renders p in unified format to w. Errors returned by w are returned unchanged and stop
// the rendering.
//
// The following option is supported: [TerminalColors]
func Write[T Text](w io.Writer, p *Patch[T], opts ...Option) error {
	cfg := config.FromOptions(opts, config.Color)
	return write(w, p, cfg)
}

// Format renders p in unified format.
//
// The following option is supported: [TerminalColors]
func Format[T Text](p *Patch[T], opts ...Option) T {
	cfg := config.FromOptions(opts, config.Color)
	return format(p, cfg)
}

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following options are supported: [Context], [Labels], [Sections], [TerminalColors]
func Unified(x, y string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Labels|config.Sections|config.Color)
	return format(create(x, y, cfg), cfg)
}

// UnifiedBytes compares the lines in x and y and returns the changes necessary to convert from one
// to the other in unified format.
//
// The following options are supported: [Context], [Labels], [Sections], [TerminalColors]
func UnifiedBytes(x, y []byte, opts ...Option) []byte {
	cfg := config.FromOptions(opts, config.Context|config.Labels|config.Sections|config.Color)
	return format(create(x, y, cfg), cfg)
}

func format[T Text](p *Patch[T], cfg config.Config) T {
	var b byteview.Builder[T]
	size := 0
	for _, h := range p.Hunks {
		size += 32 + len(h.Section)
		for _, line := range h.Lines {
			size += 1 + len(line.Text)
		}
	}
	b.Grow(size)
	// Writes to a builder never fail.
	_ = write(&b, p, cfg)
	return b.Build()
}

func write[T Text](w io.Writer, p *Patch[T], cfg config.Config) error {
	r := &renderer{w: w, cfg: cfg}

	// Word level highlighting needs valid text, which is only guaranteed for strings.
	_, isString := any(p).(*Patch[string])
	r.intraline = cfg.Color && isString

	if p.Original != "" || p.Modified != "" {
		r.styled(cfg.Colors.Header, "--- "+p.Original)
		r.write("\n")
		r.styled(cfg.Colors.Header, "+++ "+p.Modified)
		r.write("\n")
	}
	for i := range p.Hunks {
		writeHunk(r, &p.Hunks[i])
		if r.err != nil {
			break
		}
	}
	return r.err
}

func writeHunk[T Text](r *renderer, h *Hunk[T]) {
	cc := &r.cfg.Colors
	r.styled(cc.HunkHeader, fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.Old.Start, h.Old.Len, h.New.Start, h.New.Len))
	if h.Section != "" {
		r.write(" ")
		r.styled(cc.Section, h.Section)
	}
	r.write("\n")

	var nextOriginal, nextModified int
	for i := 0; i < len(h.Lines); {
		if h.Lines[i].Kind == Match {
			r.line(cc.Match, prefixMatch, str(h.Lines[i].Text))
			i++
			continue
		}

		// A change: a run of deletions followed by a run of insertions, either may be empty.
		j := i
		for j < len(h.Lines) && h.Lines[j].Kind == Delete {
			j++
		}
		k := j
		for k < len(h.Lines) && h.Lines[k].Kind == Insert {
			k++
		}
		if k == i {
			panic(fmt.Sprintf("invalid line kind %v", h.Lines[i].Kind))
		}

		var original, modified string
		if j > i {
			if nextOriginal >= len(h.Originals) {
				panic(fmt.Sprintf("hunk has more deletion runs than original blocks (%d)", len(h.Originals)))
			}
			original = str(h.Originals[nextOriginal])
			nextOriginal++
		}
		if k > j {
			if nextModified >= len(h.Modifieds) {
				panic(fmt.Sprintf("hunk has more insertion runs than modified blocks (%d)", len(h.Modifieds)))
			}
			modified = str(h.Modifieds[nextModified])
			nextModified++
		}

		if r.intraline && j > i && k > j {
			r.replace(original, modified)
		} else {
			for _, line := range h.Lines[i:j] {
				r.line(cc.Delete, prefixDelete, str(line.Text))
			}
			for _, line := range h.Lines[j:k] {
				r.line(cc.Insert, prefixInsert, str(line.Text))
			}
		}
		i = k
	}
	if nextOriginal != len(h.Originals) || nextModified != len(h.Modifieds) {
		panic(fmt.Sprintf("hunk has %d original and %d modified blocks, but %d deletion and %d insertion runs",
			len(h.Originals), len(h.Modifieds), nextOriginal, nextModified))
	}
}

// str returns a string view of v. For []byte, the result must not be retained.
func str[T Text](v T) string { return byteview.From(v).String() }

// renderer writes a patch to w. The first error is sticky, all writes after it are dropped.
type renderer struct {
	w         io.Writer
	err       error
	cfg       config.Config
	intraline bool
}

func (r *renderer) write(s string) {
	if r.err != nil || len(s) == 0 {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

// styled writes s wrapped in style. Stripping the escape sequences always leaves s.
func (r *renderer) styled(style, s string) {
	if !r.cfg.Color || style == "" || len(s) == 0 {
		r.write(s)
		return
	}
	r.write(style)
	r.write(s)
	r.write(config.Reset)
}

// line writes a single line of a hunk. The reset sequence goes before the newline, so that a
// style never extends to the next line.
func (r *renderer) line(style, prefix, text string) {
	body, hasNewline := strings.CutSuffix(text, "\n")
	color := r.cfg.Color && style != ""
	if color {
		r.write(style)
	}
	r.write(prefix)
	r.write(body)
	if color {
		r.write(config.Reset)
	}
	r.write("\n")
	if !hasNewline {
		r.write(missingNewline)
	}
}

// replace writes a block of deleted lines followed by a block of inserted lines and highlights
// the words that differ between them.
func (r *renderer) replace(original, modified string) {
	var c token.Classifier
	xgroups, xids := c.ClassifyGroups(original)
	ygroups, yids := c.ClassifyGroups(modified)
	script := impl.Script(xids, yids)
	r.highlighted(edits.Delete, original, groupOffsets(xgroups), script)
	r.highlighted(edits.Insert, modified, groupOffsets(ygroups), script)
}

// groupOffsets returns the byte offset of every group and the total length as the last element.
func groupOffsets(groups []string) []int {
	offs := make([]int, len(groups)+1)
	for i, g := range groups {
		offs[i+1] = offs[i] + len(g)
	}
	return offs
}

// highlighted writes one side of a replacement. Text that's only present on this side is
// painted, text present on both sides is written as it is.
func (r *renderer) highlighted(op edits.Op, text string, offs []int, script []edits.DiffRange) {
	style, prefix := r.cfg.Colors.Delete, prefixDelete
	if op == edits.Insert {
		style, prefix = r.cfg.Colors.Insert, prefixInsert
	}

	startOfLine := true
	for _, d := range script {
		if d.Op != edits.Equal && d.Op != op {
			continue
		}
		rng := d.X
		if op == edits.Insert {
			rng = d.Y
		}
		// A range can span several lines, every line gets its own prefix.
		for piece := range strings.Lines(text[offs[rng.Start]:offs[rng.End]]) {
			if startOfLine {
				r.styled(style, prefix)
				startOfLine = false
			}
			body, hasNewline := strings.CutSuffix(piece, "\n")
			if d.Op == op {
				r.styled(style, body)
			} else {
				r.write(body)
			}
			if hasNewline {
				r.write("\n")
				startOfLine = true
			}
		}
	}
	if !startOfLine {
		r.write("\n")
		r.write(missingNewline)
	}
}
