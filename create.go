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
	"strings"
	"unicode"
	"unicode/utf8"

	"znkr.io/unidiff/internal/byteview"
	"znkr.io/unidiff/internal/config"
	"znkr.io/unidiff/internal/impl"
	"znkr.io/unidiff/internal/rvecs"
	"znkr.io/unidiff/internal/token"
)

// maxSectionLen is the maximum length of a section label in bytes.
const maxSectionLen = 80

// Create compares the lines in x and y and returns a patch that converts x into y.
//
// If x and y are identical, the patch has no hunks.
//
// The following options are supported: [Context], [Labels], [Sections]
func Create(x, y string, opts ...Option) *Patch[string] {
	cfg := config.FromOptions(opts, config.Context|config.Labels|config.Sections)
	return create(x, y, cfg)
}

// CreateBytes compares the lines in x and y and returns a patch that converts x into y.
//
// The inputs don't need to be valid UTF-8. Patches of []byte are never highlighted within lines.
//
// The following options are supported: [Context], [Labels], [Sections]
func CreateBytes(x, y []byte, opts ...Option) *Patch[[]byte] {
	cfg := config.FromOptions(opts, config.Context|config.Labels|config.Sections)
	return create(x, y, cfg)
}

func create[T Text](x, y T, cfg config.Config) *Patch[T] {
	// One classifier for both sides, so that equal lines get equal ids.
	var c token.Classifier
	xlines, xids := token.ClassifyLines(&c, x)
	ylines, yids := token.ClassifyLines(&c, y)
	rx, ry := impl.Diff(xids, yids)

	xoffs := offsets(xlines)
	yoffs := offsets(ylines)

	p := &Patch[T]{
		Original: cfg.Original,
		Modified: cfg.Modified,
	}
	for h := range rvecs.Hunks(rx, ry, cfg) {
		hunk := Hunk[T]{
			Old:   hunkRange(h.S0, h.S1),
			New:   hunkRange(h.T0, h.T1),
			Lines: make([]Line[T], 0, h.Edits),
		}
		if cfg.Sections {
			hunk.Section = section(xlines, h.S0)
		}
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			if s < h.S1 && rx[s] {
				start := s
				for s < h.S1 && rx[s] {
					hunk.Lines = append(hunk.Lines, Line[T]{Delete, xlines[s]})
					s++
				}
				hunk.Originals = append(hunk.Originals, x[xoffs[start]:xoffs[s]])
			}
			if t < h.T1 && ry[t] {
				start := t
				for t < h.T1 && ry[t] {
					hunk.Lines = append(hunk.Lines, Line[T]{Insert, ylines[t]})
					t++
				}
				hunk.Modifieds = append(hunk.Modifieds, y[yoffs[start]:yoffs[t]])
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				hunk.Lines = append(hunk.Lines, Line[T]{Match, xlines[s]})
				s++
				t++
			}
		}
		p.Hunks = append(p.Hunks, hunk)
	}
	return p
}

// offsets returns the byte offset of every line and the total length as the last element.
func offsets[T Text](lines []T) []int {
	offs := make([]int, len(lines)+1)
	for i, line := range lines {
		offs[i+1] = offs[i] + len(line)
	}
	return offs
}

// hunkRange converts the half-open line range [start, end) into a hunk range.
func hunkRange(start, end int) HunkRange {
	if end == start {
		return HunkRange{Start: start, Len: 0}
	}
	return HunkRange{Start: start + 1, Len: end - start}
}

// section returns the nearest line before line s that starts with a letter, '_' or '$'.
func section[T Text](lines []T, s int) string {
	for i := s - 1; i >= 0; i-- {
		v := byteview.From(lines[i])
		r, _ := utf8.DecodeRuneInString(v.String())
		if !unicode.IsLetter(r) && r != '_' && r != '$' {
			continue
		}
		label := strings.TrimRightFunc(v.String(), unicode.IsSpace)
		if len(label) > maxSectionLen {
			n := maxSectionLen
			for n > 0 && !utf8.RuneStart(label[n]) {
				n--
			}
			label = label[:n]
		}
		// The label outlives the input if it was a []byte.
		return strings.Clone(label)
	}
	return ""
}
