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
	"bytes"
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// Parse reads a patch in unified format, as produced by [Write] without colors. The patch may
// start with a "---"/"+++" header or directly with the first hunk. Only a single file is
// supported.
//
// Parsed patches can be formatted again, including highlighting of changed words.
//
// Carriage returns at the end of lines are not preserved.
func Parse(data []byte) (*Patch[string], error) {
	p := &Patch[string]{}
	if len(data) == 0 {
		return p, nil
	}

	var hunks []*diff.Hunk
	if bytes.HasPrefix(data, []byte("@@")) {
		var err error
		hunks, err = diff.ParseHunks(data)
		if err != nil {
			return nil, fmt.Errorf("parsing hunks: %w", err)
		}
	} else {
		fd, err := diff.ParseFileDiff(data)
		if err != nil {
			return nil, fmt.Errorf("parsing patch: %w", err)
		}
		p.Original, p.Modified = fd.OrigName, fd.NewName
		hunks = fd.Hunks
	}

	for i, h := range hunks {
		hunk, err := convertHunk(h)
		if err != nil {
			return nil, fmt.Errorf("hunk %d: %w", i+1, err)
		}
		p.Hunks = append(p.Hunks, hunk)
	}
	return p, nil
}

func convertHunk(h *diff.Hunk) (Hunk[string], error) {
	hunk := Hunk[string]{
		Old:     HunkRange{Start: int(h.OrigStartLine), Len: int(h.OrigLines)},
		New:     HunkRange{Start: int(h.NewStartLine), Len: int(h.NewLines)},
		Section: h.Section,
	}

	// The parser keeps the newline of a deleted line that's missing it in the original and
	// records its position instead.
	noNewlineAt := int(h.OrigNoNewlineAt)

	var nold, nnew, off int
	for text := range strings.Lines(string(h.Body)) {
		off += len(text)
		if noNewlineAt > 0 && off == noNewlineAt {
			text = strings.TrimSuffix(text, "\n")
		}
		var kind LineKind
		switch {
		case text == "\n":
			// Some tools drop the space in empty context lines.
			kind = Match
		case text[0] == ' ':
			kind, text = Match, text[1:]
		case text[0] == '-':
			kind, text = Delete, text[1:]
		case text[0] == '+':
			kind, text = Insert, text[1:]
		default:
			return Hunk[string]{}, fmt.Errorf("invalid line %q", text)
		}
		switch kind {
		case Match:
			nold++
			nnew++
		case Delete:
			nold++
		case Insert:
			nnew++
		}
		hunk.Lines = append(hunk.Lines, Line[string]{kind, text})
	}
	if nold != hunk.Old.Len || nnew != hunk.New.Len {
		return Hunk[string]{}, fmt.Errorf("hunk header @@ -%d,%d +%d,%d @@ doesn't match body with %d original and %d modified lines",
			hunk.Old.Start, hunk.Old.Len, hunk.New.Start, hunk.New.Len, nold, nnew)
	}

	// Collect the blocks of consecutive deleted or inserted lines.
	for i := 0; i < len(hunk.Lines); {
		kind := hunk.Lines[i].Kind
		var sb strings.Builder
		j := i
		for ; j < len(hunk.Lines) && hunk.Lines[j].Kind == kind; j++ {
			sb.WriteString(hunk.Lines[j].Text)
		}
		switch kind {
		case Delete:
			hunk.Originals = append(hunk.Originals, sb.String())
		case Insert:
			hunk.Modifieds = append(hunk.Modifieds, sb.String())
		}
		i = j
	}
	return hunk, nil
}
