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

	"znkr.io/unidiff/internal/byteview"
	"znkr.io/unidiff/internal/config"
)

// Text is the set of types that can be compared.
type Text = byteview.Text

// LineKind describes the role of a line in a hunk.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=LineKind
type LineKind int

const (
	Match  LineKind = iota // A line that's present in both inputs
	Delete                 // A line that's only present in the original
	Insert                 // A line that's only present in the modified input
)

// Line is a single line of a hunk. Text includes the trailing newline unless the line is the last
// line of an input that doesn't end with a newline.
type Line[T Text] struct {
	Kind LineKind
	Text T
}

// HunkRange describes the lines a hunk covers in one of the inputs.
//
// Start is 1-based. Following the convention of GNU diff, a range with Len == 0 names the line
// before the empty range, e.g., Start is 0 for an insertion at the beginning of a file.
type HunkRange struct {
	Start, Len int
}

// Hunk describes a changed region with its surrounding context.
type Hunk[T Text] struct {
	Old, New HunkRange
	Section  string // Nearest line before the hunk that looks like a heading, if requested.
	Lines    []Line[T]

	// Originals holds one block for every run of consecutive deleted lines, Modifieds one block
	// for every run of consecutive inserted lines. A block is the concatenation of the lines of
	// the run. They are used to compare replaced lines word by word.
	Originals []T
	Modifieds []T
}

// Patch describes all changes between two inputs.
type Patch[T Text] struct {
	// Labels for the "---" and "+++" header lines, typically file names. The header is omitted
	// if both are empty.
	Original, Modified string

	// Hunks are ordered and never overlap.
	Hunks []Hunk[T]
}

// String returns the patch in unified format without colors.
func (p *Patch[T]) String() string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = write(&sb, p, config.Default)
	return sb.String()
}
