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

// Package token splits text into the atomic units that are compared by the diff engine.
//
// There are two granularities: lines, which are used to compute the diff between two texts, and
// word groups, which are used to compute the intraline diff between the deleted and inserted
// lines of a single change. All tokens are subslices of the input and never copy it.
package token

import (
	"iter"

	"znkr.io/unidiff/internal/byteview"
)

// Lines iterates over the lines in text. Every line includes its terminating '\n', except for
// the last line if text doesn't end in a newline. An empty text has no lines.
func Lines[T byteview.Text](text T) iter.Seq[T] {
	return func(yield func(T) bool) {
		rest := byteview.From(text)
		for off := 0; !rest.IsEmpty(); {
			n := rest.Len()
			if i := rest.IndexByte('\n'); i >= 0 {
				n = i + 1
			}
			_, rest = rest.SplitAt(n)
			if !yield(text[off : off+n]) {
				return
			}
			off += n
		}
	}
}

// Groups iterates over the word groups in text.
//
// A word group is a run of characters that belong together for the purpose of an intraline diff:
// numbers, words, or whitespace. Any other character is a group of its own. See [Grouping] for
// the rules used to form groups.
func Groups(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(text) > 0 {
			n := groupLen(text)
			if !yield(text[:n]) {
				return
			}
			text = text[n:]
		}
	}
}
