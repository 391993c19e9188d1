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

// Package compact normalizes edit scripts.
//
// A minimal edit script is rarely unique. Whenever a group of changes is surrounded by matching
// elements, there are two degrees of freedom:
//
//   - A group of deletions x[i:j] followed by a match x[j] with x[i] == x[j] can be shifted down
//     by one, the same group preceded by a match x[i-1] with x[i-1] == x[j-1] can be shifted up by
//     one. The same holds for insertions.
//   - A deletion next to an insertion can be reported in either order.
//
// Compaction uses these to make scripts easier to read:
//
//  1. Groups are shifted as far as possible in both directions. A group that touches another
//     group on the way merges with it.
//  2. If the group can be shifted to a position where it's adjacent to a group on the other
//     side, it's placed at the lowest such position, so that deletions and insertions form a
//     single change.
//  3. Otherwise, the group is placed at its lowest position.
//
// Compaction never changes the number of deletions or insertions.
package compact

import (
	"slices"

	"znkr.io/unidiff/internal/edits"
)

// Compaction usually settles after two passes. This bounds the work for pathological input.
const maxPasses = 16

// Apply compacts the changes described by rx and ry in place. x and y are the token IDs rx and ry
// were computed for.
func Apply(x, y []int, rx, ry []bool) {
	// Moving a group on one side changes the positions available for groups on the other side,
	// repeat until nothing moves anymore.
	prevx, prevy := slices.Clone(rx), slices.Clone(ry)
	for range maxPasses {
		apply0(x, y, rx, ry) // for deletions
		apply0(y, x, ry, rx) // for insertions
		if slices.Equal(prevx, rx) && slices.Equal(prevy, ry) {
			return
		}
		copy(prevx, rx)
		copy(prevy, ry)
	}
}

// Script compacts an edit script for x and y and returns the compacted script.
func Script(x, y []int, script []edits.DiffRange) []edits.DiffRange {
	rx, ry := edits.ToVectors(script, len(x), len(y))
	Apply(x, y, rx, ry)
	return edits.FromVectors(rx, ry)
}

// apply0 compacts the groups in r. ro are the changes on the other side.
func apply0(ids, idso []int, r, ro []bool) {
	s, so := newScanner(ids, r), newScanner(idso, ro)
	for s.nextGroup() {
		if !so.nextGroup() {
			panic("scanner sync broken")
		}

		if s.groupLen() == 0 {
			continue
		}

		matchingEnd := -1 // lowest end of the group where it touches a group on the other side
		minEnd := s.end   // highest end of the group
		grpLen := 0
		for grpLen != s.groupLen() {
			grpLen = s.groupLen()
			matchingEnd = -1

			// Slide up as much as possible and merge with adjacent groups.
			for s.slideGroupUp() {
				if !so.prevGroup() {
					panic("scanner sync broken")
				}
			}

			minEnd = s.end
			if so.groupLen() > 0 {
				matchingEnd = s.end
			}

			// Slide down as much as possible and merge with adjacent groups.
			for s.slideGroupDown() {
				if !so.nextGroup() {
					panic("scanner sync broken")
				}
				if so.groupLen() > 0 {
					matchingEnd = s.end
				}
			}
		}

		// The group is now at its lowest position. If it touched a group on the other side on
		// the way, move it back up there.
		if minEnd != s.end && matchingEnd != -1 {
			for so.groupLen() == 0 {
				if !s.slideGroupUp() {
					panic("match disappeared")
				}
				if !so.prevGroup() {
					panic("scanner sync broken")
				}
			}
		}
	}

	if so.nextGroup() {
		panic("scanner sync broken")
	}
}

// scanner walks over the groups of changes in r. Between two changed elements, there's an empty
// group. That way, the groups of both sides are always in sync: The i-th group of x is next to
// the i-th group of y.
type scanner struct {
	start int // first changed element of the current group, or the unchanged element if empty
	end   int // first unchanged element after the group, start == end for an empty group
	ids   []int
	r     []bool
}

func newScanner(ids []int, r []bool) *scanner {
	return &scanner{
		start: -1,
		end:   -1,
		ids:   ids,
		r:     r,
	}
}

func (s *scanner) groupLen() int { return s.end - s.start }

// nextGroup moves s to the next, possibly empty, group. Returns false if the end is reached.
func (s *scanner) nextGroup() bool {
	if s.end == len(s.r)-1 {
		return false
	}
	s.start, s.end = s.end+1, s.end+1
	for s.end < len(s.r)-1 && s.r[s.end] {
		s.end++
	}
	return true
}

// prevGroup moves s to the previous, possibly empty, group. Returns false if the beginning is
// reached.
func (s *scanner) prevGroup() bool {
	if s.start == 0 {
		return false
	}
	s.start, s.end = s.start-1, s.start-1
	for s.start > 0 && s.r[s.start-1] {
		s.start--
	}
	return true
}

// slideGroupDown slides the group down by one and merges it with the group below if they touch.
// Returns false if the group can't move.
func (s *scanner) slideGroupDown() bool {
	if s.end >= len(s.r)-1 || s.ids[s.start] != s.ids[s.end] {
		return false
	}
	s.r[s.start], s.r[s.end] = false, true
	s.start++
	s.end++
	for s.end < len(s.r)-1 && s.r[s.end] {
		s.end++
	}
	return true
}

// slideGroupUp slides the group up by one and merges it with the group above if they touch.
// Returns false if the group can't move.
func (s *scanner) slideGroupUp() bool {
	if s.start <= 0 || s.ids[s.start-1] != s.ids[s.end-1] {
		return false
	}
	s.r[s.start-1], s.r[s.end-1] = true, false
	s.start--
	s.end--
	for s.start > 0 && s.r[s.start-1] {
		s.start--
	}
	return true
}
