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

// Package edits contains the edit script representation that's produced from result vectors and
// then translated to the user facing patch model.
package edits

import "fmt"

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op

// Op is the operation of a [DiffRange].
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Range is a half-open interval [Start, End) of token indices.
type Range struct {
	Start, End int
}

// Len returns the number of tokens in r.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// DiffRange is one entry of an edit script.
//
// For Equal, X and Y have the same length. For Delete, Y is the empty range at the position in y
// where the deletion happens, for Insert, X is the empty range at the position in x.
type DiffRange struct {
	Op   Op
	X, Y Range
}

func (d DiffRange) String() string { return fmt.Sprintf("%v%v%v", d.Op, d.X, d.Y) }

// FromVectors converts result vectors into an edit script.
//
// The script covers both inputs completely and in order. Ranges are maximal, i.e., no two
// consecutive ranges have the same Op. Within a run of changes, the deletions are reported before
// the insertions.
func FromVectors(rx, ry []bool) []DiffRange {
	n, m := len(rx)-1, len(ry)-1
	var script []DiffRange
	s, t := 0, 0
	for s < n || t < m {
		switch {
		case s < n && rx[s]:
			s0 := s
			for s < n && rx[s] {
				s++
			}
			script = append(script, DiffRange{Delete, Range{s0, s}, Range{t, t}})
		case t < m && ry[t]:
			t0 := t
			for t < m && ry[t] {
				t++
			}
			script = append(script, DiffRange{Insert, Range{s, s}, Range{t0, t}})
		case s < n && t < m:
			s0, t0 := s, t
			for s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
			}
			script = append(script, DiffRange{Equal, Range{s0, s}, Range{t0, t}})
		default:
			panic(fmt.Sprintf("inconsistent result vectors at x[%d], y[%d]", s, t))
		}
	}
	return script
}

// ToVectors converts an edit script for inputs of length n and m back into result vectors. It
// panics if the script doesn't cover both inputs exactly once.
func ToVectors(script []DiffRange, n, m int) (rx, ry []bool) {
	rx = make([]bool, n+1)
	ry = make([]bool, m+1)
	s, t := 0, 0
	for _, d := range script {
		if d.X.Start != s || d.Y.Start != t || d.X.Len() < 0 || d.Y.Len() < 0 {
			panic(fmt.Sprintf("edit script has gaps or overlaps at %v, want start at x[%d], y[%d]", d, s, t))
		}
		switch d.Op {
		case Equal:
			if d.X.Len() != d.Y.Len() {
				panic(fmt.Sprintf("equal range with different lengths: %v", d))
			}
		case Delete:
			if d.Y.Len() != 0 {
				panic(fmt.Sprintf("delete range must not cover y: %v", d))
			}
			for i := d.X.Start; i < d.X.End; i++ {
				rx[i] = true
			}
		case Insert:
			if d.X.Len() != 0 {
				panic(fmt.Sprintf("insert range must not cover x: %v", d))
			}
			for i := d.Y.Start; i < d.Y.End; i++ {
				ry[i] = true
			}
		}
		s, t = d.X.End, d.Y.End
	}
	if s != n || t != m {
		panic(fmt.Sprintf("edit script ends at x[%d], y[%d], want x[%d], y[%d]", s, t, n, m))
	}
	return rx, ry
}
