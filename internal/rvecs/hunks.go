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

package rvecs

import (
	"iter"

	"znkr.io/unidiff/internal/config"
)

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	Edits  int // Number of edits in this hunk.
}

// Hunks groups the changes in rx and ry into hunks with cfg.Context matches of context around
// them.
//
// Two changes end up in the same hunk if they are separated by at most cfg.Context matches.
// Otherwise, the first hunk ends with exactly cfg.Context matches and the second one starts with
// up to cfg.Context matches, but never with a match that's already part of the first hunk. Hunks
// are ordered and never overlap.
func Hunks(rx, ry []bool, cfg config.Config) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		context := cfg.Context
		s, t := 0, 0     // current index into x, y
		s0, t0 := -1, -1 // start of the current hunk
		s1, t1 := 0, 0   // end of the previous hunk
		d := 0           // number of edits in the current hunk
		run := 0         // number of consecutive matches
		n, m := len(rx)-1, len(ry)-1
		for s < n || t < m {
			if rx[s] || ry[t] {
				run = 0 // not a match, reset run counter.

				// If we're not inside a hunk, start a new hunk.
				if s0 < 0 {
					lead := min(context, s-s1, t-t1)
					s0, t0 = s-lead, t-lead
					d = lead
				}

				for s < n && rx[s] {
					s++
					d++
				}
				for t < m && ry[t] {
					t++
					d++
				}
			} else {
				for s < n && t < m && !rx[s] && !ry[t] {
					s++
					t++
					run++
					d++
				}
			}
			// Finish the hunk once the matches after it don't connect to another change.
			if s0 >= 0 && (run > context || s == n && t == m) {
				Δ := min(0, context-run)
				s1, t1 = s+Δ, t+Δ
				if !yield(Hunk{s0, s1, t0, t1, d + Δ}) {
					break
				}
				s0, t0 = -1, -1
			}
		}
	}
}
