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

// Package myers finds a minimal edit script between two sequences of token IDs using Myers'
// O(ND) algorithm.
//
// The implementation uses the linear space refinement from section 4.2 of the paper: Instead of
// remembering every furthest reaching path, a forward and a backward search run towards each
// other until they overlap. The overlap is a, possibly empty, run of matches in the middle of an
// optimal path. The problem is then split at that run and both halves are solved recursively.
// Time is O((N+M)D) and working memory is O(N+M), where N and M are the lengths of the inputs
// and D is the size of the minimal edit script.
//
// # Edit Graph
//
// For x = "ABCABBA" and y = "CBABAC" all possible edits form this grid:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step right deletes an element of x, a step down inserts an element of y and a diagonal step
// is a match. A minimal edit script is a path from (0,0) to (7,6) with the fewest non-diagonal
// steps. We call a path with exactly D non-diagonal steps a D-path. Coordinates are s (in x) and
// t (in y), diagonals are numbered k = s - t.
//
// The facts the code below relies on:
//
//   - A D-path ends on a diagonal k in {-D, -D+2, ..., D}. In particular, D and k have the same
//     parity.
//   - The furthest reaching D-path on diagonal k extends the furthest reaching (D-1)-path on
//     diagonal k-1 by a deletion or the one on diagonal k+1 by an insertion, followed by as many
//     matches as possible.
//   - A D-path from (0,0) to (N,M) exists if and only if a ⌈D/2⌉-path from (0,0) and a
//     ⌊D/2⌋-path to (N,M) overlap on some diagonal.
//
// # Tie Break
//
// When both predecessors on diagonal k-1 and k+1 reach equally far, the forward search extends
// the path on k-1, i.e., it prefers a deletion over an insertion. The backward search mirrors this
// choice. Together with the fixed order of the recursion, this makes the result a deterministic
// function of the inputs.
//
// # Preprocessing
//
// Common prefixes and suffixes are stripped before the search starts. Elements that only occur
// in one of the inputs can never be part of a match and are marked as changes right away. Only
// the remaining elements take part in the search, which keeps D small for typical inputs.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
